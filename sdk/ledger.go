package sdk

import (
	"errors"

	"github.com/sasha-s/go-deadlock"
)

var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
)

// Ledger abstracts the fungible token host so the contract code never touches
// balances directly. One ledger carries every asset, keyed by ticker.
type Ledger interface {
	// Balance returns the current base-unit balance of owner for asset.
	Balance(owner Address, asset Asset) int64
	// Transfer moves amount from one account to another.
	Transfer(from, to Address, asset Asset, amount int64) error
	// Approve lets spender later draw up to amount from owner.
	Approve(owner, spender Address, asset Asset, amount int64)
	// Draw spends a previously approved allowance, moving amount from owner to spender.
	Draw(owner, spender Address, asset Asset, amount int64) error
	// Mint creates amount fresh base units on the to account.
	Mint(to Address, asset Asset, amount int64) error
	// Burn destroys amount base units held by from.
	Burn(from Address, asset Asset, amount int64) error
	// TotalSupply returns outstanding base units of asset.
	TotalSupply(asset Asset) int64
}

type balanceKey struct {
	owner Address
	asset Asset
}

type allowanceKey struct {
	owner   Address
	spender Address
	asset   Asset
}

// MockLedger is the in-memory stand-in used by tests and the simulator.
// A deadlock-checking mutex guards the maps since the sim pokes it from
// multiple goroutines.
type MockLedger struct {
	mu         deadlock.Mutex
	balances   map[balanceKey]int64
	allowances map[allowanceKey]int64
	supply     map[Asset]int64
}

func NewMockLedger() *MockLedger {
	return &MockLedger{
		balances:   make(map[balanceKey]int64),
		allowances: make(map[allowanceKey]int64),
		supply:     make(map[Asset]int64),
	}
}

func (l *MockLedger) Balance(owner Address, asset Asset) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[balanceKey{owner, asset}]
}

func (l *MockLedger) Transfer(from, to Address, asset Asset, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(from, to, asset, amount)
}

func (l *MockLedger) Approve(owner, spender Address, asset Asset, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.allowances[allowanceKey{owner, spender, asset}] = amount
}

func (l *MockLedger) Draw(owner, spender Address, asset Asset, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	ak := allowanceKey{owner, spender, asset}
	if l.allowances[ak] < amount {
		return ErrInsufficientAllowance
	}
	if err := l.move(owner, spender, asset, amount); err != nil {
		return err
	}
	l.allowances[ak] -= amount
	return nil
}

func (l *MockLedger) Mint(to Address, asset Asset, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[balanceKey{to, asset}] += amount
	l.supply[asset] += amount
	return nil
}

func (l *MockLedger) Burn(from Address, asset Asset, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	bk := balanceKey{from, asset}
	if l.balances[bk] < amount {
		return ErrInsufficientBalance
	}
	l.balances[bk] -= amount
	l.supply[asset] -= amount
	return nil
}

func (l *MockLedger) TotalSupply(asset Asset) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.supply[asset]
}

// move is the shared debit/credit path, callers must hold the mutex.
func (l *MockLedger) move(from, to Address, asset Asset, amount int64) error {
	fk := balanceKey{from, asset}
	if l.balances[fk] < amount {
		return ErrInsufficientBalance
	}
	l.balances[fk] -= amount
	l.balances[balanceKey{to, asset}] += amount
	return nil
}
