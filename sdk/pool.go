package sdk

import (
	"errors"

	"github.com/sasha-s/go-deadlock"
)

var ErrEmptyPool = errors.New("pool has no liquidity")

// Pool abstracts the external AMM the platform trades against. The deploy
// step seeds it once and the DAO later routes commission through it to
// buy reward tokens off the market.
type Pool interface {
	// AddLiquidity draws token and eth from the provider and mints LP shares back.
	AddLiquidity(provider Address, token Asset, tokenAmount, ethAmount int64) (int64, error)
	// SwapEthForTokens draws eth from the buyer and pays out token per the pool quote.
	SwapEthForTokens(buyer Address, token Asset, ethAmount int64) (int64, error)
	// LPAsset returns the share ticker for the token/eth pair.
	LPAsset(token Asset) Asset
	// Addr is the pool's ledger account, callers approve allowances against it.
	Addr() Address
}

// MockPool is a tiny constant-product pool living on the mock ledger. It is
// only as smart as the tests need, not a product.
type MockPool struct {
	mu     deadlock.Mutex
	addr   Address
	ledger Ledger
	shares map[Asset]int64
}

func NewMockPool(addr Address, ledger Ledger) *MockPool {
	return &MockPool{
		addr:   addr,
		ledger: ledger,
		shares: make(map[Asset]int64),
	}
}

func (p *MockPool) Addr() Address {
	return p.addr
}

func (p *MockPool) LPAsset(token Asset) Asset {
	return Asset(token.String() + "_eth_lp")
}

func (p *MockPool) AddLiquidity(provider Address, token Asset, tokenAmount, ethAmount int64) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ledger.Draw(provider, p.addr, token, tokenAmount); err != nil {
		return 0, err
	}
	if err := p.ledger.Draw(provider, p.addr, AssetEth, ethAmount); err != nil {
		return 0, err
	}
	lp := p.LPAsset(token)
	minted := ethAmount
	if total := p.shares[lp]; total > 0 {
		// pro-rata on the eth side, close enough for a mock
		reserve := p.ledger.Balance(p.addr, AssetEth) - ethAmount
		minted = total * ethAmount / reserve
	}
	p.shares[lp] += minted
	if err := p.ledger.Mint(provider, lp, minted); err != nil {
		return 0, err
	}
	return minted, nil
}

func (p *MockPool) SwapEthForTokens(buyer Address, token Asset, ethAmount int64) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	reserveToken := p.ledger.Balance(p.addr, token)
	reserveEth := p.ledger.Balance(p.addr, AssetEth)
	if reserveToken == 0 || reserveEth == 0 {
		return 0, ErrEmptyPool
	}
	if err := p.ledger.Draw(buyer, p.addr, AssetEth, ethAmount); err != nil {
		return 0, err
	}
	out := reserveToken * ethAmount / (reserveEth + ethAmount)
	if err := p.ledger.Transfer(p.addr, buyer, token, out); err != nil {
		return 0, err
	}
	return out, nil
}
