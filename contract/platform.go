package contract

import (
	"math"

	"acdm_platform/sdk"
)

const (
	mpRoundsKey    = "mp:rounds"
	mpRoundTypeKey = "mp:round_type"
	mpEndsAtKey    = "mp:ends_at"
	mpPriceKey     = "mp:price"
	mpSupplyKey    = "mp:supply"
	mpTurnoverKey  = "mp:turnover"
	mpBalanceKey   = "mp:balance"

	mpSaleRef1Key  = "mp:p_sale1"
	mpSaleRef2Key  = "mp:p_sale2"
	mpTradeRef1Key = "mp:p_trade1"
	mpTradeRef2Key = "mp:p_trade2"
)

// Platform runs the alternating sale/trade marketplace for the acdm token.
// Commission accumulates on an internal eth balance only the DAO can spend.
type Platform struct {
	st     State
	ledger sdk.Ledger
	pool   sdk.Pool
	clock  sdk.Clock
	log    sdk.Logger

	addr        sdk.Address
	owner       sdk.Address
	daoAddr     sdk.Address
	acdmAsset   sdk.Asset
	rewardAsset sdk.Asset
	roundTime   int64
}

func NewPlatform(st State, ledger sdk.Ledger, pool sdk.Pool, clock sdk.Clock, log sdk.Logger, addr, owner, daoAddr sdk.Address, acdmAsset, rewardAsset sdk.Asset, roundTime int64) *Platform {
	return &Platform{
		st:          st,
		ledger:      ledger,
		pool:        pool,
		clock:       clock,
		log:         log,
		addr:        addr,
		owner:       owner,
		daoAddr:     daoAddr,
		acdmAsset:   acdmAsset,
		rewardAsset: rewardAsset,
		roundTime:   roundTime,
	}
}

// Addr returns the platform's custody account.
func (p *Platform) Addr() sdk.Address {
	return p.addr
}

// RoundsNum counts every started round, sale and trade alike.
func (p *Platform) RoundsNum() uint64 {
	return uint64(getIntValue(p.st, mpRoundsKey, 0))
}

// CurrentRound tells which phase is configured right now.
func (p *Platform) CurrentRound() RoundType {
	return RoundType(getIntValue(p.st, mpRoundTypeKey, int64(RoundNone)))
}

// RoundEndsAt is the scheduled end of the current round.
func (p *Platform) RoundEndsAt() int64 {
	return getIntValue(p.st, mpEndsAtKey, 0)
}

// SalePrice is the current gwei price per whole acdm token.
func (p *Platform) SalePrice() Amount {
	return Amount(getIntValue(p.st, mpPriceKey, 0))
}

// SaleSupply is the unsold micro-acdm volume of the running sale round.
func (p *Platform) SaleSupply() Amount {
	return Amount(getIntValue(p.st, mpSupplyKey, 0))
}

// TradeTurnover accumulates gross redemption volume of the trade round.
func (p *Platform) TradeTurnover() Amount {
	return Amount(getIntValue(p.st, mpTurnoverKey, 0))
}

// InternalBalance is the commission pot spendable only via DAO commands.
func (p *Platform) InternalBalance() Amount {
	return Amount(getIntValue(p.st, mpBalanceKey, 0))
}

// Order exposes a stored offer for queries and tests, nil when absent.
func (p *Platform) Order(id uint64) *Order {
	return loadOrder(p.st, id)
}

// Referrer returns the registered referrer of an account, empty when none.
func (p *Platform) Referrer(addr sdk.Address) sdk.Address {
	ref, _ := loadReferral(p.st, addr)
	return ref
}

func (p *Platform) promille(key string, fallback int64) Amount {
	return Amount(getIntValue(p.st, key, fallback))
}

// Register links the caller into the referral tree. An empty referrer is
// fine, it just marks the account as registered.
func (p *Platform) Register(caller, referrer sdk.Address) error {
	if referrer == caller {
		return ErrSelfReferrer
	}
	if _, ok := loadReferral(p.st, caller); ok {
		return ErrAlreadyRegistered
	}
	saveReferral(p.st, caller, referrer)
	emitRegistered(p.log, caller, referrer)
	return nil
}

// StartSaleRound opens the next sale. Anyone may call once the previous
// trade round expired, the very first call needs no predecessor.
func (p *Platform) StartSaleRound(caller sdk.Address) error {
	rounds := p.RoundsNum()
	price := Amount(InitialSalePrice)
	supply := Amount(InitialSaleSupply)
	if rounds > 0 {
		if p.CurrentRound() != RoundTrade || p.clock.Now() < p.RoundEndsAt() {
			return ErrSaleStart
		}
		last := p.SalePrice()
		if last > math.MaxInt64/PriceGrowthNumerator {
			panic("sale price exceeds the escalation bound")
		}
		price = last*PriceGrowthNumerator/PriceGrowthDenominator + PriceGrowthFlat
		turnover := p.TradeTurnover()
		if turnover > math.MaxInt64/AcdmScale {
			panic("trade turnover exceeds the supply bound")
		}
		supply = turnover * AcdmScale / price
	}
	if err := p.ledger.Mint(p.addr, p.acdmAsset, int64(supply)); err != nil {
		return err
	}
	setIntValue(p.st, mpPriceKey, int64(price))
	setIntValue(p.st, mpSupplyKey, int64(supply))
	setIntValue(p.st, mpRoundTypeKey, int64(RoundSale))
	setIntValue(p.st, mpEndsAtKey, p.clock.Now()+p.roundTime)
	setIntValue(p.st, mpRoundsKey, int64(rounds)+1)
	emitSaleRoundStarted(p.log, rounds+1, price, supply)
	return nil
}

// BuyACDM swaps eth for sale tokens at the fixed round price. Referral cuts
// leave immediately, the rest lands on the internal balance.
func (p *Platform) BuyACDM(caller sdk.Address, value Amount) (Amount, error) {
	if p.CurrentRound() != RoundSale || p.clock.Now() >= p.RoundEndsAt() {
		return 0, ErrSaleOnly
	}
	if value <= 0 {
		return 0, ErrNoMoney
	}
	tokens := value * AcdmScale / p.SalePrice()
	supply := p.SaleSupply()
	if tokens > supply {
		return 0, ErrRoundBalance
	}
	if err := p.ledger.Draw(caller, p.addr, sdk.AssetEth, int64(value)); err != nil {
		return 0, err
	}
	setIntValue(p.st, mpSupplyKey, int64(supply-tokens))
	paid := Amount(0)
	if ref1 := p.Referrer(caller); !ref1.IsZero() {
		cut := value * p.promille(mpSaleRef1Key, DefaultSaleRef1Promille) / PromilleBase
		if err := p.ledger.Transfer(p.addr, ref1, sdk.AssetEth, int64(cut)); err != nil {
			return 0, err
		}
		paid += cut
		if ref2 := p.Referrer(ref1); !ref2.IsZero() {
			cut2 := value * p.promille(mpSaleRef2Key, DefaultSaleRef2Promille) / PromilleBase
			if err := p.ledger.Transfer(p.addr, ref2, sdk.AssetEth, int64(cut2)); err != nil {
				return 0, err
			}
			paid += cut2
		}
	}
	setIntValue(p.st, mpBalanceKey, int64(p.InternalBalance()+value-paid))
	if err := p.ledger.Transfer(p.addr, caller, p.acdmAsset, int64(tokens)); err != nil {
		return 0, err
	}
	emitTokenBought(p.log, caller, tokens, value)
	return tokens, nil
}

// StartTradeRound flips the cycle once the sale expired, burning whatever
// the sale left behind.
func (p *Platform) StartTradeRound(caller sdk.Address) error {
	if p.CurrentRound() != RoundSale || p.clock.Now() < p.RoundEndsAt() {
		return ErrTradeStart
	}
	leftover := p.SaleSupply()
	if leftover > 0 {
		if err := p.ledger.Burn(p.addr, p.acdmAsset, int64(leftover)); err != nil {
			return err
		}
	}
	rounds := p.RoundsNum()
	setIntValue(p.st, mpSupplyKey, 0)
	setIntValue(p.st, mpTurnoverKey, 0)
	setIntValue(p.st, mpRoundTypeKey, int64(RoundTrade))
	setIntValue(p.st, mpEndsAtKey, p.clock.Now()+p.roundTime)
	setIntValue(p.st, mpRoundsKey, int64(rounds)+1)
	emitTradeRoundStarted(p.log, rounds+1, leftover)
	return nil
}

// requireTradeRound distinguishes "no trade round ever" from "wrong phase".
func (p *Platform) requireTradeRound() error {
	if p.CurrentRound() == RoundTrade {
		return nil
	}
	if p.RoundsNum() <= 1 {
		return ErrFirstRound
	}
	return ErrTradeOnly
}

// AddOrder escrows the seller's tokens behind a fixed token/eth offer.
func (p *Platform) AddOrder(caller sdk.Address, tokenAmount, ethAmount Amount) (uint64, error) {
	if err := p.requireTradeRound(); err != nil {
		return 0, err
	}
	if tokenAmount <= 0 || ethAmount <= 0 {
		return 0, ErrNoMoney
	}
	if err := p.ledger.Draw(caller, p.addr, p.acdmAsset, int64(tokenAmount)); err != nil {
		return 0, err
	}
	id := getCount(p.st, OrdersCount)
	o := &Order{
		Id:        id,
		Seller:    caller,
		Amount:    tokenAmount,
		Eth:       ethAmount,
		Remaining: tokenAmount,
	}
	saveOrder(p.st, o)
	setCount(p.st, OrdersCount, id+1)
	emitOrderCreated(p.log, id, caller, tokenAmount, ethAmount)
	return id, nil
}

// RemoveOrder hands the unsold remainder back to the seller.
func (p *Platform) RemoveOrder(caller sdk.Address, id uint64) error {
	if err := p.requireTradeRound(); err != nil {
		return err
	}
	o := loadOrder(p.st, id)
	if o == nil || o.Seller != caller {
		return ErrNotYourOrder
	}
	if o.Remaining > 0 {
		if err := p.ledger.Transfer(p.addr, caller, p.acdmAsset, int64(o.Remaining)); err != nil {
			return err
		}
	}
	deleteOrder(p.st, id)
	emitOrderClosed(p.log, id)
	return nil
}

// RedeemOrder fills part of an offer at its implied price. All bookkeeping
// commits before the outbound transfers run.
func (p *Platform) RedeemOrder(caller sdk.Address, id uint64, value Amount) (Amount, error) {
	if err := p.requireTradeRound(); err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, ErrNoMoney
	}
	o := loadOrder(p.st, id)
	if o == nil {
		return 0, ErrTooManyTokens
	}
	// unit price keeps the math inside int64 for any realistic volume
	price := o.Eth * AcdmScale / o.Amount
	if price <= 0 {
		return 0, ErrTooManyTokens
	}
	tokens := value * AcdmScale / price
	if tokens > o.Remaining {
		return 0, ErrTooManyTokens
	}
	if err := p.ledger.Draw(caller, p.addr, sdk.AssetEth, int64(value)); err != nil {
		return 0, err
	}
	cut1 := value * p.promille(mpTradeRef1Key, DefaultTradeRef1Promille) / PromilleBase
	cut2 := value * p.promille(mpTradeRef2Key, DefaultTradeRef2Promille) / PromilleBase
	sellerNet := value - cut1 - cut2

	o.Remaining -= tokens
	closed := o.Remaining == 0
	if closed {
		deleteOrder(p.st, id)
	} else {
		saveOrder(p.st, o)
	}
	setIntValue(p.st, mpTurnoverKey, int64(p.TradeTurnover()+value))

	pot := Amount(0)
	ref1 := p.Referrer(caller)
	if ref1.IsZero() {
		pot += cut1 + cut2
	} else {
		if err := p.ledger.Transfer(p.addr, ref1, sdk.AssetEth, int64(cut1)); err != nil {
			return 0, err
		}
		if ref2 := p.Referrer(ref1); ref2.IsZero() {
			pot += cut2
		} else if err := p.ledger.Transfer(p.addr, ref2, sdk.AssetEth, int64(cut2)); err != nil {
			return 0, err
		}
	}
	if pot > 0 {
		setIntValue(p.st, mpBalanceKey, int64(p.InternalBalance()+pot))
	}
	if err := p.ledger.Transfer(p.addr, o.Seller, sdk.AssetEth, int64(sellerNet)); err != nil {
		return 0, err
	}
	if err := p.ledger.Transfer(p.addr, caller, p.acdmAsset, int64(tokens)); err != nil {
		return 0, err
	}
	emitOrderRedeemed(p.log, id, caller, tokens, value)
	if closed {
		emitOrderClosed(p.log, id)
	}
	return tokens, nil
}

// setPromille guards the four referral knobs behind the DAO identity.
func (p *Platform) setPromille(caller sdk.Address, key string, v uint64) error {
	if caller != p.daoAddr {
		return ErrForbidden
	}
	setIntValue(p.st, key, int64(v))
	return nil
}

func (p *Platform) SetSaleRef1Promille(caller sdk.Address, v uint64) error {
	return p.setPromille(caller, mpSaleRef1Key, v)
}

func (p *Platform) SetSaleRef2Promille(caller sdk.Address, v uint64) error {
	return p.setPromille(caller, mpSaleRef2Key, v)
}

func (p *Platform) SetTradeRef1Promille(caller sdk.Address, v uint64) error {
	return p.setPromille(caller, mpTradeRef1Key, v)
}

func (p *Platform) SetTradeRef2Promille(caller sdk.Address, v uint64) error {
	return p.setPromille(caller, mpTradeRef2Key, v)
}

// SendCommissionToOwner sweeps the internal balance to the owner, DAO only.
func (p *Platform) SendCommissionToOwner(caller sdk.Address) error {
	if caller != p.daoAddr {
		return ErrForbidden
	}
	return p.sendCommissionToOwner()
}

func (p *Platform) sendCommissionToOwner() error {
	bal := p.InternalBalance()
	if bal == 0 {
		return ErrNothingToWithdraw
	}
	setIntValue(p.st, mpBalanceKey, 0)
	if err := p.ledger.Transfer(p.addr, p.owner, sdk.AssetEth, int64(bal)); err != nil {
		return err
	}
	emitCommissionSent(p.log, p.owner, bal)
	return nil
}

// BuyItPubTokensAndBurn spends the internal balance on reward tokens via the
// pool and destroys them, DAO only.
func (p *Platform) BuyItPubTokensAndBurn(caller sdk.Address) error {
	if caller != p.daoAddr {
		return ErrForbidden
	}
	return p.buyItPubTokensAndBurn()
}

func (p *Platform) buyItPubTokensAndBurn() error {
	bal := p.InternalBalance()
	if bal == 0 {
		return ErrNothingToWithdraw
	}
	p.ledger.Approve(p.addr, p.pool.Addr(), sdk.AssetEth, int64(bal))
	bought, err := p.pool.SwapEthForTokens(p.addr, p.rewardAsset, int64(bal))
	if err != nil {
		return err
	}
	setIntValue(p.st, mpBalanceKey, 0)
	if err := p.ledger.Burn(p.addr, p.rewardAsset, bought); err != nil {
		return err
	}
	emitBuyAndBurn(p.log, bal, Amount(bought))
	return nil
}

// ApplyCommand lets confirmed proposals steer the marketplace knobs.
func (p *Platform) ApplyCommand(cmd Command) error {
	switch cmd.Kind {
	case CmdSetSaleRef1Promille:
		setIntValue(p.st, mpSaleRef1Key, int64(cmd.Value))
		return nil
	case CmdSetSaleRef2Promille:
		setIntValue(p.st, mpSaleRef2Key, int64(cmd.Value))
		return nil
	case CmdSetTradeRef1Promille:
		setIntValue(p.st, mpTradeRef1Key, int64(cmd.Value))
		return nil
	case CmdSetTradeRef2Promille:
		setIntValue(p.st, mpTradeRef2Key, int64(cmd.Value))
		return nil
	case CmdSendCommissionToOwner:
		return p.sendCommissionToOwner()
	case CmdBuyItPubTokensAndBurn:
		return p.buyItPubTokensAndBurn()
	default:
		return ErrUnknownCommand
	}
}
