package contract

import (
	"math"
	"testing"

	"acdm_platform/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFaults(t *testing.T) {
	e := newTestEnv(t)
	assert.ErrorIs(t, e.dep.Platform.Register(alice, alice), ErrSelfReferrer)
	require.NoError(t, e.dep.Platform.Register(alice, ""))
	assert.ErrorIs(t, e.dep.Platform.Register(alice, bob), ErrAlreadyRegistered)
}

func TestFirstSaleRound(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, e.dep.Platform.StartSaleRound(alice))

	assert.Equal(t, uint64(1), e.dep.Platform.RoundsNum())
	assert.Equal(t, RoundSale, e.dep.Platform.CurrentRound())
	assert.Equal(t, Amount(InitialSalePrice), e.dep.Platform.SalePrice())
	assert.Equal(t, Amount(InitialSaleSupply), e.dep.Platform.SaleSupply())
	assert.Equal(t, int64(InitialSaleSupply), e.ledger.Balance(e.dep.Platform.Addr(), sdk.AssetAcdm))

	// a second sale cannot start on top of a running one
	assert.ErrorIs(t, e.dep.Platform.StartSaleRound(alice), ErrSaleStart)
}

func TestTradeRoundNeedsAnExpiredSale(t *testing.T) {
	e := newTestEnv(t)
	assert.ErrorIs(t, e.dep.Platform.StartTradeRound(alice), ErrTradeStart)

	require.NoError(t, e.dep.Platform.StartSaleRound(alice))
	assert.ErrorIs(t, e.dep.Platform.StartTradeRound(alice), ErrTradeStart)

	e.clock.Advance(3 * secondsPerDay)
	require.NoError(t, e.dep.Platform.StartTradeRound(alice))
	assert.Equal(t, uint64(2), e.dep.Platform.RoundsNum())
	assert.Equal(t, RoundTrade, e.dep.Platform.CurrentRound())
	// unsold volume got burned
	assert.Equal(t, int64(0), e.ledger.Balance(e.dep.Platform.Addr(), sdk.AssetAcdm))
	assert.Equal(t, int64(0), e.ledger.TotalSupply(sdk.AssetAcdm))
}

func TestBuyACDMWithReferralChain(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, e.dep.Platform.Register(bob, alice))
	require.NoError(t, e.dep.Platform.Register(carol, bob))
	require.NoError(t, e.dep.Platform.StartSaleRound(owner))

	e.fundEth(t, carol, 1*GweiPerEth)
	tokens, err := e.dep.Platform.BuyACDM(carol, 1*GweiPerEth)
	require.NoError(t, err)

	// one eth at 0.00001 eth per token buys the full hundred thousand
	assert.Equal(t, Amount(100_000*AcdmScale), tokens)
	assert.Equal(t, int64(100_000*AcdmScale), e.ledger.Balance(carol, sdk.AssetAcdm))
	assert.Equal(t, Amount(0), e.dep.Platform.SaleSupply())

	// 50 promille to the direct referrer, 30 to the second tier
	assert.Equal(t, int64(GweiPerEth)*50/1000, e.ledger.Balance(bob, sdk.AssetEth))
	assert.Equal(t, int64(GweiPerEth)*30/1000, e.ledger.Balance(alice, sdk.AssetEth))
	assert.Equal(t, Amount(GweiPerEth)*920/1000, e.dep.Platform.InternalBalance())
}

func TestBuyACDMWithoutReferrerFillsThePot(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, e.dep.Platform.StartSaleRound(owner))
	e.fundEth(t, carol, GweiPerEth/2)

	_, err := e.dep.Platform.BuyACDM(carol, GweiPerEth/2)
	require.NoError(t, err)
	assert.Equal(t, Amount(GweiPerEth/2), e.dep.Platform.InternalBalance())
}

func TestBuyACDMFaults(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.dep.Platform.BuyACDM(alice, GweiPerEth)
	assert.ErrorIs(t, err, ErrSaleOnly)

	require.NoError(t, e.dep.Platform.StartSaleRound(owner))
	_, err = e.dep.Platform.BuyACDM(alice, 0)
	assert.ErrorIs(t, err, ErrNoMoney)

	e.fundEth(t, alice, 2*GweiPerEth)
	_, err = e.dep.Platform.BuyACDM(alice, 2*GweiPerEth)
	assert.ErrorIs(t, err, ErrRoundBalance)

	// the round stops selling once its time is up
	e.clock.Advance(3 * secondsPerDay)
	_, err = e.dep.Platform.BuyACDM(alice, GweiPerEth)
	assert.ErrorIs(t, err, ErrSaleOnly)
}

func TestSaleSelloutStillWaitsForTheDeadline(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, e.dep.Platform.StartSaleRound(owner))
	e.fundEth(t, alice, GweiPerEth)
	_, err := e.dep.Platform.BuyACDM(alice, GweiPerEth)
	require.NoError(t, err)
	assert.Equal(t, Amount(0), e.dep.Platform.SaleSupply())

	// even an empty sale only flips once its time is up
	assert.ErrorIs(t, e.dep.Platform.StartTradeRound(alice), ErrTradeStart)

	e.clock.Advance(3 * secondsPerDay)
	require.NoError(t, e.dep.Platform.StartTradeRound(alice))
	assert.Equal(t, RoundTrade, e.dep.Platform.CurrentRound())
}

// tradeEnv runs a sale with one buyer holding tokens, then flips to trade.
func tradeEnv(t *testing.T) *testEnv {
	t.Helper()
	e := newTestEnv(t)
	require.NoError(t, e.dep.Platform.StartSaleRound(owner))
	e.fundEth(t, alice, GweiPerEth/2)
	_, err := e.dep.Platform.BuyACDM(alice, GweiPerEth/2)
	require.NoError(t, err)
	e.clock.Advance(3 * secondsPerDay)
	require.NoError(t, e.dep.Platform.StartTradeRound(owner))
	return e
}

func TestOrdersNotAvailableInFirstRound(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.dep.Platform.AddOrder(alice, 1000, 1000)
	assert.ErrorIs(t, err, ErrFirstRound)

	require.NoError(t, e.dep.Platform.StartSaleRound(owner))
	_, err = e.dep.Platform.AddOrder(alice, 1000, 1000)
	assert.ErrorIs(t, err, ErrFirstRound)
}

func TestOrderLifecycle(t *testing.T) {
	e := tradeEnv(t)
	e.ledger.Approve(alice, e.dep.Platform.Addr(), sdk.AssetAcdm, 50_000*AcdmScale)
	id, err := e.dep.Platform.AddOrder(alice, 50_000*AcdmScale, GweiPerEth/2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id)
	assert.Equal(t, int64(50_000*AcdmScale), e.ledger.Balance(e.dep.Platform.Addr(), sdk.AssetAcdm))

	assert.ErrorIs(t, e.dep.Platform.RemoveOrder(bob, id), ErrNotYourOrder)

	// bob buys half the order
	e.fundEth(t, bob, GweiPerEth/4)
	tokens, err := e.dep.Platform.RedeemOrder(bob, id, GweiPerEth/4)
	require.NoError(t, err)
	assert.Equal(t, Amount(25_000*AcdmScale), tokens)
	assert.Equal(t, int64(25_000*AcdmScale), e.ledger.Balance(bob, sdk.AssetAcdm))

	// seller nets the gross minus both 25 promille cuts
	sellerNet := int64(GweiPerEth/4) * 950 / 1000
	assert.Equal(t, sellerNet, e.ledger.Balance(alice, sdk.AssetEth))
	assert.Equal(t, Amount(GweiPerEth/4), e.dep.Platform.TradeTurnover())

	ord := e.dep.Platform.Order(id)
	require.NotNil(t, ord)
	assert.Equal(t, Amount(25_000*AcdmScale), ord.Remaining)

	// the remainder comes back on removal
	require.NoError(t, e.dep.Platform.RemoveOrder(alice, id))
	assert.Equal(t, int64(25_000*AcdmScale), e.ledger.Balance(alice, sdk.AssetAcdm))
	assert.Nil(t, e.dep.Platform.Order(id))
}

func TestRedeemFaults(t *testing.T) {
	e := tradeEnv(t)
	e.fundEth(t, bob, GweiPerEth)

	_, err := e.dep.Platform.RedeemOrder(bob, 99, GweiPerEth/4)
	assert.ErrorIs(t, err, ErrTooManyTokens)

	e.ledger.Approve(alice, e.dep.Platform.Addr(), sdk.AssetAcdm, 10_000*AcdmScale)
	id, err := e.dep.Platform.AddOrder(alice, 10_000*AcdmScale, GweiPerEth/10)
	require.NoError(t, err)

	_, err = e.dep.Platform.RedeemOrder(bob, id, 0)
	assert.ErrorIs(t, err, ErrNoMoney)
	_, err = e.dep.Platform.RedeemOrder(bob, id, GweiPerEth/2)
	assert.ErrorIs(t, err, ErrTooManyTokens)
}

func TestFullRedemptionClosesTheOrder(t *testing.T) {
	e := tradeEnv(t)
	e.ledger.Approve(alice, e.dep.Platform.Addr(), sdk.AssetAcdm, 10_000*AcdmScale)
	id, err := e.dep.Platform.AddOrder(alice, 10_000*AcdmScale, GweiPerEth/10)
	require.NoError(t, err)

	e.fundEth(t, bob, GweiPerEth/10)
	_, err = e.dep.Platform.RedeemOrder(bob, id, GweiPerEth/10)
	require.NoError(t, err)
	assert.Nil(t, e.dep.Platform.Order(id))
	assert.Contains(t, e.logs.Last(), "ocl|")
}

func TestPriceEscalationAndFundedSupply(t *testing.T) {
	e := tradeEnv(t)
	e.ledger.Approve(alice, e.dep.Platform.Addr(), sdk.AssetAcdm, 50_000*AcdmScale)
	id, err := e.dep.Platform.AddOrder(alice, 50_000*AcdmScale, GweiPerEth/2)
	require.NoError(t, err)
	e.fundEth(t, bob, GweiPerEth/4)
	_, err = e.dep.Platform.RedeemOrder(bob, id, GweiPerEth/4)
	require.NoError(t, err)

	e.clock.Advance(3 * secondsPerDay)
	require.NoError(t, e.dep.Platform.StartSaleRound(owner))

	// 0.00001 eth grows to 0.0000143
	assert.Equal(t, Amount(14_300), e.dep.Platform.SalePrice())
	wantSupply := Amount(GweiPerEth/4) * AcdmScale / 14_300
	assert.Equal(t, wantSupply, e.dep.Platform.SaleSupply())
	assert.Equal(t, uint64(3), e.dep.Platform.RoundsNum())
}

func TestSupplyArithmeticRefusesToWrap(t *testing.T) {
	e := tradeEnv(t)
	e.clock.Advance(3 * secondsPerDay)

	// a turnover past the int64 headroom must stop the sale, not wrap
	setIntValue(e.st, mpTurnoverKey, math.MaxInt64/AcdmScale+1)
	assert.Panics(t, func() { _ = e.dep.Platform.StartSaleRound(owner) })
}

func TestPromilleSettersAreDAOOnly(t *testing.T) {
	e := newTestEnv(t)
	assert.ErrorIs(t, e.dep.Platform.SetSaleRef1Promille(owner, 10), ErrForbidden)
	assert.ErrorIs(t, e.dep.Platform.SetTradeRef2Promille(chair, 10), ErrForbidden)

	status := e.passProposal(t, e.dep.Platform.Addr(), Command{Kind: CmdSetSaleRef1Promille, Value: 100})
	assert.Equal(t, StatusConfirmedCallSucceeded, status)

	// the new cut applies to the next sale purchase
	require.NoError(t, e.dep.Platform.Register(bob, alice))
	require.NoError(t, e.dep.Platform.StartSaleRound(owner))
	e.fundEth(t, bob, GweiPerEth/10)
	_, err := e.dep.Platform.BuyACDM(bob, GweiPerEth/10)
	require.NoError(t, err)
	assert.Equal(t, int64(GweiPerEth/10)*100/1000, e.ledger.Balance(alice, sdk.AssetEth))
}

func TestSendCommissionToOwner(t *testing.T) {
	e := newTestEnv(t)
	assert.ErrorIs(t, e.dep.Platform.SendCommissionToOwner(alice), ErrForbidden)

	// an empty pot surfaces as a failed call, not an abort
	status := e.passProposal(t, e.dep.Platform.Addr(), Command{Kind: CmdSendCommissionToOwner})
	assert.Equal(t, StatusConfirmedCallFailed, status)

	require.NoError(t, e.dep.Platform.StartSaleRound(owner))
	e.fundEth(t, carol, GweiPerEth/2)
	_, err := e.dep.Platform.BuyACDM(carol, GweiPerEth/2)
	require.NoError(t, err)

	before := e.ledger.Balance(owner, sdk.AssetEth)
	status = e.passProposal(t, e.dep.Platform.Addr(), Command{Kind: CmdSendCommissionToOwner})
	assert.Equal(t, StatusConfirmedCallSucceeded, status)
	assert.Equal(t, before+int64(GweiPerEth/2), e.ledger.Balance(owner, sdk.AssetEth))
	assert.Equal(t, Amount(0), e.dep.Platform.InternalBalance())
}

func TestBuyItPubTokensAndBurn(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, e.dep.Platform.StartSaleRound(owner))
	e.fundEth(t, carol, GweiPerEth/2)
	_, err := e.dep.Platform.BuyACDM(carol, GweiPerEth/2)
	require.NoError(t, err)

	supplyBefore := e.ledger.TotalSupply(sdk.AssetItPub)
	status := e.passProposal(t, e.dep.Platform.Addr(), Command{Kind: CmdBuyItPubTokensAndBurn})
	assert.Equal(t, StatusConfirmedCallSucceeded, status)
	assert.Equal(t, Amount(0), e.dep.Platform.InternalBalance())
	assert.Less(t, e.ledger.TotalSupply(sdk.AssetItPub), supplyBefore)
	assert.Equal(t, int64(0), e.ledger.Balance(e.dep.Platform.Addr(), sdk.AssetItPub))
}
