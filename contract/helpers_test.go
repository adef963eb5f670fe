package contract

import (
	"testing"

	"acdm_platform/sdk"

	"github.com/stretchr/testify/require"
)

const (
	owner = sdk.Address("user:owner")
	chair = sdk.Address("user:chair")
	alice = sdk.Address("user:alice")
	bob   = sdk.Address("user:bob")
	carol = sdk.Address("user:carol")

	startTime = int64(1_700_000_000)
)

type testEnv struct {
	st     *MockState
	ledger *sdk.MockLedger
	pool   *sdk.MockPool
	clock  *sdk.MockClock
	logs   *sdk.MemoryLogger
	dep    *Deployment
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := NewMockState()
	ledger := sdk.NewMockLedger()
	pool := sdk.NewMockPool("contract:pool", ledger)
	clock := sdk.NewMockClock(startTime)
	logs := sdk.NewMemoryLogger()
	dep, err := Deploy(st, ledger, pool, clock, logs, DeployConfig{
		Owner:               owner,
		Chairperson:         chair,
		StakingRewardFloat:  1_000_000 * GweiPerEth,
		PoolLiquidityTokens: 1_000 * GweiPerEth,
		PoolLiquidityEth:    10 * GweiPerEth,
	})
	require.NoError(t, err)
	return &testEnv{
		st:     st,
		ledger: ledger,
		pool:   pool,
		clock:  clock,
		logs:   logs,
		dep:    dep,
	}
}

// fundLP mints LP shares to the account and preapproves the staking custody.
func (e *testEnv) fundLP(t *testing.T, addr sdk.Address, amount Amount) {
	t.Helper()
	require.NoError(t, e.ledger.Mint(addr, e.dep.LPAsset, int64(amount)))
	e.ledger.Approve(addr, e.dep.Staking.Addr(), e.dep.LPAsset, int64(amount))
}

// stake funds and locks in one go, the usual test opener.
func (e *testEnv) stake(t *testing.T, addr sdk.Address, amount Amount) {
	t.Helper()
	e.fundLP(t, addr, amount)
	require.NoError(t, e.dep.Staking.Stake(addr, amount))
}

// fundEth mints spendable eth and preapproves the platform custody.
func (e *testEnv) fundEth(t *testing.T, addr sdk.Address, amount Amount) {
	t.Helper()
	require.NoError(t, e.ledger.Mint(addr, sdk.AssetEth, int64(amount)))
	e.ledger.Approve(addr, e.dep.Platform.Addr(), sdk.AssetEth, int64(amount))
}

// passProposal pushes one command through the full governance path: fresh
// quorum-sized stake, chair proposal, a yes vote and the debate window.
func (e *testEnv) passProposal(t *testing.T, recipient sdk.Address, cmd Command) ProposalStatus {
	t.Helper()
	e.stake(t, alice, 200*GweiPerEth)
	id, err := e.dep.DAO.AddProposal(chair, recipient, cmd, "test run")
	require.NoError(t, err)
	require.NoError(t, e.dep.DAO.Vote(alice, id, false))
	e.clock.Advance(e.dep.DAO.DebatingPeriod())
	status, err := e.dep.DAO.FinishProposal(bob, id)
	require.NoError(t, err)
	return status
}
