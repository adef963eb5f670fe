package contract

import "acdm_platform/sdk"

// DeployConfig collects everything the bootstrap needs. Zero values fall
// back to the reference deployment.
type DeployConfig struct {
	Owner       sdk.Address
	Chairperson sdk.Address

	StakingAddr  sdk.Address
	DAOAddr      sdk.Address
	PlatformAddr sdk.Address

	MinimumQuorum         Amount
	DebatingPeriodSeconds int64
	RoundTimeSeconds      int64
	StakingRewardFloat    Amount
	PoolLiquidityTokens   Amount
	PoolLiquidityEth      Amount
}

// Deployment bundles the three wired engines plus the LP ticker stakers use.
type Deployment struct {
	Staking  *Staking
	DAO      *DAO
	Platform *Platform
	LPAsset  sdk.Asset
}

// Deploy builds and wires the whole platform in the reference order: pool
// liquidity first so the LP ticker exists, then staking, governance on top
// of it, and the marketplace last with the DAO identity baked in.
func Deploy(st State, ledger sdk.Ledger, pool sdk.Pool, clock sdk.Clock, log sdk.Logger, cfg DeployConfig) (*Deployment, error) {
	if cfg.StakingAddr.IsZero() {
		cfg.StakingAddr = "contract:staking"
	}
	if cfg.DAOAddr.IsZero() {
		cfg.DAOAddr = "contract:dao"
	}
	if cfg.PlatformAddr.IsZero() {
		cfg.PlatformAddr = "contract:acdm"
	}
	if cfg.MinimumQuorum == 0 {
		cfg.MinimumQuorum = 150 * GweiPerEth
	}
	if cfg.DebatingPeriodSeconds == 0 {
		cfg.DebatingPeriodSeconds = secondsPerDay
	}
	if cfg.RoundTimeSeconds == 0 {
		cfg.RoundTimeSeconds = 3 * secondsPerDay
	}

	lp := pool.LPAsset(sdk.AssetItPub)
	if cfg.PoolLiquidityEth > 0 {
		if err := ledger.Mint(cfg.Owner, sdk.AssetItPub, int64(cfg.PoolLiquidityTokens)); err != nil {
			return nil, err
		}
		if err := ledger.Mint(cfg.Owner, sdk.AssetEth, int64(cfg.PoolLiquidityEth)); err != nil {
			return nil, err
		}
		ledger.Approve(cfg.Owner, pool.Addr(), sdk.AssetItPub, int64(cfg.PoolLiquidityTokens))
		ledger.Approve(cfg.Owner, pool.Addr(), sdk.AssetEth, int64(cfg.PoolLiquidityEth))
		if _, err := pool.AddLiquidity(cfg.Owner, sdk.AssetItPub, int64(cfg.PoolLiquidityTokens), int64(cfg.PoolLiquidityEth)); err != nil {
			return nil, err
		}
	}

	staking := NewStaking(st, ledger, clock, log, cfg.StakingAddr, cfg.Owner, lp, sdk.AssetItPub)
	dao := NewDAO(st, clock, log, cfg.DAOAddr, staking, cfg.Chairperson, cfg.MinimumQuorum, cfg.DebatingPeriodSeconds)
	if err := staking.SetDAO(cfg.Owner, dao.Addr(), dao); err != nil {
		return nil, err
	}
	dao.RegisterTarget(staking.Addr(), staking)

	platform := NewPlatform(st, ledger, pool, clock, log, cfg.PlatformAddr, cfg.Owner, dao.Addr(), sdk.AssetAcdm, sdk.AssetItPub, cfg.RoundTimeSeconds)
	dao.RegisterTarget(platform.Addr(), platform)

	if cfg.StakingRewardFloat > 0 {
		if err := ledger.Mint(staking.Addr(), sdk.AssetItPub, int64(cfg.StakingRewardFloat)); err != nil {
			return nil, err
		}
	}

	return &Deployment{
		Staking:  staking,
		DAO:      dao,
		Platform: platform,
		LPAsset:  lp,
	}, nil
}
