package contract

// -----------------------------------------------------------------------------
// Unit Scaling
// -----------------------------------------------------------------------------

const (
	// GweiPerEth is the native currency scale, all eth amounts are gwei.
	GweiPerEth = 1_000_000_000
	// AcdmScale is the sale token precision (six decimals).
	AcdmScale = 1_000_000
)

// -----------------------------------------------------------------------------
// Staking Defaults
// -----------------------------------------------------------------------------

const (
	// DefaultStakingCooldownDays is the lockup before unstaking, DAO adjustable.
	DefaultStakingCooldownDays = 1
	// RewardCooldownSeconds is one reward accrual period.
	RewardCooldownSeconds = 7 * 24 * 3600
	// RewardPercentage is paid per full period on the staked amount.
	RewardPercentage = 3
)

// -----------------------------------------------------------------------------
// Marketplace Defaults
// -----------------------------------------------------------------------------

const (
	// InitialSalePrice is 0.00001 eth per acdm token, in gwei.
	InitialSalePrice = 10_000
	// PriceGrowthNumerator / PriceGrowthDenominator give the 3% per-round bump.
	PriceGrowthNumerator   = 103
	PriceGrowthDenominator = 100
	// PriceGrowthFlat is the fixed 0.000004 eth added each round, in gwei.
	PriceGrowthFlat = 4_000
	// InitialSaleSupply is the fixed round-one sale volume, in micro acdm.
	InitialSaleSupply = 100_000 * AcdmScale

	// DefaultSaleRef1Promille / DefaultSaleRef2Promille are the sale-round
	// referral cuts in parts per thousand of the gross payment.
	DefaultSaleRef1Promille = 50
	DefaultSaleRef2Promille = 30
	// DefaultTradeRef1Promille / DefaultTradeRef2Promille are the trade-round cuts.
	DefaultTradeRef1Promille = 25
	DefaultTradeRef2Promille = 25

	// PromilleBase is the denominator for all referral math.
	PromilleBase = 1000
)

const secondsPerDay = 24 * 3600
