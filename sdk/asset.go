package sdk

type Asset string

const (
	// AssetEth is the native currency, tracked in gwei base units.
	AssetEth Asset = "eth"
	// AssetAcdm is the marketplace sale token, six decimals.
	AssetAcdm Asset = "acdm"
	// AssetItPub is the platform reward token paid out by staking.
	AssetItPub Asset = "itpub"
	// AssetItPubEthLP is the pool share token staked for voting power.
	AssetItPubEthLP Asset = "itpub_eth_lp"
)

// String returns the raw ticker string for logging or ledger calls.
// Example payload: sdk.AssetEth.String()
func (a Asset) String() string {
	return string(a)
}
