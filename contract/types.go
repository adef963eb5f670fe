package contract

import "acdm_platform/sdk"

// Amount is an integer base-unit quantity. Eth amounts are gwei, acdm
// amounts are micro tokens, reward and LP tokens use gwei scale too.
type Amount int64

// RoundType tells which half of the marketplace cycle is live.
type RoundType uint8

const (
	RoundNone  RoundType = 0
	RoundSale  RoundType = 1
	RoundTrade RoundType = 2
)

// String serializes the RoundType enum into short log-friendly codes.
// Example payload: RoundSale.String()
func (r RoundType) String() string {
	switch r {
	case RoundSale:
		return "sale"
	case RoundTrade:
		return "trade"
	default:
		return "none"
	}
}

// ProposalStatus is the terminal outcome recorded when a proposal finishes.
type ProposalStatus uint8

const (
	StatusRejected               ProposalStatus = 0
	StatusRejectedTooFewQuorum   ProposalStatus = 1
	StatusConfirmedCallSucceeded ProposalStatus = 2
	StatusConfirmedCallFailed    ProposalStatus = 3
)

// String serializes the status for event lines.
// Example payload: StatusRejected.String()
func (s ProposalStatus) String() string {
	switch s {
	case StatusRejected:
		return "rejected"
	case StatusRejectedTooFewQuorum:
		return "rejected_quorum"
	case StatusConfirmedCallSucceeded:
		return "confirmed_ok"
	case StatusConfirmedCallFailed:
		return "confirmed_failed"
	default:
		return "unknown"
	}
}

// StakePosition is one account's ledger entry in the staking contract.
type StakePosition struct {
	Amount      Amount
	StakedAt    int64
	LastClaimAt int64
}

// Proposal carries one governance command plus its running tally.
type Proposal struct {
	Id           uint64
	Recipient    sdk.Address
	Description  string
	Cmd          Command
	VotesFor     Amount
	VotesAgainst Amount
	Deadline     int64
	Finished     bool
	Status       ProposalStatus
}

// VoteReceipt remembers how much weight an account already applied to a
// proposal so a later vote only tops up the delta.
type VoteReceipt struct {
	Applied Amount
	Against bool
}

// Order is a trade-round sell offer with partial redemption support.
type Order struct {
	Id        uint64
	Seller    sdk.Address
	Amount    Amount
	Eth       Amount
	Remaining Amount
}
