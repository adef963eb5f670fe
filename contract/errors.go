package contract

import "errors"

// Stable fault reasons. Clients and tests match on these strings, so the
// wording never changes once shipped.
var (
	ErrZeroStake       = errors.New("Unable to stake 0 tokens")
	ErrTooEarly        = errors.New("It's too early")
	ErrNothingStaked   = errors.New("No tokens to unstake")
	ErrNothingToClaim  = errors.New("Nothing to claim")
	ErrActiveVoting    = errors.New("You have an active voting")
	ErrOnlyOwner       = errors.New("Only owner can do that")
	ErrDAOInitialized  = errors.New("DAO already initialized")
	ErrOnlyDAO         = errors.New("Only DAO proposal can change it")
	ErrDAOUnset        = errors.New("Please initialize DAO first")
	ErrOnlyChairperson = errors.New("Only chairperson can do that")
	ErrNoSuffrage      = errors.New("No suffrage")
	ErrVotingEnded     = errors.New("Proposal voting ended")
	ErrVotingNotActive = errors.New("Proposal voting is not active")
	ErrVotingNotEnded  = errors.New("Proposal voting is not ended")

	ErrSaleStart         = errors.New("Unable to start sale round")
	ErrTradeStart        = errors.New("Unable to start trade round")
	ErrSaleOnly          = errors.New("Available only in sale round")
	ErrTradeOnly         = errors.New("Available only in trade round")
	ErrFirstRound        = errors.New("Isn't available in first round")
	ErrNoMoney           = errors.New("No money received")
	ErrRoundBalance      = errors.New("Round balance exceeded")
	ErrSelfReferrer      = errors.New("Can't be a referrer for yourself")
	ErrAlreadyRegistered = errors.New("Already registered")
	ErrNotYourOrder      = errors.New("It's not your order")
	ErrTooManyTokens     = errors.New("You requested too much tokens")
	ErrForbidden         = errors.New("You can't do that")
	ErrNothingToWithdraw = errors.New("Nothing to withdraw")

	ErrUnknownCommand = errors.New("unknown command")
)
