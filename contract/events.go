package contract

import (
	"fmt"

	"acdm_platform/sdk"
)

// emitStaked writes a tiny "stk" line so watchers know fresh weight arrived.
func emitStaked(log sdk.Logger, by sdk.Address, amount Amount) {
	log.Log(fmt.Sprintf(
		"stk|by:%s|am:%d",
		by,
		amount,
	))
}

// emitUnstaked mirrors the stake ping but signals the position closed.
func emitUnstaked(log sdk.Logger, by sdk.Address, amount Amount) {
	log.Log(fmt.Sprintf(
		"ust|by:%s|am:%d",
		by,
		amount,
	))
}

// emitClaimed records reward payouts so accrual math can be replayed from logs only.
func emitClaimed(log sdk.Logger, by sdk.Address, amount Amount) {
	log.Log(fmt.Sprintf(
		"clm|by:%s|am:%d",
		by,
		amount,
	))
}

// emitProposalCreated keeps observers updated with a short pc line for every new idea.
func emitProposalCreated(log sdk.Logger, id uint64, by sdk.Address, cmd Command, recipient sdk.Address) {
	log.Log(fmt.Sprintf(
		"pc|id:%d|by:%s|cmd:%s|to:%s",
		id,
		by,
		cmd.Kind.String(),
		recipient,
	))
}

// emitVoteCasted includes side plus weight so tallies can be rebuilt from logs.
func emitVoteCasted(log sdk.Logger, id uint64, voter sdk.Address, against bool, weight Amount) {
	log.Log(fmt.Sprintf(
		"v|id:%d|by:%s|ag:%t|w:%d",
		id,
		voter,
		against,
		weight,
	))
}

// emitProposalFinished is the single line auditors need for any outcome.
func emitProposalFinished(log sdk.Logger, id uint64, status ProposalStatus, votesFor, votesAgainst Amount) {
	log.Log(fmt.Sprintf(
		"pf|id:%d|s:%s|f:%d|a:%d",
		id,
		status.String(),
		votesFor,
		votesAgainst,
	))
}

// emitSaleRoundStarted logs round number, price and minted supply in one ping.
func emitSaleRoundStarted(log sdk.Logger, round uint64, price, supply Amount) {
	log.Log(fmt.Sprintf(
		"sr|n:%d|p:%d|sup:%d",
		round,
		price,
		supply,
	))
}

// emitTradeRoundStarted also carries how much unsold supply got burned.
func emitTradeRoundStarted(log sdk.Logger, round uint64, burned Amount) {
	log.Log(fmt.Sprintf(
		"tr|n:%d|burn:%d",
		round,
		burned,
	))
}

// emitTokenBought traces sale purchases with both token and eth legs.
func emitTokenBought(log sdk.Logger, by sdk.Address, tokens, value Amount) {
	log.Log(fmt.Sprintf(
		"tb|by:%s|am:%d|val:%d",
		by,
		tokens,
		value,
	))
}

// emitOrderCreated gives explorers a neat ping without scanning storage diffs.
func emitOrderCreated(log sdk.Logger, id uint64, by sdk.Address, tokens, eth Amount) {
	log.Log(fmt.Sprintf(
		"oc|id:%d|by:%s|am:%d|eth:%d",
		id,
		by,
		tokens,
		eth,
	))
}

// emitOrderClosed fires on removal and on full redemption alike.
func emitOrderClosed(log sdk.Logger, id uint64) {
	log.Log(fmt.Sprintf(
		"ocl|id:%d",
		id,
	))
}

// emitOrderRedeemed logs partial fills with the gross eth leg.
func emitOrderRedeemed(log sdk.Logger, id uint64, by sdk.Address, tokens, value Amount) {
	log.Log(fmt.Sprintf(
		"ord|id:%d|by:%s|am:%d|val:%d",
		id,
		by,
		tokens,
		value,
	))
}

// emitRegistered notes a fresh referral link.
func emitRegistered(log sdk.Logger, by, referrer sdk.Address) {
	log.Log(fmt.Sprintf(
		"reg|by:%s|ref:%s",
		by,
		referrer,
	))
}

// emitCommissionSent marks a DAO-triggered treasury sweep to the owner.
func emitCommissionSent(log sdk.Logger, to sdk.Address, amount Amount) {
	log.Log(fmt.Sprintf(
		"cs|to:%s|am:%d",
		to,
		amount,
	))
}

// emitBuyAndBurn records how much itpub got bought off the market and burned.
func emitBuyAndBurn(log sdk.Logger, spent, burned Amount) {
	log.Log(fmt.Sprintf(
		"bb|eth:%d|burn:%d",
		spent,
		burned,
	))
}
