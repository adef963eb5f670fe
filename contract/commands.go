package contract

import "acdm_platform/sdk"

// CommandKind enumerates every action a proposal can carry. The DAO only
// forwards a command to its recipient, each target decides which kinds it
// accepts.
type CommandKind uint8

const (
	CmdSetStakingCooldownDays CommandKind = 1

	CmdSetSaleRef1Promille   CommandKind = 10
	CmdSetSaleRef2Promille   CommandKind = 11
	CmdSetTradeRef1Promille  CommandKind = 12
	CmdSetTradeRef2Promille  CommandKind = 13
	CmdSendCommissionToOwner CommandKind = 14
	CmdBuyItPubTokensAndBurn CommandKind = 15

	CmdSetChairperson            CommandKind = 20
	CmdSetMinimumQuorum          CommandKind = 21
	CmdSetDebatingPeriodDuration CommandKind = 22
)

// String serializes the kind into short log-friendly codes.
// Example payload: CmdSetStakingCooldownDays.String()
func (k CommandKind) String() string {
	switch k {
	case CmdSetStakingCooldownDays:
		return "stk_cooldown"
	case CmdSetSaleRef1Promille:
		return "sale_ref1"
	case CmdSetSaleRef2Promille:
		return "sale_ref2"
	case CmdSetTradeRef1Promille:
		return "trade_ref1"
	case CmdSetTradeRef2Promille:
		return "trade_ref2"
	case CmdSendCommissionToOwner:
		return "send_commission"
	case CmdBuyItPubTokensAndBurn:
		return "buy_burn"
	case CmdSetChairperson:
		return "set_chair"
	case CmdSetMinimumQuorum:
		return "set_quorum"
	case CmdSetDebatingPeriodDuration:
		return "set_debate"
	default:
		return "unknown"
	}
}

// Command is the typed payload of a proposal. Value carries numeric
// arguments, Addr carries address arguments, unused fields stay zero.
type Command struct {
	Kind  CommandKind
	Value uint64
	Addr  sdk.Address
}

// GovTarget is anything the DAO can steer. A target returning an error
// turns the finished proposal into a confirmed-but-failed one instead of
// aborting the finish call.
type GovTarget interface {
	ApplyCommand(cmd Command) error
}
