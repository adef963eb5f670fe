package contract

import "acdm_platform/sdk"

// StakeQuery is the one capability governance needs from staking: the
// current vote weight of an account.
type StakeQuery interface {
	VotingPower(addr sdk.Address) Amount
}

const (
	daoChairKey  = "dao:chair"
	daoQuorumKey = "dao:quorum"
	daoDebateKey = "dao:debate"
)

// DAO runs chairperson-gated proposals carrying one typed command each.
// Vote weight comes from staking, execution goes through registered targets.
type DAO struct {
	st    State
	clock sdk.Clock
	log   sdk.Logger

	addr   sdk.Address
	stakes StakeQuery

	targets map[sdk.Address]GovTarget
}

func NewDAO(st State, clock sdk.Clock, log sdk.Logger, addr sdk.Address, stakes StakeQuery, chairperson sdk.Address, minimumQuorum Amount, debatingPeriod int64) *DAO {
	d := &DAO{
		st:      st,
		clock:   clock,
		log:     log,
		addr:    addr,
		stakes:  stakes,
		targets: make(map[sdk.Address]GovTarget),
	}
	if d.st.Get(daoChairKey) == nil {
		d.st.Set(daoChairKey, chairperson.String())
		setIntValue(d.st, daoQuorumKey, int64(minimumQuorum))
		setIntValue(d.st, daoDebateKey, debatingPeriod)
	}
	// the DAO governs its own knobs through the same command path
	d.targets[addr] = d
	return d
}

// Addr returns the governance identity other contracts authorize against.
func (d *DAO) Addr() sdk.Address {
	return d.addr
}

// RegisterTarget wires a governed contract in, done once at deploy time.
func (d *DAO) RegisterTarget(addr sdk.Address, target GovTarget) {
	d.targets[addr] = target
}

// Chairperson returns the only account allowed to open proposals.
func (d *DAO) Chairperson() sdk.Address {
	ptr := d.st.Get(daoChairKey)
	if ptr == nil {
		return ""
	}
	return sdk.Address(*ptr)
}

// MinimumQuorum is the total weight a vote needs to count at all.
func (d *DAO) MinimumQuorum() Amount {
	return Amount(getIntValue(d.st, daoQuorumKey, 0))
}

// DebatingPeriod is the voting window length in seconds.
func (d *DAO) DebatingPeriod() int64 {
	return getIntValue(d.st, daoDebateKey, 0)
}

// AddProposal opens a vote on one command aimed at one recipient. Ids are
// dense and start at zero.
func (d *DAO) AddProposal(caller sdk.Address, recipient sdk.Address, cmd Command, description string) (uint64, error) {
	if caller != d.Chairperson() {
		return 0, ErrOnlyChairperson
	}
	id := getCount(d.st, ProposalsCount)
	p := &Proposal{
		Id:          id,
		Recipient:   recipient,
		Description: description,
		Cmd:         cmd,
		Deadline:    d.clock.Now() + d.DebatingPeriod(),
	}
	saveProposal(d.st, p)
	setCount(d.st, ProposalsCount, id+1)
	emitProposalCreated(d.log, id, caller, cmd, recipient)
	return id, nil
}

// Vote applies the caller's stake weight to one side. Voting again after a
// fresh deposit only adds the delta, the same stake still counts on every
// other open proposal.
func (d *DAO) Vote(caller sdk.Address, id uint64, against bool) error {
	p := loadProposal(d.st, id)
	if p == nil || p.Finished {
		return ErrVotingNotActive
	}
	if d.clock.Now() >= p.Deadline {
		return ErrVotingEnded
	}
	weight := d.stakes.VotingPower(caller)
	rec := loadVoteReceipt(d.st, id, caller)
	var applied Amount
	if rec != nil {
		applied = rec.Applied
	}
	delta := weight - applied
	if weight == 0 || delta <= 0 {
		return ErrNoSuffrage
	}
	if against {
		p.VotesAgainst += delta
	} else {
		p.VotesFor += delta
	}
	saveProposal(d.st, p)
	saveVoteReceipt(d.st, id, caller, &VoteReceipt{Applied: weight, Against: against})
	bumpVoterDeadline(d.st, caller, p.Deadline)
	emitVoteCasted(d.log, id, caller, against, delta)
	return nil
}

// FinishProposal settles the tally once the window closed, anyone may call.
// A failing command call is absorbed into the status, never propagated.
func (d *DAO) FinishProposal(caller sdk.Address, id uint64) (ProposalStatus, error) {
	p := loadProposal(d.st, id)
	if p == nil || p.Finished {
		return 0, ErrVotingNotActive
	}
	if d.clock.Now() < p.Deadline {
		return 0, ErrVotingNotEnded
	}
	switch {
	case p.VotesFor+p.VotesAgainst < d.MinimumQuorum():
		p.Status = StatusRejectedTooFewQuorum
	case p.VotesFor <= p.VotesAgainst:
		// ties reject
		p.Status = StatusRejected
	default:
		target, ok := d.targets[p.Recipient]
		if !ok {
			p.Status = StatusConfirmedCallFailed
		} else if err := target.ApplyCommand(p.Cmd); err != nil {
			p.Status = StatusConfirmedCallFailed
		} else {
			p.Status = StatusConfirmedCallSucceeded
		}
	}
	p.Finished = true
	saveProposal(d.st, p)
	emitProposalFinished(d.log, id, p.Status, p.VotesFor, p.VotesAgainst)
	return p.Status, nil
}

// HasActiveVoting reports whether the account's weight still backs a vote
// whose window has not closed yet.
func (d *DAO) HasActiveVoting(addr sdk.Address) bool {
	return d.clock.Now() < getVoterDeadline(d.st, addr)
}

// Proposal exposes the stored record for queries and tests, nil when absent.
func (d *DAO) Proposal(id uint64) *Proposal {
	return loadProposal(d.st, id)
}

// SetChairperson is the external surface of the governed knob, only the DAO
// identity itself may hit these directly.
func (d *DAO) SetChairperson(caller, chair sdk.Address) error {
	if caller != d.addr {
		return ErrForbidden
	}
	d.st.Set(daoChairKey, chair.String())
	return nil
}

// SetMinimumQuorum mirrors SetChairperson for the quorum knob.
func (d *DAO) SetMinimumQuorum(caller sdk.Address, quorum Amount) error {
	if caller != d.addr {
		return ErrForbidden
	}
	setIntValue(d.st, daoQuorumKey, int64(quorum))
	return nil
}

// SetDebatingPeriodDuration mirrors SetChairperson for the window length.
func (d *DAO) SetDebatingPeriodDuration(caller sdk.Address, seconds int64) error {
	if caller != d.addr {
		return ErrForbidden
	}
	setIntValue(d.st, daoDebateKey, seconds)
	return nil
}

// ApplyCommand lets confirmed proposals steer the DAO's own configuration.
func (d *DAO) ApplyCommand(cmd Command) error {
	switch cmd.Kind {
	case CmdSetChairperson:
		d.st.Set(daoChairKey, cmd.Addr.String())
		return nil
	case CmdSetMinimumQuorum:
		setIntValue(d.st, daoQuorumKey, int64(cmd.Value))
		return nil
	case CmdSetDebatingPeriodDuration:
		setIntValue(d.st, daoDebateKey, int64(cmd.Value))
		return nil
	default:
		return ErrUnknownCommand
	}
}
