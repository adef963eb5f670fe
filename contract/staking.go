package contract

import "acdm_platform/sdk"

// VotingQuery is the one capability staking needs from governance: whether
// an account still has weight locked in a live vote.
type VotingQuery interface {
	HasActiveVoting(addr sdk.Address) bool
}

const (
	stakingCooldownKey = "stk:cooldown_days"
	stakingDAOKey      = "stk:dao"
)

// Staking locks LP tokens, accrues itpub rewards per full cooldown period
// and lends its balances to the DAO as voting power.
type Staking struct {
	st     State
	ledger sdk.Ledger
	clock  sdk.Clock
	log    sdk.Logger

	addr        sdk.Address
	owner       sdk.Address
	lpAsset     sdk.Asset
	rewardAsset sdk.Asset

	votes VotingQuery
}

func NewStaking(st State, ledger sdk.Ledger, clock sdk.Clock, log sdk.Logger, addr, owner sdk.Address, lpAsset, rewardAsset sdk.Asset) *Staking {
	return &Staking{
		st:          st,
		ledger:      ledger,
		clock:       clock,
		log:         log,
		addr:        addr,
		owner:       owner,
		lpAsset:     lpAsset,
		rewardAsset: rewardAsset,
	}
}

// Addr returns the custody account holding staked LP and the reward float.
func (s *Staking) Addr() sdk.Address {
	return s.addr
}

// DAOAddr returns the governance address once wired, empty before.
func (s *Staking) DAOAddr() sdk.Address {
	ptr := s.st.Get(stakingDAOKey)
	if ptr == nil {
		return ""
	}
	return sdk.Address(*ptr)
}

// SetDAO wires governance in exactly once, owner only. The voting query is
// needed to gate unstaking while votes are live.
func (s *Staking) SetDAO(caller, daoAddr sdk.Address, votes VotingQuery) error {
	if caller != s.owner {
		return ErrOnlyOwner
	}
	if !s.DAOAddr().IsZero() {
		return ErrDAOInitialized
	}
	s.st.Set(stakingDAOKey, daoAddr.String())
	s.votes = votes
	return nil
}

// CooldownSeconds resolves the current lockup, falling back to the default.
func (s *Staking) CooldownSeconds() int64 {
	days := getIntValue(s.st, stakingCooldownKey, DefaultStakingCooldownDays)
	return days * secondsPerDay
}

// Stake draws approved LP tokens from the caller and restarts the lockup.
func (s *Staking) Stake(caller sdk.Address, amount Amount) error {
	if amount <= 0 {
		return ErrZeroStake
	}
	if err := s.ledger.Draw(caller, s.addr, s.lpAsset, int64(amount)); err != nil {
		return err
	}
	now := s.clock.Now()
	pos := loadStakePosition(s.st, caller)
	if pos == nil {
		pos = &StakePosition{LastClaimAt: now}
	}
	pos.Amount += amount
	pos.StakedAt = now
	saveStakePosition(s.st, caller, pos)
	emitStaked(s.log, caller, amount)
	return nil
}

// Unstake closes the whole position after the cooldown, blocked while the
// caller still backs a live vote.
func (s *Staking) Unstake(caller sdk.Address) error {
	pos := loadStakePosition(s.st, caller)
	if pos == nil || pos.Amount == 0 {
		return ErrNothingStaked
	}
	if s.DAOAddr().IsZero() || s.votes == nil {
		return ErrDAOUnset
	}
	if s.clock.Now() < pos.StakedAt+s.CooldownSeconds() {
		return ErrTooEarly
	}
	if s.votes.HasActiveVoting(caller) {
		return ErrActiveVoting
	}
	if err := s.ledger.Transfer(s.addr, caller, s.lpAsset, int64(pos.Amount)); err != nil {
		return err
	}
	deleteStakePosition(s.st, caller)
	emitUnstaked(s.log, caller, pos.Amount)
	return nil
}

// Claim pays out rewards for every full period since the last claim and
// advances the claim cursor by exactly those periods, partial time carries over.
func (s *Staking) Claim(caller sdk.Address) (Amount, error) {
	pos := loadStakePosition(s.st, caller)
	if pos == nil || pos.Amount == 0 {
		return 0, ErrNothingToClaim
	}
	periods := (s.clock.Now() - pos.LastClaimAt) / RewardCooldownSeconds
	if periods <= 0 {
		return 0, ErrNothingToClaim
	}
	reward := Amount(periods) * pos.Amount * RewardPercentage / 100
	if err := s.ledger.Transfer(s.addr, caller, s.rewardAsset, int64(reward)); err != nil {
		return 0, err
	}
	pos.LastClaimAt += periods * RewardCooldownSeconds
	saveStakePosition(s.st, caller, pos)
	emitClaimed(s.log, caller, reward)
	return reward, nil
}

// SetStakingCooldownInDays is the external surface of the governed knob,
// only the DAO address itself may hit it directly.
func (s *Staking) SetStakingCooldownInDays(caller sdk.Address, days uint64) error {
	dao := s.DAOAddr()
	if dao.IsZero() {
		return ErrDAOUnset
	}
	if caller != dao {
		return ErrOnlyDAO
	}
	setIntValue(s.st, stakingCooldownKey, int64(days))
	return nil
}

// ApplyCommand lets a confirmed proposal steer the staking knobs.
func (s *Staking) ApplyCommand(cmd Command) error {
	switch cmd.Kind {
	case CmdSetStakingCooldownDays:
		setIntValue(s.st, stakingCooldownKey, int64(cmd.Value))
		return nil
	default:
		return ErrUnknownCommand
	}
}

// VotingPower reports the currently staked amount, the DAO's vote weight.
func (s *Staking) VotingPower(addr sdk.Address) Amount {
	pos := loadStakePosition(s.st, addr)
	if pos == nil {
		return 0
	}
	return pos.Amount
}

// Position exposes the raw entry for queries and tests, nil when absent.
func (s *Staking) Position(addr sdk.Address) *StakePosition {
	return loadStakePosition(s.st, addr)
}
