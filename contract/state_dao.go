package contract

import "acdm_platform/sdk"

// saveProposal stores the encoded record under its id slot.
func saveProposal(st State, p *Proposal) {
	st.Set(proposalKey(p.Id), string(EncodeProposal(p)))
}

// loadProposal returns nil for ids never handed out.
func loadProposal(st State, id uint64) *Proposal {
	ptr := st.Get(proposalKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	p, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		return nil
	}
	return p
}

// saveVoteReceipt records the applied weight for one proposal+voter pair.
func saveVoteReceipt(st State, id uint64, voter sdk.Address, rec *VoteReceipt) {
	st.Set(voteReceiptKey(id, voter), string(EncodeVoteReceipt(rec)))
}

// loadVoteReceipt returns nil when the account never voted on the proposal.
func loadVoteReceipt(st State, id uint64, voter sdk.Address) *VoteReceipt {
	ptr := st.Get(voteReceiptKey(id, voter))
	if ptr == nil || *ptr == "" {
		return nil
	}
	rec, err := DecodeVoteReceipt([]byte(*ptr))
	if err != nil {
		return nil
	}
	return rec
}

// getVoterDeadline reads the latest deadline the account is committed to.
func getVoterDeadline(st State, addr sdk.Address) int64 {
	return getIntValue(st, voterDeadlineKey(addr), 0)
}

// bumpVoterDeadline only ever moves the bound forward.
func bumpVoterDeadline(st State, addr sdk.Address, deadline int64) {
	if deadline > getVoterDeadline(st, addr) {
		setIntValue(st, voterDeadlineKey(addr), deadline)
	}
}
