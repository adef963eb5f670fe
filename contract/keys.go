package contract

import "acdm_platform/sdk"

const (
	// kStakePosition stores encoded StakePosition blobs per account.
	kStakePosition byte = 0x01
	// kProposalMeta contains encoded Proposal records.
	kProposalMeta byte = 0x10
	// kVoteReceipt keeps per proposal+voter applied weight for delta re-votes.
	kVoteReceipt byte = 0x11
	// kVoterDeadline tracks the latest voting deadline an account is bound to.
	kVoterDeadline byte = 0x12
	// kOrder houses encoded Order structs by id.
	kOrder byte = 0x20
	// kReferral maps an account to its registered referrer.
	kReferral byte = 0x21
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// addrKey glues a one-byte prefix onto the address bytes, the usual per-account slot.
func addrKey(prefix byte, addr sdk.Address) string {
	buf := make([]byte, 0, 1+len(addr))
	buf = append(buf, prefix)
	buf = append(buf, addr.String()...)
	return string(buf)
}

// idKey builds a storage key string for an entity by numeric id.
func idKey(prefix byte, id uint64) string {
	var buf [9]byte
	buf[0] = prefix
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// stakePositionKey locates an account's staking entry.
func stakePositionKey(addr sdk.Address) string {
	return addrKey(kStakePosition, addr)
}

// proposalKey encodes id under the 0x10 prefix keeping metadata lumps contiguous.
func proposalKey(id uint64) string {
	return idKey(kProposalMeta, id)
}

// voteReceiptKey mixes proposal id plus voter bytes to avoid nested maps in storage.
func voteReceiptKey(id uint64, voter sdk.Address) string {
	buf := make([]byte, 0, 1+8+len(voter))
	buf = append(buf, kVoteReceipt)
	buf = packU64LE(id, buf)
	buf = append(buf, voter.String()...)
	return string(buf)
}

// voterDeadlineKey points at the latest deadline an account voted into.
func voterDeadlineKey(addr sdk.Address) string {
	return addrKey(kVoterDeadline, addr)
}

// orderKey builds a storage key string for an order by id.
func orderKey(id uint64) string {
	return idKey(kOrder, id)
}

// referralKey locates the stored referrer of an account.
func referralKey(addr sdk.Address) string {
	return addrKey(kReferral, addr)
}
