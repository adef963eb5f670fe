package contract

import "acdm_platform/sdk"

// saveStakePosition stores the encoded entry under the per-account slot.
func saveStakePosition(st State, addr sdk.Address, pos *StakePosition) {
	st.Set(stakePositionKey(addr), string(EncodeStakePosition(pos)))
}

// loadStakePosition returns nil when the account never staked or fully exited.
func loadStakePosition(st State, addr sdk.Address) *StakePosition {
	ptr := st.Get(stakePositionKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	pos, err := DecodeStakePosition([]byte(*ptr))
	if err != nil {
		return nil
	}
	return pos
}

// deleteStakePosition removes the slot entirely so exits leave no residue.
func deleteStakePosition(st State, addr sdk.Address) {
	st.Delete(stakePositionKey(addr))
}
