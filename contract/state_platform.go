package contract

import "acdm_platform/sdk"

// saveOrder stores the encoded offer under its id slot.
func saveOrder(st State, o *Order) {
	st.Set(orderKey(o.Id), string(EncodeOrder(o)))
}

// loadOrder returns nil for removed or never-created ids.
func loadOrder(st State, id uint64) *Order {
	ptr := st.Get(orderKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	o, err := DecodeOrder([]byte(*ptr))
	if err != nil {
		return nil
	}
	return o
}

// deleteOrder clears the slot once the offer is closed or drained.
func deleteOrder(st State, id uint64) {
	st.Delete(orderKey(id))
}

// saveReferral links an account to its referrer, empty referrer still marks
// the account as registered.
func saveReferral(st State, addr, referrer sdk.Address) {
	st.Set(referralKey(addr), referrer.String())
}

// loadReferral returns the referrer and whether the account registered at all.
func loadReferral(st State, addr sdk.Address) (sdk.Address, bool) {
	ptr := st.Get(referralKey(addr))
	if ptr == nil {
		return "", false
	}
	return sdk.Address(*ptr), true
}
