package contract

import "strconv"

// Plain-text state keys. Scalars live as decimal strings so the host kv
// stays inspectable, binary blobs are reserved for full entities.
const (
	// ProposalsCount holds an integer counter for proposals (used for generating IDs).
	ProposalsCount = "count:props"
	// OrdersCount holds an integer counter for orders (used for generating IDs).
	OrdersCount = "count:orders"
)

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(st State, key string) uint64 {
	ptr := st.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(st State, key string, n uint64) {
	st.Set(key, strconv.FormatUint(n, 10))
}

// getIntValue reads a decimal int64 scalar, returning fallback when unset.
func getIntValue(st State, key string, fallback int64) int64 {
	ptr := st.Get(key)
	if ptr == nil || *ptr == "" {
		return fallback
	}
	n, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// setIntValue stores an int64 scalar as its decimal string.
func setIntValue(st State, key string, v int64) {
	st.Set(key, strconv.FormatInt(v, 10))
}
