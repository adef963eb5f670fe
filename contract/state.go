package contract

// State is the host key/value store every engine persists into. Values are
// opaque strings, binary blobs ride along as raw bytes in a string.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}
