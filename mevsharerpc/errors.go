package mevsharerpc

import "fmt"

// RelayError is the JSON-RPC error object returned by the relay itself,
// as opposed to a transport-level failure reaching it.
type RelayError struct {
	Code    int
	Message string
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("mevsharerpc: relay error %d: %s", e.Code, e.Message)
}

// SerdeError wraps a JSON encode/decode failure on either side of the
// wire.
type SerdeError struct {
	Err error
}

func (e *SerdeError) Error() string { return "mevsharerpc: " + e.Err.Error() }
func (e *SerdeError) Unwrap() error { return e.Err }
