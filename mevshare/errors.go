package mevshare

import "fmt"

// HTTPError wraps a non-2xx response from the matchmaker.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("mevshare: http %d: %s", e.StatusCode, e.Body)
}

// SerdeJSONError wraps a single frame's JSON decode failure. It does not
// terminate the stream: the caller sees it as one Next() result and may
// keep polling.
type SerdeJSONError struct {
	Err error
}

func (e *SerdeJSONError) Error() string { return "mevshare: decode frame: " + e.Err.Error() }
func (e *SerdeJSONError) Unwrap() error { return e.Err }

// MaxRetriesExceededError is fatal for the one EventStream it terminates;
// other subscriptions on the same Client are unaffected.
type MaxRetriesExceededError struct {
	Retries int
}

func (e *MaxRetriesExceededError) Error() string {
	return fmt.Sprintf("mevshare: max retries exceeded (%d)", e.Retries)
}

// ErrStreamEnded is returned by Next once the stream has reached its
// terminal End state (clean upstream close, or after MaxRetriesExceeded).
var ErrStreamEnded = fmt.Errorf("mevshare: stream ended")
