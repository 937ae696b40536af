package engine

import (
	"errors"
	"fmt"
)

// ErrSourceEnded is returned by EventSource.Next to signal a natural,
// non-error end of the upstream stream. The source task exits cleanly.
var ErrSourceEnded = errors.New("engine: event source ended")

// ErrChannelClosed is returned by a subscription once its broadcast
// channel has been closed and fully drained.
var ErrChannelClosed = errors.New("engine: channel closed")

// ErrNoSubscribers is returned by a push with zero current subscribers.
// It is informational: the value is still written to the ring buffer, but
// a subscriber that arrives afterward starts at the current head and never
// observes it.
var ErrNoSubscribers = errors.New("engine: no subscribers")

// LagError reports that a subscriber fell behind the ring buffer's
// capacity; Skipped values were dropped for this subscriber only.
type LagError struct {
	Skipped uint64
}

func (e *LagError) Error() string {
	return fmt.Sprintf("engine: subscriber lagged, dropped %d item(s)", e.Skipped)
}

// EngineError wraps a startup-time failure, currently only a strategy's
// SyncState returning an error.
type EngineError struct {
	Stage string
	Err   error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine: %s: %v", e.Stage, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }
