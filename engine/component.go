package engine

import "context"

// EventSource produces a single, possibly unbounded sequence of events.
// Next should return ErrSourceEnded when the upstream stream is
// naturally exhausted; any other error is logged by the engine and
// polling continues.
type EventSource[E any] interface {
	Next(ctx context.Context) (E, error)
}

// Strategy consumes events and reacts with zero or more actions.
// SyncState is called exactly once, synchronously, before the strategy's
// task loop starts; a non-nil error aborts engine startup entirely.
// ProcessEvent is infallible: a strategy with nothing to do returns a nil
// or empty slice, never an error.
type Strategy[E, A any] interface {
	SyncState(ctx context.Context) error
	ProcessEvent(ctx context.Context, event E) []A
}

// Executor carries out a single action. Execute's error is logged by the
// engine and never retried automatically.
type Executor[A any] interface {
	Execute(ctx context.Context, action A) error
}
