package engine

import "context"

// EventSourceMap adapts src, whose events are of type E1, into a source
// of E2 by applying f to each event. Errors from the inner source (
// including ErrSourceEnded) pass through unchanged.
func EventSourceMap[E1, E2 any](src EventSource[E1], f func(E1) E2) EventSource[E2] {
	return &mappedSource[E1, E2]{inner: src, f: f}
}

type mappedSource[E1, E2 any] struct {
	inner EventSource[E1]
	f     func(E1) E2
}

func (m *mappedSource[E1, E2]) Next(ctx context.Context) (E2, error) {
	e, err := m.inner.Next(ctx)
	if err != nil {
		var zero E2
		return zero, err
	}
	return m.f(e), nil
}

// ExecutorMap adapts exec, which carries out actions of type A1, into an
// executor of A2: f decides, for each A2, whether it maps to an inner
// action (ok == true) or should be silently dropped (ok == false, which
// Execute reports as success).
func ExecutorMap[A1, A2 any](exec Executor[A1], f func(A2) (A1, bool)) Executor[A2] {
	return &mappedExecutor[A1, A2]{inner: exec, f: f}
}

type mappedExecutor[A1, A2 any] struct {
	inner Executor[A1]
	f     func(A2) (A1, bool)
}

func (m *mappedExecutor[A1, A2]) Execute(ctx context.Context, a A2) error {
	a1, ok := m.f(a)
	if !ok {
		return nil
	}
	return m.inner.Execute(ctx, a1)
}
