package main

import (
	"context"

	"github.com/vyorkin/kazuka"
	"github.com/vyorkin/kazuka/engine"
	"github.com/vyorkin/kazuka/metrics"
)

// countingSource increments counters.EventsReceived for every event the
// wrapped source successfully produces.
type countingSource struct {
	inner    engine.EventSource[kazuka.Event]
	counters *metrics.Counters
}

func (s *countingSource) Next(ctx context.Context) (kazuka.Event, error) {
	ev, err := s.inner.Next(ctx)
	if err == nil {
		s.counters.EventsReceived.Add(1)
	}
	return ev, err
}

// countingExecutor increments counters.ActionsDispatched for every action
// the wrapped executor is handed, and counters.BundlesSubmitted for every
// SubmitBundle action specifically.
type countingExecutor struct {
	inner    engine.Executor[kazuka.Action]
	counters *metrics.Counters
}

func (e *countingExecutor) Execute(ctx context.Context, a kazuka.Action) error {
	err := e.inner.Execute(ctx, a)
	e.counters.ActionsDispatched.Add(1)
	if _, ok := a.(*kazuka.SubmitBundle); ok {
		e.counters.BundlesSubmitted.Add(1)
	}
	if err != nil {
		e.counters.ExecutorErrors.Add(1)
	}
	return err
}
