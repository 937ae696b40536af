package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/log"
)

const (
	defaultEventCapacity  = 512
	defaultActionCapacity = 512
)

// Engine wires EventSource[E], Strategy[E,A] and Executor[A] instances
// together, provisions their broadcast channels, and spawns their tasks
// on Run. An Engine is built once via the Add* methods and run once.
type Engine[E, A any] struct {
	sources    []EventSource[E]
	strategies []Strategy[E, A]
	executors  []Executor[A]

	eventCap  int
	actionCap int
}

// New returns an empty engine with the default channel capacities
// (512 events, 512 actions).
func New[E, A any]() *Engine[E, A] {
	return &Engine[E, A]{eventCap: defaultEventCapacity, actionCap: defaultActionCapacity}
}

// WithEventCapacity overrides the event broadcast channel's capacity.
func (e *Engine[E, A]) WithEventCapacity(n int) *Engine[E, A] {
	e.eventCap = n
	return e
}

// WithActionCapacity overrides the action broadcast channel's capacity.
func (e *Engine[E, A]) WithActionCapacity(n int) *Engine[E, A] {
	e.actionCap = n
	return e
}

// AddEventSource registers src. Ordering of Add* calls has no semantic
// effect.
func (e *Engine[E, A]) AddEventSource(src EventSource[E]) *Engine[E, A] {
	e.sources = append(e.sources, src)
	return e
}

// AddStrategy registers s.
func (e *Engine[E, A]) AddStrategy(s Strategy[E, A]) *Engine[E, A] {
	e.strategies = append(e.strategies, s)
	return e
}

// AddExecutor registers ex.
func (e *Engine[E, A]) AddExecutor(ex Executor[A]) *Engine[E, A] {
	e.executors = append(e.executors, ex)
	return e
}

// Run starts the pipeline: it provisions the event and action broadcast
// channels, subscribes and spawns every executor, then subscribes each
// strategy and calls its SyncState synchronously (in registration order)
// before spawning it, then spawns every source. If any strategy's
// SyncState fails, every task started so far is cancelled and Run
// returns the error without starting anything else.
func (e *Engine[E, A]) Run(ctx context.Context) (*TaskHandle, error) {
	runCtx, cancel := context.WithCancel(ctx)

	events := newBroadcastChannel[E](e.eventCap)
	actions := newBroadcastChannel[A](e.actionCap)

	h := newTaskHandle(cancel)

	var sourcesWG, strategiesWG sync.WaitGroup

	for i, ex := range e.executors {
		sub := actions.subscribe()
		name := fmt.Sprintf("executor-%d", i)
		h.spawn(name, func() error {
			return runExecutorTask(runCtx, ex, sub)
		})
	}

	for i, s := range e.strategies {
		sub := events.subscribe()
		if err := s.SyncState(runCtx); err != nil {
			h.abortAndWait()
			events.close()
			actions.close()
			return nil, &EngineError{Stage: "sync_state", Err: err}
		}
		name := fmt.Sprintf("strategy-%d", i)
		strategiesWG.Add(1)
		h.spawn(name, func() error {
			defer strategiesWG.Done()
			return runStrategyTask(runCtx, s, sub, actions)
		})
	}

	for i, src := range e.sources {
		name := fmt.Sprintf("source-%d", i)
		sourcesWG.Add(1)
		h.spawn(name, func() error {
			defer sourcesWG.Done()
			return runSourceTask(runCtx, src, events)
		})
	}

	// Once every source has naturally ended (or been cancelled), close
	// the event channel so strategies waiting on it unblock with
	// ErrChannelClosed instead of hanging forever. Likewise for
	// strategies and the action channel.
	go func() {
		sourcesWG.Wait()
		events.close()
	}()
	go func() {
		strategiesWG.Wait()
		actions.close()
	}()

	h.closeWhenDone()
	return h, nil
}

func runSourceTask[E any](ctx context.Context, src EventSource[E], out *broadcastChannel[E]) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		ev, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrSourceEnded) {
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			log.Warn("engine: event source error", "err", err)
			continue
		}
		if err := out.push(ev); err != nil {
			log.Debug("engine: event dropped, no subscribers", "err", err)
		}
	}
}

func runStrategyTask[E, A any](ctx context.Context, s Strategy[E, A], sub *subscription[E], out *broadcastChannel[A]) error {
	for {
		ev, err := sub.recv(ctx)
		if err != nil {
			var lag *LagError
			if errors.As(err, &lag) {
				log.Warn("engine: strategy subscriber lagged", "skipped", lag.Skipped)
				continue
			}
			if errors.Is(err, ErrChannelClosed) {
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		for _, action := range s.ProcessEvent(ctx, ev) {
			if err := out.push(action); err != nil {
				log.Debug("engine: action dropped, no subscribers", "err", err)
			}
		}
	}
}

func runExecutorTask[A any](ctx context.Context, ex Executor[A], sub *subscription[A]) error {
	for {
		a, err := sub.recv(ctx)
		if err != nil {
			var lag *LagError
			if errors.As(err, &lag) {
				log.Warn("engine: executor subscriber lagged", "skipped", lag.Skipped)
				continue
			}
			if errors.Is(err, ErrChannelClosed) {
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := ex.Execute(ctx, a); err != nil {
			log.Error("engine: executor failed", "err", err)
		}
	}
}
