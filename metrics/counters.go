package metrics

import "sync/atomic"

// Counters are the engine's monotonic runtime counters. Every field is
// safe for concurrent increment from any event source, strategy, or
// executor task.
type Counters struct {
	EventsReceived    atomic.Uint64
	ActionsDispatched atomic.Uint64
	BundlesSubmitted  atomic.Uint64
	SSEReconnects     atomic.Uint64
	ExecutorErrors    atomic.Uint64
}

// NewCounters returns a zeroed Counters.
func NewCounters() *Counters {
	return &Counters{}
}

// Snapshot is a point-in-time copy of Counters, safe to pass around and
// serialize without further synchronization.
type Snapshot struct {
	EventsReceived    uint64
	ActionsDispatched uint64
	BundlesSubmitted  uint64
	SSEReconnects     uint64
	ExecutorErrors    uint64
}

// Snapshot reads every counter. Individual loads are atomic but the
// snapshot as a whole is not a consistent point-in-time view under
// concurrent writers; that's acceptable for periodic sampling.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		EventsReceived:    c.EventsReceived.Load(),
		ActionsDispatched: c.ActionsDispatched.Load(),
		BundlesSubmitted:  c.BundlesSubmitted.Load(),
		SSEReconnects:     c.SSEReconnects.Load(),
		ExecutorErrors:    c.ExecutorErrors.Load(),
	}
}
