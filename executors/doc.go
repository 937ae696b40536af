// Package executors implements engine.Executor[kazuka.Action] over
// concrete downstreams: the public mempool.
package executors
