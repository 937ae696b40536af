// Package eventsources implements engine.EventSource[kazuka.Event] over
// concrete upstreams: new block headers, pending mempool transactions,
// filtered contract logs, and the MEV-Share SSE hint feed.
package eventsources
