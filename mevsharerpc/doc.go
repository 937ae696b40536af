// Package mevsharerpc defines the wire objects the Flashbots MEV-Share
// relay accepts and the JSON-RPC 2.0 envelope used to send them, grounded
// on the relay client in the retrieval pack rather than on the teacher's
// own (internal) RPC transport.
package mevsharerpc
