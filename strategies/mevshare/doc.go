// Package mevshare implements the generic MevShareExecutor: an
// engine.Executor[kazuka.Action] that submits a SubmitBundle's
// MevSendBundle to a Flashbots-style relay over an authenticated
// JSON-RPC client.
package mevshare
