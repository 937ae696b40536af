// Package providers declares the opaque on-chain capability a strategy
// needs without binding it to any particular contract ABI or RPC
// transport: producing a signed backrun transaction of a given size.
package providers
