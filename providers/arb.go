package providers

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ArbProvider is the opaque on-chain arbitrage contract collaborator a
// strategy calls to turn a (pool pair, backrun size) into a signed,
// ready-to-bundle transaction. How it builds and signs that transaction
// — which contract, which signer, which calldata encoding — is outside
// the engine's concern; the strategy only needs the bytes back.
type ArbProvider interface {
	// BuildSignedBackrun returns the raw signed transaction bytes for a
	// backrun of size (wei) against the V2/V3 pool pair, targeting
	// v3Pool's price deviation. v2IsWeth0 tells the provider which side
	// of the V2 pool holds WETH.
	BuildSignedBackrun(ctx context.Context, v3Pool, v2Pool common.Address, v2IsWeth0 bool, size *big.Int) ([]byte, error)
}

// PlaceholderBackrunBytes is the sentinel payload substituted for a real
// signed transaction in dry-run mode, so a bundle's shape can still be
// exercised end to end without touching a signer or an RPC endpoint.
var PlaceholderBackrunBytes = []byte{0xde, 0xad, 0xbe, 0xef}

// DryRunProvider satisfies ArbProvider without ever dialing out: every
// call returns the same placeholder bytes.
type DryRunProvider struct{}

func (DryRunProvider) BuildSignedBackrun(ctx context.Context, v3Pool, v2Pool common.Address, v2IsWeth0 bool, size *big.Int) ([]byte, error) {
	return PlaceholderBackrunBytes, nil
}
