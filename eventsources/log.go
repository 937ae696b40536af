package eventsources

import (
	"context"
	"encoding/binary"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/bloomfilter/v2"

	"github.com/vyorkin/kazuka"
	"github.com/vyorkin/kazuka/engine"
)

// LogEventSource wraps an ethclient.Client's filtered-log subscription.
// The server-side FilterQuery already narrows to a set of addresses, but
// when that set is wide (e.g. every pool in a strategy's universe) a
// cheap client-side bloom prefilter avoids allocating a kazuka.Event for
// logs the caller's narrower address subset will reject anyway.
type LogEventSource struct {
	logs  chan types.Log
	sub   ethereum.Subscription
	bloom *bloomfilter.Filter
}

// NewLogEventSource subscribes to logs matching query and prefilters by
// addresses (which should be query.Addresses or a subset of it).
func NewLogEventSource(ctx context.Context, client *ethclient.Client, query ethereum.FilterQuery, addresses []common.Address) (*LogEventSource, error) {
	logs := make(chan types.Log, 256)
	sub, err := client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return nil, err
	}

	var bf *bloomfilter.Filter
	if len(addresses) > 0 {
		bf, err = bloomfilter.NewOptimal(uint64(len(addresses)), 0.001)
		if err != nil {
			return nil, err
		}
		for _, a := range addresses {
			bf.Add(addressHashOf(a))
		}
	}

	return &LogEventSource{logs: logs, sub: sub, bloom: bf}, nil
}

func (s *LogEventSource) Next(ctx context.Context) (kazuka.Event, error) {
	for {
		select {
		case lg, ok := <-s.logs:
			if !ok {
				return nil, engine.ErrSourceEnded
			}
			if s.bloom != nil && !s.bloom.Contains(addressHashOf(lg.Address)) {
				continue
			}
			return &kazuka.ContractLog{Log: lg}, nil
		case err := <-s.sub.Err():
			if err == nil {
				return nil, engine.ErrSourceEnded
			}
			return nil, err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// addressHash adapts a 20-byte address into the 64-bit hash.Hash64 the
// bloom filter expects, using the address's own leading bytes: an
// address has no meaningful internal structure to collide adversarially
// against a random oracle the way a hand-picked short key might.
type addressHash uint64

func (addressHash) Write(p []byte) (int, error) { return len(p), nil }
func (addressHash) Sum(b []byte) []byte          { return b }
func (addressHash) Reset()                       {}
func (addressHash) Size() int                    { return 8 }
func (addressHash) BlockSize() int                { return 8 }
func (h addressHash) Sum64() uint64              { return uint64(h) }

func addressHashOf(a common.Address) addressHash {
	return addressHash(binary.BigEndian.Uint64(a[:8]))
}
