package eventsources

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/vyorkin/kazuka"
	"github.com/vyorkin/kazuka/engine"
)

// NewBlockSource wraps an ethclient.Client's new-head subscription,
// yielding a kazuka.NewBlock for every head the node reports.
type NewBlockSource struct {
	heads chan *types.Header
	sub   ethereum.Subscription
}

// NewNewBlockSource dials client's WebSocket new-head feed.
func NewNewBlockSource(ctx context.Context, client *ethclient.Client) (*NewBlockSource, error) {
	heads := make(chan *types.Header, 16)
	sub, err := client.SubscribeNewHead(ctx, heads)
	if err != nil {
		return nil, err
	}
	return &NewBlockSource{heads: heads, sub: sub}, nil
}

func (s *NewBlockSource) Next(ctx context.Context) (kazuka.Event, error) {
	select {
	case h, ok := <-s.heads:
		if !ok {
			return nil, engine.ErrSourceEnded
		}
		return &kazuka.NewBlock{
			Hash:      h.Hash(),
			Number:    h.Number.Uint64(),
			Timestamp: h.Time,
		}, nil
	case err := <-s.sub.Err():
		if err == nil {
			return nil, engine.ErrSourceEnded
		}
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
