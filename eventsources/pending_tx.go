package eventsources

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/vyorkin/kazuka"
	"github.com/vyorkin/kazuka/engine"
)

// PendingTransactionSource wraps an ethclient.Client's full pending
// transaction subscription, yielding a kazuka.PendingTransaction per tx.
type PendingTransactionSource struct {
	txs chan *types.Transaction
	sub ethereum.Subscription
}

// NewPendingTransactionSource dials client's pending-transaction feed.
func NewPendingTransactionSource(ctx context.Context, client *ethclient.Client) (*PendingTransactionSource, error) {
	txs := make(chan *types.Transaction, 256)
	sub, err := client.SubscribeFullPendingTransactions(ctx, txs)
	if err != nil {
		return nil, err
	}
	return &PendingTransactionSource{txs: txs, sub: sub}, nil
}

func (s *PendingTransactionSource) Next(ctx context.Context) (kazuka.Event, error) {
	select {
	case tx, ok := <-s.txs:
		if !ok {
			return nil, engine.ErrSourceEnded
		}
		return &kazuka.PendingTransaction{Tx: tx}, nil
	case err := <-s.sub.Err():
		if err == nil {
			return nil, engine.ErrSourceEnded
		}
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
