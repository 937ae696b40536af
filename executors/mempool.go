package executors

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"

	"github.com/vyorkin/kazuka"
)

// MempoolExecutor carries out kazuka.SubmitTxToMempool actions by
// broadcasting the already-signed transaction through a node's public
// mempool RPC. GasBidInfo is carried for logging/telemetry only: the fee
// fields it names are already baked into the signed transaction by
// whichever strategy or provider produced it.
type MempoolExecutor struct {
	client *ethclient.Client
	dryRun bool
}

// NewMempoolExecutor wraps client. In dry-run mode, Execute logs the
// transaction it would have sent and returns success without sending it.
func NewMempoolExecutor(client *ethclient.Client, dryRun bool) *MempoolExecutor {
	return &MempoolExecutor{client: client, dryRun: dryRun}
}

func (e *MempoolExecutor) Execute(ctx context.Context, action kazuka.Action) error {
	submit, ok := action.(*kazuka.SubmitTxToMempool)
	if !ok {
		return fmt.Errorf("executors: mempool executor cannot handle %T", action)
	}

	if e.dryRun {
		log.Info("executors: dry-run mempool submit", "hash", submit.Tx.Hash(), "gasBid", submit.GasBid)
		return nil
	}

	if err := e.client.SendTransaction(ctx, submit.Tx); err != nil {
		return fmt.Errorf("executors: send transaction: %w", err)
	}
	return nil
}
