package executors

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyorkin/kazuka"
)

func TestMempoolExecutor_DryRunDoesNotRequireClient(t *testing.T) {
	exec := NewMempoolExecutor(nil, true)
	tx := types.NewTransaction(0, [20]byte{}, big.NewInt(0), 21000, big.NewInt(1), nil)

	err := exec.Execute(context.Background(), &kazuka.SubmitTxToMempool{Tx: tx})
	require.NoError(t, err)
}

func TestMempoolExecutor_RejectsUnknownActionType(t *testing.T) {
	exec := NewMempoolExecutor(nil, true)
	err := exec.Execute(context.Background(), &kazuka.SubmitBundle{})
	assert.Error(t, err)
}
