package providers

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDryRunProvider_ReturnsSentinelBytes(t *testing.T) {
	var p ArbProvider = DryRunProvider{}
	bytes, err := p.BuildSignedBackrun(context.Background(),
		common.HexToAddress("0x1"), common.HexToAddress("0x2"), true, big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, PlaceholderBackrunBytes, bytes)
}
