package mevsharerpc

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMevSendBundle_RoundTrip(t *testing.T) {
	maxBlock := uint64(200)
	b := MevSendBundle{
		ProtocolVersion: ProtocolVersionV01,
		Inclusion:       Inclusion{Block: 100, MaxBlock: &maxBlock},
		BundleBody: []BundleItem{
			Hash{Hash: common.HexToHash("0x01")},
			Tx{Bytes: []byte{0xde, 0xad, 0xbe, 0xef}, CanRevert: false},
		},
		Privacy: &Privacy{
			Hints:    NewPrivacyHint(HintHash, HintCalldata),
			Builders: []string{"flashbots"},
		},
	}

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var got MevSendBundle
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, ProtocolVersionV01, got.ProtocolVersion)
	assert.Equal(t, uint64(100), got.Inclusion.Block)
	require.NotNil(t, got.Inclusion.MaxBlock)
	assert.Equal(t, uint64(200), *got.Inclusion.MaxBlock)
	require.Len(t, got.BundleBody, 2)

	h, ok := got.BundleBody[0].(Hash)
	require.True(t, ok)
	assert.Equal(t, common.HexToHash("0x01"), h.Hash)

	tx, ok := got.BundleBody[1].(Tx)
	require.True(t, ok)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, tx.Bytes)
	assert.False(t, tx.CanRevert)

	require.NotNil(t, got.Privacy)
	assert.True(t, got.Privacy.Hints.Has(HintHash))
	assert.True(t, got.Privacy.Hints.Has(HintCalldata))
	assert.False(t, got.Privacy.Hints.Has(HintLogs))
}

func TestNewRequest_Envelope(t *testing.T) {
	body, err := NewRequest(MethodMevSendBundle, 1, map[string]string{"foo": "bar"})
	require.NoError(t, err)

	var req rpcReq
	require.NoError(t, json.Unmarshal(body, &req))
	assert.Equal(t, "2.0", req.JSONRPC)
	assert.Equal(t, MethodMevSendBundle, req.Method)
	require.Len(t, req.Params, 1)
}

func TestDecodeResponse_SurfacesRelayError(t *testing.T) {
	body := []byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"boom"}}`)
	err := DecodeResponse(body, nil)
	require.Error(t, err)
	var relayErr *RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, "boom", relayErr.Message)
}
