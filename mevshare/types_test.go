package mevshare

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_NullLogsAndTxsNormalizeToEmpty(t *testing.T) {
	raw := `{"hash":"0xabda3016ae1ffee7268f0b66de331f9bdb5a32d0b5ae3f6e6a7fd3fc06d5dd05","logs":null,"txs":null}`

	var e Event
	require.NoError(t, json.Unmarshal([]byte(raw), &e))

	assert.NotNil(t, e.Logs)
	assert.NotNil(t, e.Txs)
	assert.Len(t, e.Logs, 0)
	assert.Len(t, e.Txs, 0)

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hash":"0xabda3016ae1ffee7268f0b66de331f9bdb5a32d0b5ae3f6e6a7fd3fc06d5dd05","logs":[],"txs":[]}`, string(out))
}

func TestEvent_AbsentLogsAndTxsNormalizeToEmpty(t *testing.T) {
	raw := `{"hash":"0xabda3016ae1ffee7268f0b66de331f9bdb5a32d0b5ae3f6e6a7fd3fc06d5dd05"}`

	var e Event
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Len(t, e.Logs, 0)
	assert.Len(t, e.Txs, 0)
}

func TestTxPartial_HexPrefixTolerance(t *testing.T) {
	// Mixed-case 0x prefix is accepted.
	raw := `{"nonce":"0X1A","value":"0xde0b6b3a7640000"}`
	var tx TxPartial
	require.NoError(t, json.Unmarshal([]byte(raw), &tx))
	require.NotNil(t, tx.Nonce)
	assert.EqualValues(t, 0x1a, *tx.Nonce)
	require.NotNil(t, tx.Value)

	// Missing field decodes to a nil pointer, not an error.
	var tx2 TxPartial
	require.NoError(t, json.Unmarshal([]byte(`{}`), &tx2))
	assert.Nil(t, tx2.Nonce)
	assert.Nil(t, tx2.Value)
}

func TestTxPartial_MissingHexPrefixIsError(t *testing.T) {
	raw := `{"nonce":"1a"}`
	var tx TxPartial
	err := json.Unmarshal([]byte(raw), &tx)
	assert.Error(t, err)
}

func TestEvent_ThreeTxFields(t *testing.T) {
	raw := `{
		"hash":"0xabda3016ae1ffee7268f0b66de331f9bdb5a32d0b5ae3f6e6a7fd3fc06d5dd05",
		"logs":[],
		"txs":[{
			"from":"0x8fef4d4abcac9a0ccc9f9b28a9c2d2a8b85d29a9",
			"value":"0x0",
			"chainId":"0x1"
		}]
	}`
	var e Event
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	require.Len(t, e.Txs, 1)
	require.NotNil(t, e.Txs[0].From)
	require.NotNil(t, e.Txs[0].ChainID)
	assert.EqualValues(t, 1, *e.Txs[0].ChainID)
}
