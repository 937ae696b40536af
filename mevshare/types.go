// Package mevshare implements the client side of the MEV-Share
// Server-Sent-Events feed: connecting, decoding frames, and reconnecting
// per server-directed retry hints.
package mevshare

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// Log is a single log entry disclosed by a MEV-Share hint.
type Log struct {
	Address common.Address `json:"address"`
	Topics  []common.Hash  `json:"topics"`
	Data    hexutil.Bytes  `json:"data"`
}

// TxPartial describes whatever slice of a transaction the matchmaker chose
// to disclose. Every field is optional; an absent field decodes to nil / a
// nil pointer rather than a deserialization error. A present field that is
// numeric but lacks its "0x" prefix IS a deserialization error (delegated
// to hexutil's own strict hex decoding).
type TxPartial struct {
	Hash                 *common.Hash      `json:"hash,omitempty"`
	CallData             *hexutil.Bytes    `json:"calldata,omitempty"`
	FunctionSelector     *hexutil.Bytes    `json:"function_selector,omitempty"`
	To                   *common.Address   `json:"to,omitempty"`
	From                 *common.Address   `json:"from,omitempty"`
	Value                *hexutil.Big      `json:"value,omitempty"`
	MaxFeePerGas         *hexutil.Big      `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big      `json:"maxPriorityFeePerGas,omitempty"`
	Nonce                *hexutil.Uint64   `json:"nonce,omitempty"`
	ChainID              *hexutil.Uint64   `json:"chainId,omitempty"`
	AccessList           *types.AccessList `json:"access_list,omitempty"`
	Gas                  *hexutil.Uint64   `json:"gas,omitempty"`
	Type                 *hexutil.Uint64   `json:"type,omitempty"`
}

// Event is a single MEV-Share hint: a partially-disclosed transaction (or
// set of transactions) plus any logs the matchmaker chose to disclose.
type Event struct {
	Hash common.Hash `json:"hash"`
	Logs []Log       `json:"logs"`
	Txs  []TxPartial `json:"txs"`
}

// wireEvent mirrors Event's JSON shape exactly, letting Logs/Txs unmarshal
// as whatever the wire sends (including explicit null) before Event's
// UnmarshalJSON normalizes them.
type wireEvent struct {
	Hash common.Hash `json:"hash"`
	Logs []Log       `json:"logs"`
	Txs  []TxPartial `json:"txs"`
}

// UnmarshalJSON normalizes an absent or null "logs"/"txs" to an empty (not
// nil) slice, matching the invariant that an Event's Logs and Txs are
// always iterable sequences, never an optional absent value.
func (e *Event) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.Hash = w.Hash
	e.Logs = w.Logs
	if e.Logs == nil {
		e.Logs = []Log{}
	}
	e.Txs = w.Txs
	if e.Txs == nil {
		e.Txs = []TxPartial{}
	}
	return nil
}

// MarshalJSON re-serializes Logs/Txs as "[]" rather than "null" even when
// empty, so normalization survives a marshal/unmarshal round-trip.
func (e Event) MarshalJSON() ([]byte, error) {
	logs := e.Logs
	if logs == nil {
		logs = []Log{}
	}
	txs := e.Txs
	if txs == nil {
		txs = []TxPartial{}
	}
	return json.Marshal(wireEvent{Hash: e.Hash, Logs: logs, Txs: txs})
}

// EventHistoryInfo is returned by the one-shot "event history info" query:
// metadata about the matchmaker's retained history window.
type EventHistoryInfo struct {
	MinBlock     *int64 `json:"minBlock,omitempty"`
	MaxBlock     *int64 `json:"maxBlock,omitempty"`
	MinTimestamp *int64 `json:"minTimestamp,omitempty"`
	MaxTimestamp *int64 `json:"maxTimestamp,omitempty"`
	Count        int64  `json:"count"`
	MaxLimit     int64  `json:"maxLimit"`
}

// EventHistoryParams constrains a one-shot "event history" query.
type EventHistoryParams struct {
	BlockStart     *int64 `url:"blockStart,omitempty"`
	BlockEnd       *int64 `url:"blockEnd,omitempty"`
	TimestampStart *int64 `url:"timestampStart,omitempty"`
	TimestampEnd   *int64 `url:"timestampEnd,omitempty"`
	Limit          *int64 `url:"limit,omitempty"`
	Offset         *int64 `url:"offset,omitempty"`
}

// EventHistoryEntry is one element of a one-shot "event history" response.
type EventHistoryEntry struct {
	Block     uint64 `json:"block"`
	Timestamp int64  `json:"timestamp"`
	Hint      Event  `json:"hint"`
}
