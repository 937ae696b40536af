package kazuka

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/vyorkin/kazuka/mevshare"
	"github.com/vyorkin/kazuka/mevsharerpc"
)

// Event is the sealed union of values an EventSource can produce and a
// Strategy can consume. The concrete variants below are the reference
// union; implementers of other unions only need to satisfy this interface.
type Event interface {
	isEvent()
}

// Action is the sealed union of values a Strategy can emit and an Executor
// can consume.
type Action interface {
	isAction()
}

// MevShareEvent wraps a single MEV-Share hint as delivered by the matchmaker
// SSE feed. It embeds the wire type verbatim: the engine-level type adds no
// fields of its own, it only participates in the Event union.
type MevShareEvent struct {
	mevshare.Event
}

func (*MevShareEvent) isEvent() {}

// NewBlock is emitted by a block-header EventSource for every new head.
type NewBlock struct {
	Hash      common.Hash
	Number    uint64
	Timestamp uint64
}

func (*NewBlock) isEvent() {}

// PendingTransaction is emitted by a mempool EventSource, carrying the full
// transaction payload (as opposed to the partial hints in a MevShareEvent).
type PendingTransaction struct {
	Tx *types.Transaction
}

func (*PendingTransaction) isEvent() {}

// ContractLog is emitted by a log-filter EventSource: one decoded event
// log matching the filter's address/topic criteria. It is the expansion's
// answer to the "log-filter subscriber" EventSource variant spec.md names
// in its overview but does not itself give a concrete Event shape to.
type ContractLog struct {
	Log types.Log
}

func (*ContractLog) isEvent() {}

// GasBidInfo carries the fee parameters a strategy bid with for a raw
// transaction sent to the public mempool. The signed transaction already
// holds its fees; MempoolExecutor only logs GasBidInfo.
type GasBidInfo struct {
	MaxFeePerGas         *uint256.Int
	MaxPriorityFeePerGas *uint256.Int
}

// SubmitBundle asks an executor to submit a signed bundle to a
// Flashbots-style relay.
type SubmitBundle struct {
	Bundle mevsharerpc.MevSendBundle
}

func (*SubmitBundle) isAction() {}

// SubmitTxToMempool asks an executor to broadcast a raw signed transaction
// to the public mempool, optionally bidding with GasBidInfo.
type SubmitTxToMempool struct {
	Tx     *types.Transaction
	GasBid *GasBidInfo
}

func (*SubmitTxToMempool) isAction() {}
