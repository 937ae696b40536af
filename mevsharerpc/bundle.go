package mevsharerpc

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ProtocolVersion names the MevSendBundle wire format version the relay
// should interpret the bundle under.
type ProtocolVersion string

const (
	ProtocolVersionBeta1 ProtocolVersion = "beta-1"
	ProtocolVersionV01   ProtocolVersion = "v0.1"
)

// Inclusion is the bundle's validity window: the relay drops the bundle
// once the chain passes MaxBlock without having included it at Block.
type Inclusion struct {
	Block    uint64  `json:"block"`
	MaxBlock *uint64 `json:"maxBlock,omitempty"`
}

// BundleItem is one element of a bundle's ordered body: either a
// Hash (a backrun target the searcher does not control) or a Tx (a
// signed transaction the searcher supplies).
type BundleItem interface {
	isBundleItem()
}

// Hash references a transaction already known to the mempool or a prior
// bundle, by hash, without supplying its bytes.
type Hash struct {
	Hash common.Hash
}

func (Hash) isBundleItem() {}

// Tx supplies a signed transaction's raw RLP bytes. CanRevert marks
// whether the relay should still include the bundle if this transaction
// reverts.
type Tx struct {
	Bytes     []byte
	CanRevert bool
}

func (Tx) isBundleItem() {}

type wireBundleItem struct {
	Hash      *common.Hash  `json:"hash,omitempty"`
	Bytes     hexutil.Bytes `json:"bytes,omitempty"`
	CanRevert *bool         `json:"canRevert,omitempty"`
}

func marshalBundleItem(item BundleItem) (wireBundleItem, error) {
	switch v := item.(type) {
	case Hash:
		h := v.Hash
		return wireBundleItem{Hash: &h}, nil
	case Tx:
		canRevert := v.CanRevert
		return wireBundleItem{Bytes: v.Bytes, CanRevert: &canRevert}, nil
	default:
		return wireBundleItem{}, fmt.Errorf("mevsharerpc: unknown bundle item type %T", item)
	}
}

func (w wireBundleItem) toBundleItem() (BundleItem, error) {
	switch {
	case w.Hash != nil:
		return Hash{Hash: *w.Hash}, nil
	case w.Bytes != nil:
		canRevert := false
		if w.CanRevert != nil {
			canRevert = *w.CanRevert
		}
		return Tx{Bytes: w.Bytes, CanRevert: canRevert}, nil
	default:
		return nil, fmt.Errorf("mevsharerpc: bundle item has neither hash nor bytes")
	}
}

// RefundConfig splits a bundle's refund among one or more addresses, by
// basis-point percentage of the total refund.
type RefundConfig struct {
	Address common.Address `json:"address"`
	Percent int            `json:"percent"`
}

// Validity constrains how the relay may split MEV refunds among the
// bundle's constituent transactions.
type Validity struct {
	Refund       []RefundConstraint `json:"refund,omitempty"`
	RefundConfig []RefundConfig     `json:"refundConfig,omitempty"`
}

// RefundConstraint names which body index receives what percentage of
// the refund owed to it.
type RefundConstraint struct {
	BodyIdx int `json:"bodyIdx"`
	Percent int `json:"percent"`
}

// Privacy declares what the searcher allows the matchmaker to disclose
// about this bundle, and which builders may receive it directly.
type Privacy struct {
	Hints    *PrivacyHint `json:"hints,omitempty"`
	Builders []string     `json:"builders,omitempty"`
}

// MevSendBundle is the bundle object accepted by mev_sendBundle.
type MevSendBundle struct {
	ProtocolVersion ProtocolVersion
	Inclusion       Inclusion
	BundleBody      []BundleItem
	Validity        *Validity
	Privacy         *Privacy
}

type wireMevSendBundle struct {
	ProtocolVersion ProtocolVersion  `json:"protocolVersion"`
	Inclusion       Inclusion        `json:"inclusion"`
	BundleBody      []wireBundleItem `json:"bundleBody"`
	Validity        *Validity        `json:"validity,omitempty"`
	Privacy         *Privacy         `json:"privacy,omitempty"`
}

func (b MevSendBundle) MarshalJSON() ([]byte, error) {
	body := make([]wireBundleItem, len(b.BundleBody))
	for i, item := range b.BundleBody {
		w, err := marshalBundleItem(item)
		if err != nil {
			return nil, err
		}
		body[i] = w
	}
	return json.Marshal(wireMevSendBundle{
		ProtocolVersion: b.ProtocolVersion,
		Inclusion:       b.Inclusion,
		BundleBody:      body,
		Validity:        b.Validity,
		Privacy:         b.Privacy,
	})
}

func (b *MevSendBundle) UnmarshalJSON(data []byte) error {
	var w wireMevSendBundle
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	body := make([]BundleItem, len(w.BundleBody))
	for i, wi := range w.BundleBody {
		item, err := wi.toBundleItem()
		if err != nil {
			return err
		}
		body[i] = item
	}
	b.ProtocolVersion = w.ProtocolVersion
	b.Inclusion = w.Inclusion
	b.BundleBody = body
	b.Validity = w.Validity
	b.Privacy = w.Privacy
	return nil
}
