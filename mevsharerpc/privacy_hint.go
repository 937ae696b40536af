package mevsharerpc

import (
	"encoding/json"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// HintTag is one disclosable facet of a MevSendBundle's constituent
// transactions. The tag vocabulary is closed: relays reject unknown tags.
type HintTag string

const (
	HintCalldata        HintTag = "calldata"
	HintContractAddress HintTag = "contract_address"
	HintLogs            HintTag = "logs"
	HintFunctionSelector HintTag = "function_selector"
	HintHash            HintTag = "hash"
	HintTxHash          HintTag = "tx_hash"
)

var validHintTags = mapset.NewThreadUnsafeSet(
	HintCalldata, HintContractAddress, HintLogs, HintFunctionSelector, HintHash, HintTxHash,
)

// PrivacyHint is a set of disclosure tags, serialized as a JSON array of
// tag names. Order is not significant; duplicates collapse.
type PrivacyHint struct {
	tags mapset.Set[HintTag]
}

// NewPrivacyHint builds a PrivacyHint from zero or more tags.
func NewPrivacyHint(tags ...HintTag) *PrivacyHint {
	return &PrivacyHint{tags: mapset.NewThreadUnsafeSet(tags...)}
}

// Add enables tag, returning the hint for chaining.
func (h *PrivacyHint) Add(tag HintTag) *PrivacyHint {
	if h.tags == nil {
		h.tags = mapset.NewThreadUnsafeSet[HintTag]()
	}
	h.tags.Add(tag)
	return h
}

// Has reports whether tag is enabled.
func (h *PrivacyHint) Has(tag HintTag) bool {
	if h == nil || h.tags == nil {
		return false
	}
	return h.tags.Contains(tag)
}

// Tags returns the enabled tags in no particular order.
func (h *PrivacyHint) Tags() []HintTag {
	if h == nil || h.tags == nil {
		return nil
	}
	return h.tags.ToSlice()
}

func (h PrivacyHint) MarshalJSON() ([]byte, error) {
	tags := h.Tags()
	if tags == nil {
		tags = []HintTag{}
	}
	return json.Marshal(tags)
}

func (h *PrivacyHint) UnmarshalJSON(data []byte) error {
	var tags []HintTag
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	set := mapset.NewThreadUnsafeSet[HintTag]()
	for _, t := range tags {
		if !validHintTags.Contains(t) {
			return fmt.Errorf("mevsharerpc: unknown privacy hint tag %q", t)
		}
		set.Add(t)
	}
	h.tags = set
	return nil
}
