package mevsharerpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allHintTags = []HintTag{
	HintCalldata, HintContractAddress, HintLogs, HintFunctionSelector, HintHash, HintTxHash,
}

// powerset returns every subset of tags, including the empty set.
func powerset(tags []HintTag) [][]HintTag {
	out := [][]HintTag{{}}
	for _, t := range tags {
		n := len(out)
		for i := 0; i < n; i++ {
			subset := append(append([]HintTag{}, out[i]...), t)
			out = append(out, subset)
		}
	}
	return out
}

func TestPrivacyHint_RoundTripEverySubset(t *testing.T) {
	for _, subset := range powerset(allHintTags) {
		h := NewPrivacyHint(subset...)
		data, err := json.Marshal(h)
		require.NoError(t, err)

		var got PrivacyHint
		require.NoError(t, json.Unmarshal(data, &got))

		assert.ElementsMatch(t, subset, got.Tags())
	}
}

func TestPrivacyHint_UnknownTagIsError(t *testing.T) {
	var h PrivacyHint
	err := json.Unmarshal([]byte(`["calldata","not_a_real_tag"]`), &h)
	assert.Error(t, err)
}

func TestPrivacyHint_EmptyMarshalsToEmptyArray(t *testing.T) {
	h := NewPrivacyHint()
	data, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
