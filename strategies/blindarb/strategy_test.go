package blindarb

import (
	"context"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyorkin/kazuka"
	"github.com/vyorkin/kazuka/mevshare"
	"github.com/vyorkin/kazuka/mevsharerpc"
	"github.com/vyorkin/kazuka/providers"
)

func writePoolCSV(t *testing.T, v3, v2 common.Address, isWeth0 bool) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "pools-*.csv")
	require.NoError(t, err)
	defer f.Close()

	val := "false"
	if isWeth0 {
		val = "true"
	}
	token := common.HexToAddress("0xdddd000000000000000000000000000000dddd")
	_, err = f.WriteString(v2.Hex() + "," + v3.Hex() + "," + token.Hex() + "," + val + "\n")
	require.NoError(t, err)
	return f.Name()
}

func TestStrategy_UnmappedPoolYieldsNoActions(t *testing.T) {
	v3 := common.HexToAddress("0x1111111111111111111111111111111111111111")
	v2 := common.HexToAddress("0x2222222222222222222222222222222222222222")
	path := writePoolCSV(t, v3, v2, true)

	table, err := LoadPoolTable(path)
	require.NoError(t, err)

	s := New(table, providers.DryRunProvider{}, true)
	s.SetCurrentBlock(100)

	other := common.HexToAddress("0x3333333333333333333333333333333333333333")
	ev := &kazuka.MevShareEvent{Event: mevshare.Event{
		Hash: common.HexToHash("0xaa"),
		Logs: []mevshare.Log{{Address: other}},
	}}

	actions := s.ProcessEvent(context.Background(), ev)
	assert.Empty(t, actions)
}

func TestStrategy_EmptyLogsYieldsNoActions(t *testing.T) {
	v3 := common.HexToAddress("0x1111111111111111111111111111111111111111")
	v2 := common.HexToAddress("0x2222222222222222222222222222222222222222")
	path := writePoolCSV(t, v3, v2, true)
	table, err := LoadPoolTable(path)
	require.NoError(t, err)

	s := New(table, providers.DryRunProvider{}, true)
	ev := &kazuka.MevShareEvent{Event: mevshare.Event{Hash: common.HexToHash("0xaa")}}
	assert.Empty(t, s.ProcessEvent(context.Background(), ev))
}

func TestStrategy_V3PoolHitDryRunProducesFourteenBundles(t *testing.T) {
	v3 := common.HexToAddress("0x1111111111111111111111111111111111111111")
	v2 := common.HexToAddress("0x2222222222222222222222222222222222222222")
	path := writePoolCSV(t, v3, v2, true)
	table, err := LoadPoolTable(path)
	require.NoError(t, err)

	s := New(table, providers.DryRunProvider{}, true)
	s.SetCurrentBlock(1000)

	trigger := common.HexToHash("0xbeef")
	ev := &kazuka.MevShareEvent{Event: mevshare.Event{
		Hash: trigger,
		Logs: []mevshare.Log{{Address: v3}},
	}}

	actions := s.ProcessEvent(context.Background(), ev)
	require.Len(t, actions, 14)

	for _, a := range actions {
		sb, ok := a.(*kazuka.SubmitBundle)
		require.True(t, ok)
		assert.Equal(t, uint64(1001), sb.Bundle.Inclusion.Block)
		require.NotNil(t, sb.Bundle.Inclusion.MaxBlock)
		assert.Equal(t, uint64(1030), *sb.Bundle.Inclusion.MaxBlock)

		require.Len(t, sb.Bundle.BundleBody, 2)
		h, ok := sb.Bundle.BundleBody[0].(mevsharerpc.Hash)
		require.True(t, ok)
		assert.Equal(t, trigger, h.Hash)

		tx, ok := sb.Bundle.BundleBody[1].(mevsharerpc.Tx)
		require.True(t, ok)
		assert.Equal(t, providers.PlaceholderBackrunBytes, tx.Bytes)
		assert.False(t, tx.CanRevert)
	}
}

func TestStrategy_DuplicateTriggerHashIsDeduped(t *testing.T) {
	v3 := common.HexToAddress("0x1111111111111111111111111111111111111111")
	v2 := common.HexToAddress("0x2222222222222222222222222222222222222222")
	path := writePoolCSV(t, v3, v2, true)
	table, err := LoadPoolTable(path)
	require.NoError(t, err)

	s := New(table, providers.DryRunProvider{}, true)
	s.SetCurrentBlock(1000)

	trigger := common.HexToHash("0xbeef")
	ev := &kazuka.MevShareEvent{Event: mevshare.Event{
		Hash: trigger,
		Logs: []mevshare.Log{{Address: v3}},
	}}

	first := s.ProcessEvent(context.Background(), ev)
	require.Len(t, first, 14)

	second := s.ProcessEvent(context.Background(), ev)
	assert.Empty(t, second)
}
