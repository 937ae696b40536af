package blindarb

import (
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPoolTable_ParsesRows(t *testing.T) {
	v3 := common.HexToAddress("0xaaaa000000000000000000000000000000aaaa")
	v2 := common.HexToAddress("0xbbbb000000000000000000000000000000bbbb")

	path := writePoolCSV(t, v3, v2, false)
	table, err := LoadPoolTable(path)
	require.NoError(t, err)

	pair, ok := table.Lookup(v3)
	require.True(t, ok)
	assert.Equal(t, v2, pair.V2Pool)
	assert.False(t, pair.IsWeth0)

	_, ok = table.Lookup(common.HexToAddress("0xcccc000000000000000000000000000000cccc"))
	assert.False(t, ok)
}

func TestLoadPoolTable_MalformedRowIsError(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "pools-*.csv")
	require.NoError(t, err)
	_, err = f.WriteString("not-an-address,0xbbbb000000000000000000000000000000bbbb,0xdddd000000000000000000000000000000dddd,true\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = LoadPoolTable(f.Name())
	assert.Error(t, err)
}
