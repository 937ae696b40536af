package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestLoadFileConfig_ParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kazuka.toml")
	body := `
WSS = "ws://example:8546"
DryRun = true

[Metrics]
Enabled = true
InfluxDBBucket = "mybucket"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := loadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ws://example:8546", cfg.WSS)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "mybucket", cfg.Metrics.InfluxDBBucket)
}

func TestApplyFileDefaults_DoesNotOverrideExplicitFlag(t *testing.T) {
	app := cli.NewApp()
	app.Flags = appFlags
	var seen string
	app.Action = func(cctx *cli.Context) error {
		applyFileDefaults(cctx, fileConfig{WSS: "ws://from-file:8546"})
		seen = cctx.String(WSSFlag.Name)
		return nil
	}
	require.NoError(t, app.Run([]string{"kazuka", "--wss", "ws://from-flag:8546"}))
	assert.Equal(t, "ws://from-flag:8546", seen)
}

func TestApplyFileDefaults_FillsUnsetFlag(t *testing.T) {
	app := cli.NewApp()
	app.Flags = appFlags
	var seen string
	app.Action = func(cctx *cli.Context) error {
		applyFileDefaults(cctx, fileConfig{WSS: "ws://from-file:8546"})
		seen = cctx.String(WSSFlag.Name)
		return nil
	}
	require.NoError(t, app.Run([]string{"kazuka"}))
	assert.Equal(t, "ws://from-file:8546", seen)
}

func TestLoadSigner_RejectsEmptyKey(t *testing.T) {
	_, err := loadSigner("")
	assert.Error(t, err)
}

func TestLoadSigner_AcceptsValidHexKey(t *testing.T) {
	key, err := loadSigner("4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")
	require.NoError(t, err)
	assert.NotNil(t, key)
}
