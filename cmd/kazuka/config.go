package main

import (
	"bufio"
	"errors"
	"os"
	"reflect"

	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"

	"github.com/vyorkin/kazuka/metrics"
)

// fileConfig is the shape of an optional --config TOML file. applyFileDefaults
// uses its fields as defaults for the CLI flags of the same meaning; flags
// explicitly set on the command line always win over whatever the file
// supplies. Verbosity, Metrics.SampleInterval and Metrics.InfluxDBTags are
// decoded but not applied.
type fileConfig struct {
	WSS                string
	MevShareEndpoint   string
	RelayEndpoint      string
	PoolTable          string
	WatchPoolTable     bool
	TxSignerPK         string
	FlashbotsSignerPK  string
	ArbContractAddress string
	DryRun             bool
	Verbosity          int
	Metrics            metrics.Config
}

var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string { return key },
	FieldToKey:    func(rt reflect.Type, field string) string { return field },
	MissingField: func(rt reflect.Type, field string) error {
		return nil // unknown keys are ignored rather than rejected
	},
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(&cfg)
	var lineErr *toml.LineError
	if errors.As(err, &lineErr) {
		err = errors.New(path + ", " + err.Error())
	}
	return cfg, err
}

// applyFileDefaults sets ctx's flags from cfg wherever the corresponding
// flag was not explicitly set on the command line.
func applyFileDefaults(ctx *cli.Context, cfg fileConfig) {
	setString := func(name, v string) {
		if v != "" && !ctx.IsSet(name) {
			ctx.Set(name, v)
		}
	}
	setBool := func(name string, v bool) {
		if v && !ctx.IsSet(name) {
			ctx.Set(name, "true")
		}
	}

	setString(WSSFlag.Name, cfg.WSS)
	setString(MevShareEndpointFlag.Name, cfg.MevShareEndpoint)
	setString(RelayEndpointFlag.Name, cfg.RelayEndpoint)
	setString(PoolTableFlag.Name, cfg.PoolTable)
	setBool(WatchPoolTableFlag.Name, cfg.WatchPoolTable)
	setString(TxSignerPKFlag.Name, cfg.TxSignerPK)
	setString(FlashbotsSignerPKFlag.Name, cfg.FlashbotsSignerPK)
	setString(ArbContractAddressFlag.Name, cfg.ArbContractAddress)
	setBool(DryRunFlag.Name, cfg.DryRun)
	setBool(MetricsEnabledFlag.Name, cfg.Metrics.Enabled)
	setBool(MetricsInfluxEnabledFlag.Name, cfg.Metrics.EnableInfluxDB)
	setString(MetricsInfluxEndpointFlag.Name, cfg.Metrics.InfluxDBEndpoint)
	setString(MetricsInfluxTokenFlag.Name, cfg.Metrics.InfluxDBToken)
	setString(MetricsInfluxBucketFlag.Name, cfg.Metrics.InfluxDBBucket)
	setString(MetricsInfluxOrgFlag.Name, cfg.Metrics.InfluxDBOrg)
}
