package main

import (
	"github.com/urfave/cli/v2"

	"github.com/vyorkin/kazuka/internal/flags"
)

var (
	ConfigFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "load flag defaults from a TOML config file",
		Category: flags.MiscCategory,
	}
	WSSFlag = &cli.StringFlag{
		Name:     "wss",
		Usage:    "Ethereum node WebSocket endpoint",
		Value:    "ws://127.0.0.1:8546",
		Category: flags.EventSourceCategory,
	}
	MevShareEndpointFlag = &cli.StringFlag{
		Name:     "mev-share.endpoint",
		Usage:    "MEV-Share matchmaker SSE endpoint",
		Value:    "https://mev-share.flashbots.net",
		Category: flags.EventSourceCategory,
	}
	RelayEndpointFlag = &cli.StringFlag{
		Name:     "relay.endpoint",
		Usage:    "Flashbots relay JSON-RPC endpoint",
		Value:    "https://relay.flashbots.net",
		Category: flags.RelayCategory,
	}
	PoolTableFlag = &cli.StringFlag{
		Name:     "pool-table",
		Usage:    "CSV file of v2_pool,v3_pool,token_address,is_weth_token0 rows",
		Category: flags.StrategyCategory,
	}
	WatchPoolTableFlag = &cli.BoolFlag{
		Name:     "pool-table.watch",
		Usage:    "hot-reload the pool table CSV when it changes on disk",
		Category: flags.StrategyCategory,
	}
	TxSignerPKFlag = &cli.StringFlag{
		Name:     "tx-signer-pk",
		Usage:    "hex-encoded private key used to sign submitted transactions",
		Category: flags.SigningCategory,
	}
	FlashbotsSignerPKFlag = &cli.StringFlag{
		Name:     "flashbots-signer-pk",
		Usage:    "hex-encoded identity key used for Flashbots request authentication",
		Category: flags.SigningCategory,
	}
	ArbContractAddressFlag = &cli.StringFlag{
		Name:     "arb-contract-address",
		Usage:    "checksummed 0x-hex address of the on-chain arbitrage contract",
		Category: flags.StrategyCategory,
	}
	DryRunFlag = &cli.BoolFlag{
		Name:     "dry-run",
		Usage:    "log actions instead of submitting bundles or transactions",
		Category: flags.EngineCategory,
	}
	MetricsEnabledFlag = &cli.BoolFlag{
		Name:     "metrics",
		Usage:    "enable periodic runtime counter sampling",
		Category: flags.MetricsCategory,
	}
	MetricsInfluxEnabledFlag = &cli.BoolFlag{
		Name:     "metrics.influx",
		Usage:    "push metrics samples to InfluxDB v2",
		Category: flags.MetricsCategory,
	}
	MetricsInfluxEndpointFlag = &cli.StringFlag{
		Name:     "metrics.influx.endpoint",
		Usage:    "InfluxDB v2 server URL",
		Value:    "http://localhost:8086",
		Category: flags.MetricsCategory,
	}
	MetricsInfluxTokenFlag = &cli.StringFlag{
		Name:     "metrics.influx.token",
		Usage:    "InfluxDB v2 API token",
		Category: flags.MetricsCategory,
	}
	MetricsInfluxBucketFlag = &cli.StringFlag{
		Name:     "metrics.influx.bucket",
		Usage:    "InfluxDB v2 bucket",
		Value:    "kazuka",
		Category: flags.MetricsCategory,
	}
	MetricsInfluxOrgFlag = &cli.StringFlag{
		Name:     "metrics.influx.org",
		Usage:    "InfluxDB v2 organization",
		Value:    "kazuka",
		Category: flags.MetricsCategory,
	}
	VerbosityFlag = &cli.IntFlag{
		Name:     "verbosity",
		Usage:    "log verbosity (0=crit ... 5=trace)",
		Value:    3,
		Category: flags.LoggingCategory,
	}
)

var appFlags = []cli.Flag{
	ConfigFileFlag,
	WSSFlag,
	MevShareEndpointFlag,
	RelayEndpointFlag,
	PoolTableFlag,
	WatchPoolTableFlag,
	TxSignerPKFlag,
	FlashbotsSignerPKFlag,
	ArbContractAddressFlag,
	DryRunFlag,
	MetricsEnabledFlag,
	MetricsInfluxEnabledFlag,
	MetricsInfluxEndpointFlag,
	MetricsInfluxTokenFlag,
	MetricsInfluxBucketFlag,
	MetricsInfluxOrgFlag,
	VerbosityFlag,
}
