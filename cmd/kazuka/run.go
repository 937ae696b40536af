package main

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/vyorkin/kazuka"
	"github.com/vyorkin/kazuka/engine"
	"github.com/vyorkin/kazuka/eventsources"
	"github.com/vyorkin/kazuka/executors"
	"github.com/vyorkin/kazuka/fbauth"
	"github.com/vyorkin/kazuka/mevshare"
	"github.com/vyorkin/kazuka/metrics"
	"github.com/vyorkin/kazuka/providers"
	"github.com/vyorkin/kazuka/strategies/blindarb"
	strategiesmevshare "github.com/vyorkin/kazuka/strategies/mevshare"
)

// sseReconnectSampleInterval bounds how often the reconnect counter is
// polled off the MEV-Share stream's internal retry count.
const sseReconnectSampleInterval = 5 * time.Second

func run(cctx *cli.Context) error {
	setupLogging(cctx.Int(VerbosityFlag.Name))

	if path := cctx.String(ConfigFileFlag.Name); path != "" {
		cfg, err := loadFileConfig(path)
		if err != nil {
			return fmt.Errorf("kazuka: load config: %w", err)
		}
		applyFileDefaults(cctx, cfg)
	}

	dryRun := cctx.Bool(DryRunFlag.Name)
	printBanner(cctx.App.Version, dryRun)

	txSigner, err := loadSigner(cctx.String(TxSignerPKFlag.Name))
	if err != nil {
		return fmt.Errorf("kazuka: tx signer: %w", err)
	}
	// The Solidity arbitrage contract and its signing ABI are out of scope
	// here (see DESIGN.md); txSigner is validated at startup per the exit
	// code contract even though only DryRunProvider consumes bundles today.
	log.Info("kazuka: tx signer loaded", "address", crypto.PubkeyToAddress(txSigner.PublicKey))

	fbSigner, err := loadSigner(cctx.String(FlashbotsSignerPKFlag.Name))
	if err != nil {
		return fmt.Errorf("kazuka: flashbots signer: %w", err)
	}

	if addr := cctx.String(ArbContractAddressFlag.Name); addr != "" && !common.IsHexAddress(addr) {
		return fmt.Errorf("kazuka: invalid --arb-contract-address %q", addr)
	}

	poolPath := cctx.String(PoolTableFlag.Name)
	if poolPath == "" {
		return fmt.Errorf("kazuka: --pool-table is required")
	}
	pools, err := blindarb.LoadPoolTable(poolPath)
	if err != nil {
		return fmt.Errorf("kazuka: load pool table: %w", err)
	}
	defer pools.Close()
	if cctx.Bool(WatchPoolTableFlag.Name) {
		if err := pools.WatchForChanges(); err != nil {
			return fmt.Errorf("kazuka: watch pool table: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go waitForSignal(cancel)

	client, err := ethclient.DialContext(ctx, cctx.String(WSSFlag.Name))
	if err != nil {
		return fmt.Errorf("kazuka: dial %s: %w", cctx.String(WSSFlag.Name), err)
	}
	defer client.Close()

	relayHTTP := &http.Client{Transport: fbauth.New(nil, fbSigner)}

	mevShareClient := mevshare.New(nil)
	stream, err := mevShareClient.Events(ctx, cctx.String(MevShareEndpointFlag.Name))
	if err != nil {
		return fmt.Errorf("kazuka: subscribe mev-share: %w", err)
	}
	defer stream.Close()

	blockSource, err := eventsources.NewNewBlockSource(ctx, client)
	if err != nil {
		return fmt.Errorf("kazuka: subscribe new heads: %w", err)
	}

	strategy := blindarb.New(pools, providers.DryRunProvider{}, dryRun)
	mempoolExec := executors.NewMempoolExecutor(client, dryRun)
	relayExec := strategiesmevshare.NewMevShareExecutor(relayHTTP, cctx.String(RelayEndpointFlag.Name), dryRun)

	var counters *metrics.Counters
	mevShareSource := eventsources.NewMevShareSource(stream)
	var executorA, executorB engine.Executor[kazuka.Action] = mempoolExec, relayExec

	if cctx.Bool(MetricsEnabledFlag.Name) {
		counters = metrics.NewCounters()
		mevShareSource = &countingSource{inner: mevShareSource, counters: counters}
		executorA = &countingExecutor{inner: executorA, counters: counters}
		executorB = &countingExecutor{inner: executorB, counters: counters}

		reporter, err := metrics.NewReporter(buildMetricsConfig(cctx), counters)
		if err != nil {
			return fmt.Errorf("kazuka: metrics: %w", err)
		}
		go reporter.Run(ctx)
		go sampleSSEReconnects(ctx, stream, counters)
	}

	eng := engine.New[kazuka.Event, kazuka.Action]().
		AddEventSource(mevShareSource).
		AddEventSource(blockSource).
		AddStrategy(strategy).
		AddExecutor(executorA).
		AddExecutor(executorB)

	handle, err := eng.Run(ctx)
	if err != nil {
		return fmt.Errorf("kazuka: engine startup: %w", err)
	}

	for {
		result, ok := handle.JoinNext(ctx)
		if !ok {
			return nil
		}
		if result.Err != nil {
			log.Error("kazuka: task exited with error", "task", result.Name, "err", result.Err)
		} else {
			log.Debug("kazuka: task exited", "task", result.Name)
		}
	}
}

func waitForSignal(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	log.Info("kazuka: shutdown signal received")
	cancel()
}

func loadSigner(hexKey string) (*ecdsa.PrivateKey, error) {
	if hexKey == "" {
		return nil, fmt.Errorf("no private key provided")
	}
	return crypto.HexToECDSA(hexKey)
}

func buildMetricsConfig(cctx *cli.Context) metrics.Config {
	cfg := metrics.DefaultConfig
	cfg.Enabled = true
	cfg.EnableInfluxDB = cctx.Bool(MetricsInfluxEnabledFlag.Name)
	cfg.InfluxDBEndpoint = cctx.String(MetricsInfluxEndpointFlag.Name)
	cfg.InfluxDBToken = cctx.String(MetricsInfluxTokenFlag.Name)
	cfg.InfluxDBBucket = cctx.String(MetricsInfluxBucketFlag.Name)
	cfg.InfluxDBOrg = cctx.String(MetricsInfluxOrgFlag.Name)
	return cfg
}

// sseReconnectStream is the subset of *mevshare.EventStream[T] needed to
// sample its retry counter; kept as an interface so it isn't tied to a
// particular instantiation of the generic stream type.
type sseReconnectStream interface {
	Retries() int
}

func sampleSSEReconnects(ctx context.Context, stream sseReconnectStream, counters *metrics.Counters) {
	ticker := time.NewTicker(sseReconnectSampleInterval)
	defer ticker.Stop()
	var last int
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r := stream.Retries()
			if r > last {
				counters.SSEReconnects.Add(uint64(r - last))
				last = r
			}
		}
	}
}
