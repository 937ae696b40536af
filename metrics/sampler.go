package metrics

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/shirou/gopsutil/process"

	"github.com/ethereum/go-ethereum/log"
)

// Reporter periodically samples Counters plus this process' goroutine
// count and resident set size and, if configured, writes each sample to
// an InfluxDB v2 bucket as a single point.
type Reporter struct {
	counters *Counters
	interval time.Duration
	tags     map[string]string
	proc     *process.Process

	client influxdb2.Client
	writer api.WriteAPIBlocking
}

// NewReporter builds a Reporter from cfg. It always samples locally (for
// log output); the InfluxDB client is only constructed when
// cfg.EnableInfluxDB is set.
func NewReporter(cfg Config, counters *Counters) (*Reporter, error) {
	interval, err := time.ParseDuration(cfg.SampleInterval)
	if err != nil {
		return nil, fmt.Errorf("metrics: parse sample interval %q: %w", cfg.SampleInterval, err)
	}
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("metrics: inspect own process: %w", err)
	}

	r := &Reporter{
		counters: counters,
		interval: interval,
		tags:     parseTags(cfg.InfluxDBTags),
		proc:     proc,
	}

	if cfg.EnableInfluxDB {
		client := influxdb2.NewClient(cfg.InfluxDBEndpoint, cfg.InfluxDBToken)
		r.client = client
		r.writer = client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)
	}
	return r, nil
}

// Run samples on every tick until ctx is cancelled.
func (r *Reporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer func() {
		if r.client != nil {
			r.client.Close()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.sampleOnce(ctx)
		}
	}
}

func (r *Reporter) sampleOnce(ctx context.Context) {
	snap := r.counters.Snapshot()
	goroutines := runtime.NumGoroutine()

	var rssBytes uint64
	if mem, err := r.proc.MemoryInfo(); err == nil {
		rssBytes = mem.RSS
	} else {
		log.Warn("metrics: failed to sample process memory", "err", err)
	}

	log.Debug("metrics sample",
		"events", snap.EventsReceived,
		"actions", snap.ActionsDispatched,
		"bundles", snap.BundlesSubmitted,
		"sse_reconnects", snap.SSEReconnects,
		"executor_errors", snap.ExecutorErrors,
		"goroutines", goroutines,
		"rss_bytes", rssBytes,
	)

	if r.writer == nil {
		return
	}

	point := write.NewPoint("kazuka_engine", r.tags, map[string]interface{}{
		"events_received":    snap.EventsReceived,
		"actions_dispatched": snap.ActionsDispatched,
		"bundles_submitted":  snap.BundlesSubmitted,
		"sse_reconnects":     snap.SSEReconnects,
		"executor_errors":    snap.ExecutorErrors,
		"goroutines":         goroutines,
		"rss_bytes":          rssBytes,
	}, time.Now())

	if err := r.writer.WritePoint(ctx, point); err != nil {
		log.Warn("metrics: influxdb write failed", "err", err)
	}
}

func parseTags(raw string) map[string]string {
	tags := make(map[string]string)
	for _, kv := range strings.Split(raw, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		tags[parts[0]] = parts[1]
	}
	return tags
}
