package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags_SplitsPairs(t *testing.T) {
	got := parseTags("host=localhost, env=dev,")
	assert.Equal(t, map[string]string{"host": "localhost", "env": "dev"}, got)
}

func TestParseTags_EmptyStringYieldsEmptyMap(t *testing.T) {
	got := parseTags("")
	assert.Empty(t, got)
}

func TestNewReporter_RejectsBadInterval(t *testing.T) {
	cfg := DefaultConfig
	cfg.SampleInterval = "not-a-duration"
	_, err := NewReporter(cfg, NewCounters())
	assert.Error(t, err)
}

func TestCounters_SnapshotReadsCurrentValues(t *testing.T) {
	c := NewCounters()
	c.EventsReceived.Add(3)
	c.BundlesSubmitted.Add(1)

	snap := c.Snapshot()
	assert.Equal(t, uint64(3), snap.EventsReceived)
	assert.Equal(t, uint64(1), snap.BundlesSubmitted)
	assert.Equal(t, uint64(0), snap.SSEReconnects)
}
