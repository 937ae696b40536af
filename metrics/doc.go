// Package metrics collects the engine's runtime counters and, optionally,
// pushes periodic samples to an InfluxDB v2 bucket. It replaces the
// teacher's go-tos metrics config with a trimmed, kazuka-specific one:
// there is no in-process metrics registry in this dependency set, so
// Counters is hand-rolled atomics rather than a registry package.
package metrics
