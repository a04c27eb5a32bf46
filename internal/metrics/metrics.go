// Package metrics exposes Prometheus instrumentation for provider calls
// and scans.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scanner_provider_calls_total",
		Help: "Provider calls by provider and outcome (ok, not_found, timeout, error).",
	}, []string{"provider", "outcome"})

	ScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scanner_scan_duration_seconds",
		Help:    "End-to-end scan latency by network.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
	}, []string{"network"})

	ScanErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scanner_scan_errors_total",
		Help: "Failed scans by error kind.",
	}, []string{"kind"})
)
