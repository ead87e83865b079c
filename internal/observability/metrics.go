// Package observability provides Prometheus metrics for the seeding job.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the seeder's Prometheus instruments.
type Metrics struct {
	RunsTotal         *prometheus.CounterVec
	DealsInserted     prometheus.Counter
	RunDuration       prometheus.Histogram
	LastSuccessfulRun prometheus.Gauge
}

// NewMetrics registers the seeder metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "market_seeder",
			Subsystem: "seeder",
			Name:      "runs_total",
			Help:      "Seeding runs by outcome",
		}, []string{"status"}),
		DealsInserted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "market_seeder",
			Subsystem: "seeder",
			Name:      "deals_inserted_total",
			Help:      "Synthetic deals written to the money log",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "market_seeder",
			Subsystem: "seeder",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one seeding run",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
		LastSuccessfulRun: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "market_seeder",
			Subsystem: "seeder",
			Name:      "last_successful_run_timestamp_seconds",
			Help:      "Unix time of the last run that completed without error",
		}),
	}
}
