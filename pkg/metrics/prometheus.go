package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	LaunchesCreated   prometheus.Counter
	LaunchesAborted   prometheus.Counter
	LaunchesImported  prometheus.Counter
	PlanetsIngested   prometheus.Counter
	IngestionDuration prometheus.Histogram
	ErrorsCount       *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		LaunchesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "launches_created_total",
			Help:      "The total number of launches scheduled by clients",
		}),
		LaunchesAborted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "launches_aborted_total",
			Help:      "The total number of launches aborted",
		}),
		LaunchesImported: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "launches_imported_total",
			Help:      "The total number of launches imported from the history provider",
		}),
		PlanetsIngested: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "planets_ingested_total",
			Help:      "The total number of habitable planets upserted during ingestion",
		}),
		IngestionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingestion_duration_seconds",
			Help:      "Time taken by startup ingestion passes",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
