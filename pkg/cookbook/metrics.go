package cookbook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Admission metrics
	entriesAdmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entries_admitted_total",
			Help: "Total number of entries admitted to the cookbook",
		},
		[]string{"type"},
	)
	entryRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entry_rejections_total",
			Help: "Total number of entry admissions rejected",
		},
		[]string{"code"},
	)

	// Resolution metrics
	resolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_resolve_duration_seconds",
			Help:    "Duration of recipe resolution in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
	expansionOps = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_expansion_ops",
			Help:    "Number of required-item expansions per resolved query",
			Buckets: []float64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000},
		},
	)
)
