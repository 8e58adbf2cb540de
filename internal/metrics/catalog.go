package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// FiltersApplied counts compiled filters by parameter key.
	FiltersApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filters_applied_total",
			Help:      "Number of times each catalog filter was applied",
		},
		[]string{"filter"},
	)

	// PatternFallbacks counts word matches rendered as substring tests
	// because the store cannot evaluate regular expressions.
	PatternFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pattern_fallbacks_total",
			Help:      "Word patterns rendered as substring tests",
		},
		[]string{"dialect"},
	)

	// SearchResults observes the size of catalog result sets.
	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of records returned by a catalog search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

// Register adds every catalog collector to reg. Collectors that are
// already registered are accepted.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		httpRequestDuration,
		httpRequestsTotal,
		FiltersApplied,
		PatternFallbacks,
		SearchResults,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
