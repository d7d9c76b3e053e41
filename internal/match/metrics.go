package match

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	discoveryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_discovery_requests_total",
			Help: "Total number of discovery requests by mode",
		},
		[]string{"mode"},
	)

	discoveryCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "matching_discovery_candidates",
			Help:    "Distribution of candidate counts returned per discovery request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"mode"},
	)

	likesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_likes_total",
			Help: "Total number of likes sent",
		},
	)

	likesDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_likes_deleted_total",
			Help: "Total number of likes deleted",
		},
	)

	matchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_matches_total",
			Help: "Total number of matches created",
		},
	)

	discoveryCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_discovery_cache_hits_total",
			Help: "Total number of discovery requests served from cache",
		},
	)
)

func recordDiscovery(mode string, candidates int) {
	discoveryRequestsTotal.WithLabelValues(mode).Inc()
	discoveryCandidates.WithLabelValues(mode).Observe(float64(candidates))
}
