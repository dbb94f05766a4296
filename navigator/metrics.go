package navigator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// routeTotal counts route queries by result.
	routeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_route_total",
		Help: "Total route queries by result",
	}, []string{"result"})

	// routeDuration tracks route query latency.
	routeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_route_duration_seconds",
		Help:    "Route query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
	})

	// routeExpanded tracks search effort for completed queries.
	routeExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_route_expanded_nodes",
		Help:    "Cells expanded per completed route query",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	// routeErrors counts failed queries by error type.
	routeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_route_errors_total",
		Help: "Total route query errors by type",
	}, []string{"error_type"})
)
