package app

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics, registered by main
var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holiday_api_requests_total",
			Help: "API requests by endpoint and status code",
		},
		[]string{"endpoint", "code"},
	)

	DatasetCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "holiday_api_dataset_cache_hits_total",
		Help: "Dataset lookups served from the in-process cache",
	})

	DatasetCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "holiday_api_dataset_cache_misses_total",
		Help: "Dataset lookups that read the backing file",
	})
)

// RegisterMetrics registers all collectors on the default registry
func RegisterMetrics() {
	prometheus.MustRegister(RequestsTotal, DatasetCacheHits, DatasetCacheMisses)
}
