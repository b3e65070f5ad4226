package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests       *prometheus.CounterVec
	CounterSearches       prometheus.Counter
	CounterSearchCacheHit prometheus.Counter
	CounterCatalogLoads   *prometheus.CounterVec

	// gauges
	GaugeExercises prometheus.Gauge
}

func NewTestManager() *Manager {
	return NewManager("catalog", "test_server", prometheus.NewRegistry())
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterSearches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "searches",
			Help:      "The total number of catalog searches",
		}),
		CounterSearchCacheHit: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "search_cache_hits",
			Help:      "The total number of searches answered from cache",
		}),
		CounterCatalogLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "catalog_loads",
			Help:      "Catalog loads by serving source and result",
		}, []string{"source", "result"}),
		GaugeExercises: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "exercises",
			Help:      "Number of exercises in the loaded catalog",
		}),
	}
}
