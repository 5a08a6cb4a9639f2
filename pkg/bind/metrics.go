package bind

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the binder.
type metrics struct {
	subscribesTotal   prometheus.Counter
	unsubscribesTotal prometheus.Counter
	rendersTotal      prometheus.Counter
	missingStoreTotal prometheus.Counter
}

// globalMetrics is the singleton metrics instance, created by EnableMetrics.
// All recording helpers no-op until then.
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// EnableMetrics registers the binder's Prometheus metrics with the given
// registry. Pass nil to use prometheus.DefaultRegisterer. Calling it more
// than once is a no-op.
//
// Metrics collected:
//   - tether_bind_subscribes_total: store event registrations
//   - tether_bind_unsubscribes_total: store event deregistrations
//   - tether_bind_renders_total: wrapper render passes
//   - tether_bind_missing_store_total: lifecycle phases skipped because no
//     store was resolvable
func EnableMetrics(registry prometheus.Registerer) {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()

	if globalMetrics != nil {
		return
	}
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	globalMetrics = &metrics{
		subscribesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tether",
			Subsystem: "bind",
			Name:      "subscribes_total",
			Help:      "Total store event registrations made by wrappers",
		}),
		unsubscribesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tether",
			Subsystem: "bind",
			Name:      "unsubscribes_total",
			Help:      "Total store event deregistrations made by wrappers",
		}),
		rendersTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tether",
			Subsystem: "bind",
			Name:      "renders_total",
			Help:      "Total wrapper render passes",
		}),
		missingStoreTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tether",
			Subsystem: "bind",
			Name:      "missing_store_total",
			Help:      "Total lifecycle phases skipped because the store was unresolvable",
		}),
	}
}

func recordSubscribes(n int) {
	if globalMetrics != nil && n > 0 {
		globalMetrics.subscribesTotal.Add(float64(n))
	}
}

func recordUnsubscribes(n int) {
	if globalMetrics != nil && n > 0 {
		globalMetrics.unsubscribesTotal.Add(float64(n))
	}
}

func recordRender() {
	if globalMetrics != nil {
		globalMetrics.rendersTotal.Inc()
	}
}

func recordMissingStore() {
	if globalMetrics != nil {
		globalMetrics.missingStoreTotal.Inc()
	}
}
