package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the session runtime.
type metrics struct {
	activeSessions prometheus.Gauge
	sessionsTotal  prometheus.Counter
	patchesSent    prometheus.Counter
}

// globalMetrics is the singleton metrics instance, created by EnableMetrics.
// All recording helpers no-op until then.
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// EnableMetrics registers the runtime's Prometheus metrics with the given
// registry. Pass nil to use prometheus.DefaultRegisterer. Calling it more
// than once is a no-op.
//
// Metrics collected:
//   - tether_server_active_sessions: currently connected sessions
//   - tether_server_sessions_total: sessions accepted since start
//   - tether_server_patches_sent_total: patches pushed to clients
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
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "tether",
			Subsystem: "server",
			Name:      "active_sessions",
			Help:      "Number of active WebSocket sessions",
		}),
		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tether",
			Subsystem: "server",
			Name:      "sessions_total",
			Help:      "Total sessions accepted",
		}),
		patchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tether",
			Subsystem: "server",
			Name:      "patches_sent_total",
			Help:      "Total patches sent to clients",
		}),
	}
}

func recordSessionOpen() {
	if globalMetrics != nil {
		globalMetrics.activeSessions.Inc()
		globalMetrics.sessionsTotal.Inc()
	}
}

func recordSessionClose() {
	if globalMetrics != nil {
		globalMetrics.activeSessions.Dec()
	}
}

func recordPatches(n int) {
	if globalMetrics != nil && n > 0 {
		globalMetrics.patchesSent.Add(float64(n))
	}
}
