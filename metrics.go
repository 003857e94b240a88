package gembridge

import "github.com/prometheus/client_golang/prometheus"

// Metrics instruments the bridge loop. All methods are nil-safe so an
// uninstrumented Client pays only a nil check.
type Metrics struct {
	backendRequests prometheus.Counter
	toolExecutions  *prometheus.CounterVec
	bridgeErrors    *prometheus.CounterVec
}

// NewMetrics creates and registers bridge collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		backendRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gembridge",
			Name:      "backend_requests_total",
			Help:      "Requests issued to the Gemini backend.",
		}),
		toolExecutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gembridge",
			Name:      "tool_executions_total",
			Help:      "Host tool executions triggered by model function calls.",
		}, []string{"tool"}),
		bridgeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gembridge",
			Name:      "errors_total",
			Help:      "Bridge failures by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.backendRequests, m.toolExecutions, m.bridgeErrors)
	return m
}

func (m *Metrics) observeBackendRequest() {
	if m == nil {
		return
	}
	m.backendRequests.Inc()
}

func (m *Metrics) observeToolExecution(tool string) {
	if m == nil {
		return
	}
	m.toolExecutions.WithLabelValues(tool).Inc()
}

func (m *Metrics) observeError(kind string) {
	if m == nil {
		return
	}
	m.bridgeErrors.WithLabelValues(kind).Inc()
}
