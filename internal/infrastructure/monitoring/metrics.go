package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rpncalc"

// Metrics holds all Prometheus metrics. Each Metrics owns its registry so
// several instances can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	// Calculator metrics
	CommandsTotal    *prometheus.CounterVec
	DiagnosticsTotal *prometheus.CounterVec
	Sessions         prometheus.Gauge
	Depth            *prometheus.GaugeVec

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	startTime time.Time

	// Snapshot for the health endpoint
	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds current metric values for the JSON health endpoint
type Snapshot struct {
	Commands    int64   `json:"commands"`
	Diagnostics int64   `json:"diagnostics"`
	Sessions    int64   `json:"sessions"`
	Uptime      float64 `json:"uptime_seconds"`
}

// NewMetrics creates a new metrics collector with its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Total number of dispatched words by command kind",
			},
			[]string{"kind"},
		),
		DiagnosticsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "diagnostics_total",
				Help:      "Total number of rejected commands by diagnostic kind",
			},
			[]string{"kind"},
		),
		Sessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions_active",
				Help:      "Number of live sessions",
			},
		),
		Depth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "stack_depth",
				Help:      "Number of values on each session's stack",
			},
			[]string{"session"},
		),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),
	}

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uptime_seconds",
			Help:      "Process uptime in seconds",
		},
		m.uptime,
	)
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) uptime() float64 {
	return time.Since(m.startTime).Seconds()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// CommandDispatched counts one dispatched word
func (m *Metrics) CommandDispatched(kind string) {
	m.CommandsTotal.WithLabelValues(kind).Inc()
	m.mu.Lock()
	m.snapshot.Commands++
	m.mu.Unlock()
}

// DiagnosticRaised counts one rejected command
func (m *Metrics) DiagnosticRaised(kind string) {
	m.DiagnosticsTotal.WithLabelValues(kind).Inc()
	m.mu.Lock()
	m.snapshot.Diagnostics++
	m.mu.Unlock()
}

// SessionsActive sets the number of live sessions
func (m *Metrics) SessionsActive(n int) {
	m.Sessions.Set(float64(n))
	m.mu.Lock()
	m.snapshot.Sessions = int64(n)
	m.mu.Unlock()
}

// StackDepth sets the stack depth of a session
func (m *Metrics) StackDepth(session string, depth int) {
	m.Depth.WithLabelValues(session).Set(float64(depth))
}

// SessionRemoved drops the per-session series of a removed session
func (m *Metrics) SessionRemoved(session string) {
	m.Depth.DeleteLabelValues(session)
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Snapshot returns the current counters
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.snapshot
	s.Uptime = m.uptime()
	return s
}
