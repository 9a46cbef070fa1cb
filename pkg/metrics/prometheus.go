// Package metrics provides Prometheus metrics for the retail insights
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Dataset lifecycle
	datasetLoads      prometheus.Counter
	datasetLoadErrors prometheus.Counter
	preprocessRuns    prometheus.Counter
	preprocessErrors  prometheus.Counter
	datasetRows       prometheus.Gauge
	rowsRetained      prometheus.Gauge
	rowsDropped       prometheus.Gauge

	// Insight queries
	queries      *prometheus.CounterVec
	queryErrors  *prometheus.CounterVec
	queryLatency *prometheus.HistogramVec

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager

// Custom registry to avoid the default Go runtime metrics.
var customRegistry = prometheus.NewRegistry()

func init() {
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with defaults applied.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "rie",
		subsystem:        "insights",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.datasetLoads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_loads_total",
		Help:      "Total number of successful dataset loads",
	})
	m.datasetLoadErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_errors_total",
		Help:      "Total number of failed dataset loads",
	})
	m.preprocessRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "preprocess_runs_total",
		Help:      "Total number of successful preprocessing passes",
	})
	m.preprocessErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "preprocess_errors_total",
		Help:      "Total number of failed preprocessing passes",
	})
	m.datasetRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_rows",
		Help:      "Rows in the currently held dataset",
	})
	m.rowsRetained = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "preprocess_rows_retained",
		Help:      "Rows retained by the last preprocessing pass",
	})
	m.rowsDropped = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "preprocess_rows_dropped",
		Help:      "Rows dropped by the last preprocessing pass",
	})

	m.queries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queries_total",
		Help:      "Total insight queries by operation",
	}, []string{"operation"})
	m.queryErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "query_errors_total",
		Help:      "Total failed insight queries by operation",
	}, []string{"operation"})
	m.queryLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "query_latency_milliseconds",
		Help:      "Histogram of insight query latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"operation"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method, and status",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// GetRegistry returns the registry metrics are served from.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers delegating to the global manager.

func RecordDatasetLoad()      { globalManager.datasetLoads.Inc() }
func RecordDatasetLoadError() { globalManager.datasetLoadErrors.Inc() }
func RecordPreprocess()       { globalManager.preprocessRuns.Inc() }
func RecordPreprocessError()  { globalManager.preprocessErrors.Inc() }

func UpdateDatasetRows(n int)  { globalManager.datasetRows.Set(float64(n)) }
func UpdateRowsRetained(n int) { globalManager.rowsRetained.Set(float64(n)) }
func UpdateRowsDropped(n int)  { globalManager.rowsDropped.Set(float64(n)) }

func RecordQuery(operation string)      { globalManager.queries.WithLabelValues(operation).Inc() }
func RecordQueryError(operation string) { globalManager.queryErrors.WithLabelValues(operation).Inc() }
func RecordQueryLatency(operation string, ms float64) {
	globalManager.queryLatency.WithLabelValues(operation).Observe(ms)
}

func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}
