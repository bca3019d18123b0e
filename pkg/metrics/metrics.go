package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Результаты операций с журналом бронирований
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultConflict = "conflict"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// Metrics набор метрик сервиса на отдельном реестре
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	LedgerOperations    *prometheus.CounterVec
	AvailabilityQueries *prometheus.CounterVec
	ActiveSessions      prometheus.Gauge
}

// New создает и регистрирует метрики
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		LedgerOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "ledger_operations_total",
			Help:        "Booking ledger operations by type and result.",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),
		AvailabilityQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_queries_total",
			Help:        "Availability queries by scope and result.",
			ConstLabels: constLabels,
		}, []string{"scope", "result"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "active_sessions",
			Help:        "Number of logged in users.",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.LedgerOperations,
		m.AvailabilityQueries,
		m.ActiveSessions,
	)

	return m
}

// Handler возвращает http.Handler для эндпоинта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает реестр (нужен в тестах)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordLedgerOperation учитывает операцию с журналом
func (m *Metrics) RecordLedgerOperation(operation, result string) {
	if m == nil {
		return
	}
	m.LedgerOperations.WithLabelValues(operation, result).Inc()
}

// RecordAvailabilityQuery учитывает запрос доступности
func (m *Metrics) RecordAvailabilityQuery(scope, result string) {
	if m == nil {
		return
	}
	m.AvailabilityQueries.WithLabelValues(scope, result).Inc()
}

// SetActiveSessions обновляет количество активных сессий
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}
