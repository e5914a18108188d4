package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records request counts and latencies per route.
type HTTPMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

// NewHTTPMetrics registers the HTTP metrics on the provided registerer.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests handled.",
	}, []string{"method", "route", "status"})
	reg.MustRegister(duration, requests)
	return &HTTPMetrics{duration: duration, requests: requests}
}

// Observe records one handled request.
func (m *HTTPMetrics) Observe(method, route, status string, elapsed time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(method, normalizeLabel(route), status).Observe(elapsed.Seconds())
	m.requests.WithLabelValues(method, normalizeLabel(route), status).Inc()
}

// SalesMetrics counts registered sales by payment method.
type SalesMetrics struct {
	registered *prometheus.CounterVec
	rejected   *prometheus.CounterVec
}

// NewSalesMetrics registers the sales metrics on the provided registerer.
func NewSalesMetrics(reg prometheus.Registerer) *SalesMetrics {
	if reg == nil {
		return &SalesMetrics{}
	}
	registered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ventas_registradas_total",
		Help: "Sales registered successfully, by payment method.",
	}, []string{"metodo_pago"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ventas_rechazadas_total",
		Help: "Sale submissions rejected before persistence, by reason.",
	}, []string{"motivo"})
	reg.MustRegister(registered, rejected)
	return &SalesMetrics{registered: registered, rejected: rejected}
}

// IncRegistered counts a persisted sale.
func (m *SalesMetrics) IncRegistered(metodoPago string) {
	if m == nil || m.registered == nil {
		return
	}
	m.registered.WithLabelValues(normalizeLabel(metodoPago)).Inc()
}

// IncRejected counts a rejected submission.
func (m *SalesMetrics) IncRejected(motivo string) {
	if m == nil || m.rejected == nil {
		return
	}
	m.rejected.WithLabelValues(normalizeLabel(motivo)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
