// Package metrics holds the Prometheus collectors of the secrets vault.
// Collectors are registered on a private registry; nothing touches the
// default global one.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vault"

// Access decision results.
const (
	ResultGranted = "granted"
	ResultDenied  = "denied"
	ResultExpired = "expired"
)

// Crypto operations.
const (
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
)

// Metrics is the set of collectors exported on /metrics. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	AccessDecisionsTotal *prometheus.CounterVec
	AuditFailuresTotal   prometheus.Counter
	CryptoFailuresTotal  *prometheus.CounterVec

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates every collector and registers it on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,

		AccessDecisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_decisions_total",
			Help:      "Access decisions evaluated for secret notes.",
		}, []string{"result"}),

		AuditFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_failures_total",
			Help:      "Audit entries that could not be written.",
		}),

		CryptoFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crypto_failures_total",
			Help:      "Failed encryption and decryption attempts.",
		}, []string{"op"}),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		}, []string{"method", "route", "status_code"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.AccessDecisionsTotal,
		m.AuditFailuresTotal,
		m.CryptoFailuresTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveDecision counts one access decision.
func (m *Metrics) ObserveDecision(canAccess, expired bool) {
	if m == nil {
		return
	}

	result := ResultGranted
	switch {
	case expired && !canAccess:
		result = ResultExpired
	case !canAccess:
		result = ResultDenied
	}
	m.AccessDecisionsTotal.WithLabelValues(result).Inc()
}

// AuditFailed counts one suppressed audit write failure.
func (m *Metrics) AuditFailed() {
	if m == nil {
		return
	}
	m.AuditFailuresTotal.Inc()
}

// CryptoFailed counts one failed crypto operation.
func (m *Metrics) CryptoFailed(op string) {
	if m == nil {
		return
	}
	m.CryptoFailuresTotal.WithLabelValues(op).Inc()
}

// ObserveHTTP records a finished HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
