// Package metrics exposes Prometheus counters for authentication and notification outcomes.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK     = "ok"
	OutcomeDenied = "denied"
	OutcomeError  = "error"
)

// Metrics owns a private registry. A nil *Metrics is valid and records nothing.
type Metrics struct {
	reg           *prometheus.Registry
	authOps       *prometheus.CounterVec
	notifications *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		authOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gatekeeper_auth_operations_total",
			Help: "Authentication operations by operation and outcome.",
		}, []string{"op", "outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gatekeeper_notifications_total",
			Help: "Outbound notifications by kind and outcome.",
		}, []string{"kind", "outcome"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gatekeeper_rpc_duration_seconds",
			Help:    "gRPC handler latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "code"}),
	}
	m.reg.MustRegister(m.authOps, m.notifications, m.rpcDuration,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return m
}

// Auth counts one authentication operation.
func (m *Metrics) Auth(op, outcome string) {
	if m == nil {
		return
	}
	m.authOps.WithLabelValues(op, outcome).Inc()
}

// Notification counts one delivery attempt.
func (m *Metrics) Notification(kind, outcome string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind, outcome).Inc()
}

// ObserveRPC records the latency of a finished call.
func (m *Metrics) ObserveRPC(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcDuration.WithLabelValues(method, code).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
