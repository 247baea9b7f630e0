// Package metrics exposes the Prometheus collectors of the marketplace core.
package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "agrox"

// per-user keys collapse to one label value to bound cardinality
var perUserKeyPrefixes = []string{"notifications_", "bookmarks_"}

// Metrics owns a private registry so tests and multiple fx apps never collide.
type Metrics struct {
	registry       *prometheus.Registry
	storeMalformed *prometheus.CounterVec
	notifications  *prometheus.CounterVec
	storageErrors  *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		storeMalformed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_malformed_total",
			Help:      "Persisted collections recovered from malformed data.",
		}, []string{"key"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notifications delivered, by type.",
		}, []string{"type"}),
		storageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_errors_total",
			Help:      "Failed key-value operations, by operation.",
		}, []string{"op"}),
	}

	m.registry.MustRegister(
		m.storeMalformed,
		m.notifications,
		m.storageErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// StoreMalformed counts one malformed-data recovery for key.
func (m *Metrics) StoreMalformed(key string) {
	m.storeMalformed.WithLabelValues(KeyLabel(key)).Inc()
}

// NotificationDelivered counts one notification of the given type.
func (m *Metrics) NotificationDelivered(notificationType string) {
	m.notifications.WithLabelValues(notificationType).Inc()
}

// StorageError counts one failed key-value operation.
func (m *Metrics) StorageError(op string) {
	m.storageErrors.WithLabelValues(op).Inc()
}

// StoreMalformedCounter returns the malformed-data counter of key.
func (m *Metrics) StoreMalformedCounter(key string) prometheus.Counter {
	return m.storeMalformed.WithLabelValues(KeyLabel(key))
}

// NotificationsCounter returns the delivered-notifications counter of a type.
func (m *Metrics) NotificationsCounter(notificationType string) prometheus.Counter {
	return m.notifications.WithLabelValues(notificationType)
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// KeyLabel maps a storage key to its metric label: "notifications_a@b.c"
// becomes "notifications_*".
func KeyLabel(key string) string {
	for _, prefix := range perUserKeyPrefixes {
		if strings.HasPrefix(key, prefix) {
			return prefix + "*"
		}
	}

	return key
}
