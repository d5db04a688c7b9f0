// Package metrics registers the Prometheus instruments exposed by the
// entity stores.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cardtrove/pkg/domain"
)

// Metrics holds the store-level Prometheus counters.
type Metrics struct {
	mutations    *prometheus.CounterVec
	saveFailures *prometheus.CounterVec
	loadFailures *prometheus.CounterVec
}

// New creates and registers all counters on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates the counters on the supplied registerer. Tests pass a
// fresh prometheus.NewRegistry to avoid duplicate registration.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cardtrove_store_mutations_total",
			Help: "Committed store mutations by entity kind and action.",
		}, []string{"entity", "action"}),
		saveFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cardtrove_store_save_failures_total",
			Help: "Snapshot writes that failed after an in-memory mutation.",
		}, []string{"entity"}),
		loadFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cardtrove_store_load_failures_total",
			Help: "Snapshot loads that failed and reset a store to empty.",
		}, []string{"entity"}),
	}
}

// MutationCommitted counts one committed add/update/delete.
func (m *Metrics) MutationCommitted(entity domain.EntityType, action domain.Action) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(string(entity), string(action)).Inc()
}

// SaveFailed counts one swallowed snapshot write failure.
func (m *Metrics) SaveFailed(entity domain.EntityType) {
	if m == nil {
		return
	}
	m.saveFailures.WithLabelValues(string(entity)).Inc()
}

// LoadFailed counts one swallowed snapshot load failure.
func (m *Metrics) LoadFailed(entity domain.EntityType) {
	if m == nil {
		return
	}
	m.loadFailures.WithLabelValues(string(entity)).Inc()
}
