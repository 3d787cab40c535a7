package localedata

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Resolution outcomes recorded by Metrics.
const (
	OutcomeExact    = "exact"
	OutcomeFallback = "fallback"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics holds the Prometheus collectors a Provider reports to.
type Metrics struct {
	Resolutions *prometheus.CounterVec
	TableLoads  *prometheus.CounterVec
}

// NewMetrics creates unregistered collectors under namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "localedata",
				Name:      "resolutions_total",
				Help:      "Total number of resolutions by data key and outcome",
			},
			[]string{"key", "outcome"},
		),

		TableLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "localedata",
				Name:      "table_loads_total",
				Help:      "Total number of lazy table loads by data key and status",
			},
			[]string{"key", "status"},
		),
	}
}

// Register adds every collector to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if m == nil || reg == nil {
		return nil
	}
	for _, collector := range []prometheus.Collector{m.Resolutions, m.TableLoads} {
		if err := reg.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) observeResolution(key DataKey, exact bool, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeExact
	switch {
	case errors.Is(err, ErrNotFound):
		outcome = OutcomeNotFound
	case err != nil:
		outcome = OutcomeError
	case !exact:
		outcome = OutcomeFallback
	}
	m.Resolutions.WithLabelValues(string(key), outcome).Inc()
}

func (m *Metrics) observeLoad(key DataKey, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.TableLoads.WithLabelValues(string(key), status).Inc()
}
