package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// EngineMetrics records transition activity by operation and outcome.
type EngineMetrics struct {
	transitions *prometheus.CounterVec
	failures    *prometheus.CounterVec
	tipVolume   prometheus.Counter
}

var (
	engineMetricsOnce sync.Once
	engineRegistry    *EngineMetrics
)

// Metrics returns the lazily-initialised engine metrics registry.
func Metrics() *EngineMetrics {
	engineMetricsOnce.Do(func() {
		engineRegistry = &EngineMetrics{
			transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "socialnet",
				Subsystem: "engine",
				Name:      "transitions_total",
				Help:      "Total state transitions segmented by operation and outcome.",
			}, []string{"op", "outcome"}),
			failures: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "socialnet",
				Subsystem: "engine",
				Name:      "transition_failures_total",
				Help:      "Failed state transitions segmented by operation.",
			}, []string{"op"}),
			tipVolume: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "socialnet",
				Subsystem: "engine",
				Name:      "tip_volume_minor_units",
				Help:      "Cumulative tip volume committed, in minor units.",
			}),
		}
		prometheus.MustRegister(engineRegistry.transitions, engineRegistry.failures, engineRegistry.tipVolume)
	})
	return engineRegistry
}

// ObserveTransition records one completed transition attempt.
func (m *EngineMetrics) ObserveTransition(op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
		m.failures.WithLabelValues(op).Inc()
	}
	m.transitions.WithLabelValues(op, outcome).Inc()
}

// ObserveTipVolume adds a committed tip amount to the volume counter.
func (m *EngineMetrics) ObserveTipVolume(minorUnits float64) {
	if m == nil || minorUnits <= 0 {
		return
	}
	m.tipVolume.Add(minorUnits)
}
