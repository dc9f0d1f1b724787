package expd

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the daemon's Prometheus collectors. Collectors register on
// the given registerer so tests can use isolated registries.
type Metrics struct {
	ExperimentsStarted   prometheus.Counter
	ExperimentsCompleted *prometheus.CounterVec
	RunsCompleted        prometheus.Counter
	RunFinalValue        prometheus.Histogram
	ExperimentDuration   prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ExperimentsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "expd",
			Name:      "experiments_started_total",
			Help:      "Number of experiments started.",
		}),
		ExperimentsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "expd",
			Name:      "experiments_completed_total",
			Help:      "Number of experiments finished, by terminal status.",
		}, []string{"status"}),
		RunsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "expd",
			Name:      "runs_completed_total",
			Help:      "Number of optimization runs finished across all experiments.",
		}),
		RunFinalValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "expd",
			Name:      "run_final_value",
			Help:      "Distribution of per-run final expectation values.",
			Buckets:   prometheus.LinearBuckets(-8.0, 0.5, 12),
		}),
		ExperimentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "expd",
			Name:      "experiment_duration_seconds",
			Help:      "Wall-clock duration of completed experiments.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
	}

	reg.MustRegister(
		m.ExperimentsStarted,
		m.ExperimentsCompleted,
		m.RunsCompleted,
		m.RunFinalValue,
		m.ExperimentDuration,
	)
	return m
}
