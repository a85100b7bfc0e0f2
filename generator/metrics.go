package generator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Attempt outcomes, used as the "outcome" label.
const (
	OutcomeAccepted        = "accepted"
	OutcomeUnsolvable      = "unsolvable"
	OutcomeBudgetExhausted = "budget_exhausted"
	OutcomeTrivial         = "trivial"
	OutcomeInvalid         = "invalid"
)

// Level results, used as the "result" label.
const (
	ResultGenerated = "generated"
	ResultFallback  = "fallback"
)

// Metrics holds the generator's Prometheus collectors. All methods are safe on
// a nil receiver.
type Metrics struct {
	Attempts *prometheus.CounterVec
	Levels   *prometheus.CounterVec
	Explored prometheus.Histogram
	Duration prometheus.Histogram
}

// NewMetrics registers the collectors on reg. A nil reg uses the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Attempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chronogrid",
			Subsystem: "generator",
			Name:      "attempts_total",
			Help:      "Layout attempts by outcome.",
		}, []string{"outcome"}),
		Levels: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chronogrid",
			Subsystem: "generator",
			Name:      "levels_total",
			Help:      "Levels returned, generated or fallback.",
		}, []string{"result"}),
		Explored: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "chronogrid",
			Subsystem: "solver",
			Name:      "explored_states",
			Help:      "Distinct states visited per solver run.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "chronogrid",
			Subsystem: "generator",
			Name:      "duration_seconds",
			Help:      "Wall time per Generate call.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) attempt(outcome string) {
	if m == nil {
		return
	}
	m.Attempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) explored(n int) {
	if m == nil {
		return
	}
	m.Explored.Observe(float64(n))
}

func (m *Metrics) level(result string, since time.Time) {
	if m == nil {
		return
	}
	m.Levels.WithLabelValues(result).Inc()
	m.Duration.Observe(time.Since(since).Seconds())
}
