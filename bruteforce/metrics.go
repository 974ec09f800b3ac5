package bruteforce

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Solve outcomes used as the "outcome" label.
const (
	outcomeComplete = "complete"
	outcomePartial  = "partial"
	outcomeFailed   = "failed"
)

// Metrics groups the Prometheus collectors updated by Solve.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Candidates prometheus.Counter
	Solves     *prometheus.CounterVec
	Duration   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered (useful for tests).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "binlsq_bruteforce_candidates_total",
			Help: "Binary assignments whose residual norm was evaluated",
		}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "binlsq_bruteforce_solves_total",
			Help: "Exhaustive searches by outcome",
		}, []string{"outcome"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "binlsq_bruteforce_solve_duration_seconds",
			Help:    "Wall-clock duration of exhaustive searches",
			Buckets: prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Candidates, m.Solves, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe records one finished solve.
func (m *Metrics) observe(outcome string, evaluated int64, d time.Duration) {
	if m == nil {
		return
	}
	m.Candidates.Add(float64(evaluated))
	m.Solves.WithLabelValues(outcome).Inc()
	m.Duration.Observe(d.Seconds())
}
