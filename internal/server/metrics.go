package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the instrumentation for the evaluation surface.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	EvalLatency prometheus.Histogram
	LLMFailures *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "monai",
			Name:      "evaluations_total",
			Help:      "Submissions processed, partitioned by terminal outcome.",
		}, []string{"outcome"}),
		EvalLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "monai",
			Name:      "evaluation_duration_seconds",
			Help:      "Wall time of one evaluation, inference included.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		LLMFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "monai",
			Name:      "llm_failures_total",
			Help:      "Inference and response-contract failures by kind.",
		}, []string{"kind"}),
	}
}

// Outcome label values for Evaluations.
const (
	outcomeConsistent   = "consistent"
	outcomeAnomalous    = "anomalous"
	outcomeForced       = "forced"
	outcomeInsufficient = "insufficient_history"
	outcomeRejected     = "rejected"
	outcomeError        = "error"
)
