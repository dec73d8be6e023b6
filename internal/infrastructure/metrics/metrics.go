package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "emotion"

// Upstream call outcomes
const (
	OutcomeSuccess     = "success"
	OutcomeErrorAnswer = "error_answer"
	OutcomeFailure     = "error"
)

// Metrics holds the service collectors. A nil *Metrics is a no-op.
type Metrics struct {
	classifications *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

// New registers the collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		classifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Classifications returned to callers, by variant, emotion and whether the default was substituted.",
		}, []string{"variant", "emotion", "fallback"}),
		upstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of completion service calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
}

// ObserveClassification counts a returned label
func (m *Metrics) ObserveClassification(variant, emotion string, fallback bool) {
	if m == nil {
		return
	}
	m.classifications.WithLabelValues(variant, emotion, strconv.FormatBool(fallback)).Inc()
}

// ObserveUpstream records the duration of one completion service call
func (m *Metrics) ObserveUpstream(d time.Duration, outcome string) {
	if m == nil {
		return
	}
	m.upstreamLatency.WithLabelValues(outcome).Observe(d.Seconds())
}
