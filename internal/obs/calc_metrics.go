package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CalcMetrics groups Prometheus collectors for the calculation engines.
type CalcMetrics struct {
	// Total counts evaluations per engine, labelled by where the answer
	// came from ("computed" or "cache").
	Total *prometheus.CounterVec
	// Duration records engine evaluation latency in milliseconds. Cache
	// hits are not observed here.
	Duration *prometheus.HistogramVec
}

// Result sources for CalcMetrics.Total.
const (
	SourceComputed = "computed"
	SourceCache    = "cache"
)

// NewCalcMetrics registers and returns the engine collectors.
func NewCalcMetrics(namespace string, reg prometheus.Registerer) *CalcMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &CalcMetrics{
		Total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Count of calculator evaluations by engine and answer source.",
		}, []string{"engine", "source"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_ms",
			Help:      "Engine evaluation latency in milliseconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}, []string{"engine"}),
	}
	registerOrReuse(reg, m.Total)
	registerOrReuse(reg, m.Duration)
	return m
}

// Observe records one computed evaluation.
func (m *CalcMetrics) Observe(engine string, d time.Duration) {
	if m == nil {
		return
	}
	m.Total.WithLabelValues(engine, SourceComputed).Inc()
	m.Duration.WithLabelValues(engine).Observe(DurationMillis(d))
}

// CacheHit records one answer served from the result cache.
func (m *CalcMetrics) CacheHit(engine string) {
	if m == nil {
		return
	}
	m.Total.WithLabelValues(engine, SourceCache).Inc()
}
