package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BracketMetrics records what a scoring run did.
type BracketMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, d time.Duration)
	RecordBracketScored(ctx context.Context)
	RecordBracketRejected(ctx context.Context, rule string)
	RecordPicks(ctx context.Context, verdict string, n int)
}

// PrometheusMetrics keeps the run metrics in its own registry so they can be
// dumped in textfile-collector format once the run ends.
type PrometheusMetrics struct {
	registry   *prometheus.Registry
	attempts   *prometheus.CounterVec
	successes  *prometheus.CounterVec
	failures   *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	scored     prometheus.Counter
	rejected   *prometheus.CounterVec
	picks      *prometheus.CounterVec
	lastRunEnd prometheus.Gauge
}

// NewPrometheusMetrics registers the bracketeering collectors on a fresh registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	const ns = "bracketeering"
	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Name: "operation_attempts_total", Help: "Service operations started.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Name: "operation_successes_total", Help: "Service operations that completed.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Name: "operation_failures_total", Help: "Service operations that failed or panicked.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns, Name: "operation_duration_seconds", Help: "Service operation latency.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"operation"}),
		scored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Name: "brackets_scored_total", Help: "Predictions scored.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Name: "brackets_rejected_total", Help: "Predictions rejected by validation.",
		}, []string{"rule"}),
		picks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Name: "picks_total", Help: "Scored picks by verdict.",
		}, []string{"verdict"}),
		lastRunEnd: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Name: "last_run_timestamp_seconds", Help: "Unix time the metrics were written.",
		}),
	}
	m.registry.MustRegister(m.attempts, m.successes, m.failures, m.durations, m.scored, m.rejected, m.picks, m.lastRunEnd)
	return m
}

// Registry exposes the underlying registry.
func (m *PrometheusMetrics) Registry() *prometheus.Registry { return m.registry }

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, d time.Duration) {
	m.durations.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *PrometheusMetrics) RecordBracketScored(_ context.Context) { m.scored.Inc() }

func (m *PrometheusMetrics) RecordBracketRejected(_ context.Context, rule string) {
	m.rejected.WithLabelValues(rule).Inc()
}

func (m *PrometheusMetrics) RecordPicks(_ context.Context, verdict string, n int) {
	m.picks.WithLabelValues(verdict).Add(float64(n))
}

// WriteTextfile stamps the run end time and writes every metric to path.
func (m *PrometheusMetrics) WriteTextfile(path string) error {
	m.lastRunEnd.SetToCurrentTime()
	return prometheus.WriteToTextfile(path, m.registry)
}

// NoOpMetrics satisfies BracketMetrics and records nothing.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordBracketScored(context.Context)                            {}
func (NoOpMetrics) RecordBracketRejected(context.Context, string)                  {}
func (NoOpMetrics) RecordPicks(context.Context, string, int)                       {}

var (
	_ BracketMetrics = (*PrometheusMetrics)(nil)
	_ BracketMetrics = NoOpMetrics{}
)
