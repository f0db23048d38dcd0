package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes benchmark harness progress to Prometheus, useful when
// watching a long run from the outside.
type Metrics struct {
	registry *prometheus.Registry

	SamplesTotal   *prometheus.CounterVec
	SampleDuration *prometheus.HistogramVec
	CurrentDigits  prometheus.Gauge
	RunsTotal      prometheus.Counter
}

// NewMetrics creates and registers all collectors on a private registry
// so repeated construction (e.g. in tests) cannot double-register.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.SamplesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mulbench_samples_total",
			Help: "Total number of benchmark samples collected",
		},
		[]string{"algorithm"},
	)

	m.SampleDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mulbench_sample_duration_seconds",
			Help:    "Per-operation duration observed by each sample",
			Buckets: prometheus.ExponentialBuckets(1e-8, 4, 16),
		},
		[]string{"algorithm"},
	)

	m.CurrentDigits = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mulbench_current_digits",
			Help: "Operand size (limbs) currently being measured",
		},
	)

	m.RunsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mulbench_runs_total",
			Help: "Total number of completed benchmark runs",
		},
	)

	m.registry.MustRegister(m.SamplesTotal, m.SampleDuration, m.CurrentDigits, m.RunsTotal)
	return m
}

// ObserveSample implements benchmark.Recorder.
func (m *Metrics) ObserveSample(algorithm string, digits int, perOp time.Duration) {
	m.SamplesTotal.WithLabelValues(algorithm).Inc()
	m.SampleDuration.WithLabelValues(algorithm).Observe(perOp.Seconds())
	m.CurrentDigits.Set(float64(digits))
}

// Handler returns the scrape handler for this metrics set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on the given port until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("metrics server shutdown failed", "error", err)
		}
	}()

	slog.Info("serving metrics", "port", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("metrics server failed", "error", err)
	}
}
