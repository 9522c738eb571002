package metrics

import (
	"fmt"
	"time"

	"questionbank/qbexport/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Run status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Collector records export run metrics on a private Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	runsTotal       *prometheus.CounterVec
	recordsTotal    *prometheus.CounterVec
	runDuration     prometheus.Histogram
	lastSuccessTime prometheus.Gauge

	now func() time.Time
}

// NewCollector creates a collector and registers its metrics with registry.
// If registry is nil a fresh one is created. A nil cfg uses the default
// namespace.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	namespace := config.DefaultMetricsNamespace
	if cfg != nil && cfg.Namespace != "" {
		namespace = cfg.Namespace
	}

	c := &Collector{
		registry: registry,
		now:      time.Now,
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "export_runs_total",
				Help:      "Total number of export runs by status",
			},
			[]string{"status"},
		),
		recordsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_exported_total",
				Help:      "Total number of flattened rows written, by sheet",
			},
			[]string{"sheet"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "export_duration_seconds",
				Help:      "Duration of export runs in seconds",
				// Small banks finish in milliseconds, large workbooks in seconds.
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		lastSuccessTime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_export_timestamp_seconds",
				Help:      "Unix timestamp of the last successful export run",
			},
		),
	}

	registry.MustRegister(c.runsTotal, c.recordsTotal, c.runDuration, c.lastSuccessTime)

	return c
}

// RecordRun records a finished run. Only successful runs move the last
// export timestamp.
func (c *Collector) RecordRun(status string, duration time.Duration) {
	c.runsTotal.WithLabelValues(status).Inc()
	c.runDuration.Observe(duration.Seconds())
	if status == StatusSuccess {
		c.lastSuccessTime.Set(float64(c.now().Unix()))
	}
}

// RecordRecords adds n rows written to the named sheet.
func (c *Collector) RecordRecords(sheet string, n int) {
	if n <= 0 {
		return
	}
	c.recordsTotal.WithLabelValues(sheet).Add(float64(n))
}

// WriteTextfile writes every registered metric to path in the text
// exposition format. The file is replaced atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
