package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	calculator "github.com/samugi/cal-cu-lator"
)

// PrometheusCollector implements calculator.MetricsCollector.
type PrometheusCollector struct {
	searches       *prometheus.CounterVec
	searchDuration prometheus.Histogram
	candidates     prometheus.Counter
	combines       prometheus.Counter
	combinedKeys   prometheus.Gauge
	loads          *prometheus.CounterVec
	loadDuration   prometheus.Histogram
}

// NewPrometheusCollector creates the collector and registers it with reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calculator_searches_total",
			Help: "Dataset searches by status",
		}, []string{"status"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "calculator_search_duration_seconds",
			Help:    "Duration of dataset searches",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calculator_candidates_scored_total",
			Help: "Signed combinations scored across all searches",
		}),
		combines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calculator_combines_total",
			Help: "Cross-dataset combinations performed",
		}),
		combinedKeys: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "calculator_combined_keys",
			Help: "Distinct canonical keys folded by the last combination",
		}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calculator_dataset_loads_total",
			Help: "Dataset loads by status",
		}, []string{"status"}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "calculator_dataset_load_duration_seconds",
			Help:    "Duration of dataset loads",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.searches,
		c.searchDuration,
		c.candidates,
		c.combines,
		c.combinedKeys,
		c.loads,
		c.loadDuration,
	)
	return c
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordSearch implements calculator.MetricsCollector.
func (c *PrometheusCollector) RecordSearch(_ string, stats calculator.SearchStats, err error) {
	c.searches.WithLabelValues(status(err)).Inc()
	c.searchDuration.Observe(stats.Duration.Seconds())
	c.candidates.Add(float64(stats.Candidates))
}

// RecordCombine implements calculator.MetricsCollector.
func (c *PrometheusCollector) RecordCombine(_ int, keys int, _ time.Duration) {
	c.combines.Inc()
	c.combinedKeys.Set(float64(keys))
}

// RecordLoad records a dataset load.
func (c *PrometheusCollector) RecordLoad(d time.Duration, err error) {
	c.loads.WithLabelValues(status(err)).Inc()
	c.loadDuration.Observe(d.Seconds())
}

// serveMetrics exposes reg on addr until the returned stop func is called.
func serveMetrics(addr string, reg prometheus.Gatherer, logger *calculator.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
