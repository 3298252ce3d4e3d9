package calculator

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    searches  *prometheus.CounterVec
//	    durations prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSearch(dataset string, stats calculator.SearchStats, err error) {
//	    p.searches.WithLabelValues(dataset).Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordSearch is called after each dataset search.
	// err is nil if successful.
	RecordSearch(dataset string, stats SearchStats, err error)

	// RecordCombine is called after rankings of several datasets have been
	// combined. keys is the number of distinct canonical keys folded.
	RecordCombine(datasets, keys int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(string, SearchStats, error) {}
func (NoopMetricsCollector) RecordCombine(int, int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	CandidatesScored atomic.Uint64
	CombineCount     atomic.Int64
	CombinedKeys     atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(_ string, stats SearchStats, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(stats.Duration.Nanoseconds())
	b.CandidatesScored.Add(stats.Candidates)
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordCombine implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCombine(_ int, keys int, _ time.Duration) {
	b.CombineCount.Add(1)
	b.CombinedKeys.Add(int64(keys))
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	SearchCount      int64
	SearchErrors     int64
	SearchAvgNanos   int64
	CandidatesScored uint64
	CombineCount     int64
	CombinedKeys     int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		SearchCount:      b.SearchCount.Load(),
		SearchErrors:     b.SearchErrors.Load(),
		CandidatesScored: b.CandidatesScored.Load(),
		CombineCount:     b.CombineCount.Load(),
		CombinedKeys:     b.CombinedKeys.Load(),
	}
	if s.SearchCount > 0 {
		s.SearchAvgNanos = b.SearchTotalNanos.Load() / s.SearchCount
	}
	return s
}
