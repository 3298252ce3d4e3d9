package calculator

import (
	"log/slog"

	"github.com/samugi/cal-cu-lator/resource"
)

// DefaultDisplaySize is the capacity of the combined ranking.
const DefaultDisplaySize = 10

type options struct {
	workers          int
	displaySize      int
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
	progress         bool
}

// Option configures a Solver.
type Option func(*options)

// WithWorkers sets the number of enumeration workers per dataset.
// If workers <= 0, GOMAXPROCS is used.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithDisplaySize sets how many combined candidates Run keeps.
//
// If size <= 0, DefaultDisplaySize is used.
func WithDisplaySize(size int) Option {
	return func(o *options) {
		if size <= 0 {
			size = DefaultDisplaySize
		}
		o.displaySize = size
	}
}

// WithResourceController shares worker slots between all datasets searched
// by the Solver. Without it every dataset runs its workers unthrottled.
//
// Example:
//
//	ctrl := resource.NewController(resource.Config{MaxWorkers: 8})
//	s := calculator.New(calculator.WithResourceController(ctrl))
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring searches.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &calculator.BasicMetricsCollector{}
//	s := calculator.New(calculator.WithMetricsCollector(metrics))
//	// ... run searches ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for searches.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := calculator.NewJSONLogger(slog.LevelInfo)
//	s := calculator.New(calculator.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithProgress enables progress percentages, logged at debug level.
func WithProgress(enabled bool) Option {
	return func(o *options) {
		o.progress = enabled
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		displaySize:      DefaultDisplaySize,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
