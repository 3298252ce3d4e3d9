// Command cal-cu-lator searches payslip-style datasets for the signed
// field combinations whose total lands closest to a goal amount.
//
// Usage:
//
//	cal-cu-lator [flags] source goal rank [source goal rank ...]
//
// Each source is a CSV file path or an s3:// or minio:// URI. With more
// than one dataset the per-dataset rankings are also combined into a
// single ranking of the combinations that fit every dataset best.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	calculator "github.com/samugi/cal-cu-lator"
	"github.com/samugi/cal-cu-lator/blobstore"
	"github.com/samugi/cal-cu-lator/blobstore/minio"
	"github.com/samugi/cal-cu-lator/blobstore/s3"
	"github.com/samugi/cal-cu-lator/codec"
	"github.com/samugi/cal-cu-lator/config"
	"github.com/samugi/cal-cu-lator/dataset"
	"github.com/samugi/cal-cu-lator/resource"
	"github.com/samugi/cal-cu-lator/model"
)

const program = "cal-cu-lator"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type jobSpec struct {
	Source string
	Goal   float64
	Rank   int
}

func parseJobs(args []string) ([]jobSpec, error) {
	if len(args) == 0 || len(args)%3 != 0 {
		return nil, errors.New("expected source goal rank triplets")
	}

	specs := make([]jobSpec, 0, len(args)/3)
	for i := 0; i < len(args); i += 3 {
		goal, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("goal %q: %w", args[i+1], err)
		}
		rank, err := strconv.Atoi(args[i+2])
		if err != nil {
			return nil, fmt.Errorf("rank %q: %w", args[i+2], err)
		}
		specs = append(specs, jobSpec{Source: args[i], Goal: goal, Rank: rank})
	}
	return specs, nil
}

func newLogger(cfg *config.Config, w io.Writer) (*calculator.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch cfg.LogFormat {
	case "json":
		return calculator.NewLogger(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return calculator.NewLogger(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q: %w", cfg.LogFormat, config.ErrInvalidLogFormat)
	}
}

func newCodec(cfg *config.Config) (codec.Codec, error) {
	c, ok := codec.ByName(cfg.Codec)
	if !ok {
		return nil, fmt.Errorf("codec %q: %w", cfg.Codec, config.ErrInvalidCodec)
	}
	return c, nil
}

func newLoader(cfg *config.Config, ctrl *resource.Controller) *dataset.Loader {
	return dataset.NewLoader(
		dataset.WithController(ctrl),
		dataset.WithResolver("s3", func(ctx context.Context, bucket string) (blobstore.Store, error) {
			return s3.New(ctx, bucket, s3.WithRegion(cfg.S3.Region), s3.WithEndpoint(cfg.S3.Endpoint))
		}),
		dataset.WithResolver("minio", func(_ context.Context, bucket string) (blobstore.Store, error) {
			client, err := minio.Dial(minio.Config{
				Endpoint:  cfg.MinIO.Endpoint,
				AccessKey: cfg.MinIO.AccessKey,
				SecretKey: cfg.MinIO.SecretKey,
				Secure:    cfg.MinIO.Secure,
			})
			if err != nil {
				return nil, err
			}
			return minio.NewStore(client, bucket, ""), nil
		}),
	)
}

func loadDatasets(ctx context.Context, loader *dataset.Loader, specs []jobSpec, logger *calculator.Logger, metrics *PrometheusCollector) ([]model.Dataset, error) {
	datasets := make([]model.Dataset, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			start := time.Now()
			ds, err := loader.Load(gctx, spec.Source)
			metrics.RecordLoad(time.Since(start), err)
			logger.LogLoad(gctx, spec.Source, len(ds.Fields), err)
			if err != nil {
				return fmt.Errorf("load %s: %w", spec.Source, err)
			}
			datasets[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return datasets, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to a YAML config file")
	workers := fs.Int("workers", 0, "scoring workers per search (0 = GOMAXPROCS)")
	display := fs.Int("display", config.DefaultDisplaySize, "combined results to print")
	output := fs.String("output", config.DefaultOutput, "output format: text or json")
	logLevel := fs.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	metricsAddr := fs.String("metrics-addr", "", "serve Prometheus metrics on this address")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] source goal rank [source goal rank ...]\n", program)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	specs, err := parseJobs(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		fs.Usage()
		return exitUsage
	}

	cfg, errs := config.Load(*configPath)
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return exitError
	}

	// Explicit flags win over file and environment values.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Workers = *workers
		case "display":
			cfg.DisplaySize = *display
		case "output":
			cfg.Output = *output
		case "log-level":
			cfg.LogLevel = *logLevel
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		}
	})
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return exitError
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	enc, err := newCodec(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	logger.Debug("configuration loaded", "config", cfg.LogSummary())

	reg := prometheus.NewRegistry()
	metrics := NewPrometheusCollector(reg)
	if cfg.MetricsAddr != "" {
		stopMetrics, err := serveMetrics(cfg.MetricsAddr, reg, logger)
		if err != nil {
			fmt.Fprintf(stderr, "error: metrics: %v\n", err)
			return exitError
		}
		defer stopMetrics()
	}

	ctrl := resource.NewController(resource.Config{
		MaxWorkers:         int64(cfg.Workers),
		IOLimitBytesPerSec: cfg.IOLimitBytesPerSec,
	})

	datasets, err := loadDatasets(ctx, newLoader(cfg, ctrl), specs, logger, metrics)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	jobs := make([]calculator.Job, len(specs))
	for i, spec := range specs {
		jobs[i] = calculator.Job{Dataset: datasets[i], Goal: spec.Goal, RankSize: spec.Rank}
		if cfg.Output == "text" {
			fmt.Fprintf(stdout, "Reading from: %q\n\nRunning with goal: %v\nrank_size: %d\n\n",
				spec.Source, spec.Goal, spec.Rank)
		}
	}

	solver := calculator.New(
		calculator.WithWorkers(cfg.Workers),
		calculator.WithDisplaySize(cfg.DisplaySize),
		calculator.WithResourceController(ctrl),
		calculator.WithMetricsCollector(metrics),
		calculator.WithLogger(logger),
		calculator.WithProgress(cfg.LogLevel == "debug"),
	)

	report, err := solver.Run(ctx, jobs...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	if cfg.Output == "json" {
		if err := renderJSON(stdout, enc, report); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitError
		}
		return exitOK
	}

	renderText(stdout, report)
	return exitOK
}
