package calculator

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/samugi/cal-cu-lator/internal/combine"
	"github.com/samugi/cal-cu-lator/internal/search"
	"github.com/samugi/cal-cu-lator/model"
)

// Job is one dataset search request.
type Job struct {
	Dataset  model.Dataset
	Goal     float64
	RankSize int
}

func (j Job) validate() error {
	name := j.Dataset.Name
	if n := len(j.Dataset.Fields); n > model.MaxFields {
		return &ErrFieldLimit{Dataset: name, Fields: n, Max: model.MaxFields}
	}
	if j.RankSize <= 0 {
		return fmt.Errorf("dataset %q: %w: got %d", name, ErrInvalidRankSize, j.RankSize)
	}
	if math.IsNaN(j.Goal) || math.IsInf(j.Goal, 0) {
		return fmt.Errorf("dataset %q: %w: got %v", name, ErrInvalidGoal, j.Goal)
	}
	for _, f := range j.Dataset.Fields {
		for _, v := range f.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("dataset %q: field %q: %w: got %v", name, f.Name, ErrInvalidValue, v)
			}
		}
	}
	return nil
}

// SearchStats describes a finished dataset search.
type SearchStats struct {
	Fields     int           `json:"fields"`
	FullMask   uint32        `json:"full_mask"`
	Masks      uint64        `json:"masks"`
	Candidates uint64        `json:"candidates"`
	Workers    int           `json:"workers"`
	Duration   time.Duration `json:"duration"`
}

func fromSearchStats(s search.Stats) SearchStats {
	return SearchStats{
		Fields:     s.Fields,
		FullMask:   s.FullMask,
		Masks:      s.Masks,
		Candidates: s.Candidates,
		Workers:    s.Workers,
		Duration:   s.Duration,
	}
}

// Result is the ranking of one dataset, best first.
type Result struct {
	Dataset    string
	RunID      uuid.UUID
	Goal       float64
	RankSize   int
	Candidates []model.Candidate
	Stats      SearchStats
}

// Report is the outcome of Run.
type Report struct {
	// Results holds one entry per job, in job order.
	Results []Result
	// Combined is set only when more than one job was run.
	Combined []model.Combined
}

// Solver searches datasets for the signed field combinations closest to a goal.
// It is safe for concurrent use.
type Solver struct {
	opts options
}

// New creates a Solver.
func New(optFns ...Option) *Solver {
	return &Solver{opts: applyOptions(optFns)}
}

// Search ranks every signed combination of the job's fields against its goal
// and returns the RankSize best.
//
// An empty dataset yields an empty ranking. On failure no partial ranking is
// returned.
func (s *Solver) Search(ctx context.Context, job Job) (*Result, error) {
	if err := job.validate(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	name := job.Dataset.Name
	log := s.opts.logger.WithDataset(name).WithRunID(runID).WithK(job.RankSize)
	log.LogStart(ctx, len(job.Dataset.Fields), model.FullMask(len(job.Dataset.Fields)), job.Goal)

	cfg := search.Config{
		Workers:    s.opts.workers,
		Controller: s.opts.controller,
	}
	if s.opts.progress {
		cfg.Progress = func(p uint32) { log.LogProgress(ctx, p) }
	}

	rank, st, err := search.Run(ctx, job.Dataset.Fields, job.Goal, job.RankSize, cfg)
	stats := fromSearchStats(st)
	err = translateError(job.Dataset, err)
	s.opts.metricsCollector.RecordSearch(name, stats, err)
	if err != nil {
		log.LogSearch(ctx, stats, 0, err)
		return nil, err
	}
	log.LogSearch(ctx, stats, rank.Len(), nil)

	return &Result{
		Dataset:    name,
		RunID:      runID,
		Goal:       job.Goal,
		RankSize:   job.RankSize,
		Candidates: rank.Items(),
		Stats:      stats,
	}, nil
}

// Run searches every job concurrently and, when more than one job is given,
// combines their rankings.
//
// All jobs are validated before any search starts. The first failing job
// cancels the others and fails the run; no partial report is returned.
func (s *Solver) Run(ctx context.Context, jobs ...Job) (*Report, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	for _, job := range jobs {
		if err := job.validate(); err != nil {
			return nil, err
		}
	}

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerError{Dataset: job.Dataset.Name, Worker: -1, Panic: r}
				}
			}()
			res, err := s.Search(gctx, job)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Results: results}
	if len(results) > 1 {
		report.Combined = s.Combine(ctx, results)
	}
	return report, nil
}

// Combine ranks canonical keys across results by their mean diff and keeps
// the configured display size. Results are folded in the given order.
func (s *Solver) Combine(ctx context.Context, results []Result) []model.Combined {
	start := time.Now()
	c := combine.New()
	for _, r := range results {
		c.Add(r.Candidates)
	}
	out := c.Finalize(s.opts.displaySize).Items()

	d := time.Since(start)
	s.opts.logger.LogCombine(ctx, c.Datasets(), c.Len(), len(out), d)
	s.opts.metricsCollector.RecordCombine(c.Datasets(), c.Len(), d)
	return out
}

func formatMask(m uint32) string {
	return strconv.FormatUint(uint64(m), 2)
}
