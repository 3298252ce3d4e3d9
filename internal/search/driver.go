package search

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/samugi/cal-cu-lator/internal/permutation"
	"github.com/samugi/cal-cu-lator/internal/progress"
	"github.com/samugi/cal-cu-lator/internal/ranked"
	"github.com/samugi/cal-cu-lator/resource"
	"github.com/samugi/cal-cu-lator/model"
)

// chunksPerWorker controls how finely the mask range is split when
// ChunkSize is not set. More chunks balance load better across workers whose
// masks have very different popcounts.
const chunksPerWorker = 64

// Config configures a search run.
type Config struct {
	// Workers is the number of enumeration workers. If 0, defaults to GOMAXPROCS.
	Workers int

	// ChunkSize is the number of selection masks a worker claims at a time.
	// If 0, it is derived from the mask count and Workers.
	ChunkSize uint64

	// Controller bounds how many workers score at once across concurrent
	// searches. May be nil.
	Controller *resource.Controller

	// Progress receives completion percentages over selection masks. May be nil.
	Progress progress.Sink

	// testHookChunk runs before a worker scores a chunk.
	testHookChunk func(worker int, start uint64)
}

// Stats describes a finished search.
type Stats struct {
	Fields     int
	FullMask   uint32
	Masks      uint64 // selection masks enumerated (2^N - 1)
	Candidates uint64 // (sign, select) pairs scored (3^N - 1)
	Workers    int
	Duration   time.Duration
}

// Validate checks that fields can be searched.
func Validate(fields []model.Field) error {
	if n := len(fields); n > model.MaxFields {
		return fmt.Errorf("%w: %d fields, max %d supported", ErrTooManyFields, n, model.MaxFields)
	}
	return nil
}

// Run scores every (sign, select) combination of fields against goal and
// returns the k best, ordered by ascending diff.
//
// An empty field list yields an empty ranking. More than model.MaxFields
// fields is rejected before any work starts. A worker panic or a cancelled
// ctx fails the whole run; no partial ranking is returned.
func Run(ctx context.Context, fields []model.Field, goal float64, k int, cfg Config) (*ranked.Collection[model.Candidate], Stats, error) {
	start := time.Now()
	stats := Stats{Fields: len(fields)}

	if err := Validate(fields); err != nil {
		return nil, stats, err
	}
	if len(fields) == 0 {
		stats.Duration = time.Since(start)
		return ranked.New[model.Candidate](k), stats, nil
	}

	full := model.FullMask(len(fields))
	total := uint64(full)
	stats.FullMask = full
	stats.Masks = total

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = int(min(uint64(workers), total))
	stats.Workers = workers

	chunk := cfg.ChunkSize
	if chunk == 0 {
		chunk = max(1, total/uint64(workers*chunksPerWorker))
	}

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	var (
		next   atomic.Uint64
		scored atomic.Uint64
	)
	report := progress.New(total, cfg.Progress)
	parts := make([]*ranked.Collection[model.Candidate], workers)

	g, gctx := errgroup.WithContext(ctx)
	for id := range workers {
		w := &worker{
			id:     id,
			fields: fields,
			names:  names,
			goal:   goal,
			full:   full,
			rank:   ranked.New[model.Candidate](k),
		}
		parts[id] = w.rank
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &PanicError{Worker: id, Value: r, Stack: debug.Stack()}
				}
			}()
			for {
				lo := next.Add(chunk) - chunk
				if lo >= total {
					break
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				hi := min(lo+chunk, total)
				if cfg.testHookChunk != nil {
					cfg.testHookChunk(id, lo)
				}
				// Mask index i maps to selection mask i+1; the empty mask is skipped.
				if err := w.runChunk(gctx, cfg.Controller, uint32(lo+1), uint32(hi), report); err != nil {
					return err
				}
			}
			scored.Add(w.scored)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stats, err
	}

	stats.Candidates = scored.Load()
	stats.Duration = time.Since(start)
	return ranked.MergeAll(parts...), stats, nil
}

// worker owns the scratch state of one enumeration goroutine.
// It is NOT thread-safe.
type worker struct {
	id     int
	fields []model.Field
	names  []string
	goal   float64
	full   uint32
	rank   *ranked.Collection[model.Candidate]
	scored uint64
}

// runChunk scores one chunk while holding a worker slot.
func (w *worker) runChunk(ctx context.Context, ctrl *resource.Controller, from, to uint32, report *progress.Reporter) error {
	if err := ctrl.AcquireWorker(ctx); err != nil {
		return err
	}
	defer ctrl.ReleaseWorker()
	w.scoreRange(from, to, report)
	return nil
}

// scoreRange scores every sign assignment of the selection masks in [from, to].
func (w *worker) scoreRange(from, to uint32, report *progress.Reporter) {
	for sel := from; ; sel++ {
		gen := permutation.NewMasked(sel)
		for sign, ok := gen.Next(); ok; sign, ok = gen.Next() {
			e, d := Score(w.fields, w.goal, sign, sel)
			w.rank.Insert(model.Candidate{
				Names:  w.names,
				Sign:   sign,
				Select: sel,
				Full:   w.full,
				Error:  e,
				Diff:   d,
			})
		}
		w.scored += gen.Len()
		report.Tick()
		if sel == to {
			return
		}
	}
}
