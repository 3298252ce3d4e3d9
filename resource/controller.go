package resource

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of concurrently scoring workers
	// across all searches. If 0, defaults to GOMAXPROCS.
	MaxWorkers int64

	// IOLimitBytesPerSec is the maximum read throughput for dataset loading.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages shared worker slots and IO throughput.
type Controller struct {
	cfg Config

	// Concurrency
	workerSem *semaphore.Weighted
	busy      atomic.Int64

	// IO
	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = int64(runtime.GOMAXPROCS(0))
	}

	c := &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// MaxWorkers returns the configured worker limit (0 if unlimited).
func (c *Controller) MaxWorkers() int {
	if c == nil {
		return 0
	}
	return int(c.cfg.MaxWorkers)
}

// Busy returns the number of worker slots currently held.
func (c *Controller) Busy() int64 {
	if c == nil {
		return 0
	}
	return c.busy.Load()
}

// AcquireWorker reserves a worker slot.
// Blocks if all slots are busy.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.workerSem.Acquire(ctx, 1); err != nil {
		return err
	}
	c.busy.Add(1)
	return nil
}

// TryAcquireWorker attempts to reserve a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	if !c.workerSem.TryAcquire(1) {
		return false
	}
	c.busy.Add(1)
	return true
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.busy.Add(-1)
	c.workerSem.Release(1)
}

// AcquireIO waits until the IO limit allows the specified number of bytes.
// Requests larger than the burst are split.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}
	burst := c.ioLimiter.Burst()
	for bytes > 0 {
		n := min(bytes, burst)
		if err := c.ioLimiter.WaitN(ctx, n); err != nil {
			return err
		}
		bytes -= n
	}
	return nil
}

// TryAcquireIO attempts to acquire IO tokens without blocking.
// Returns true if tokens were acquired, false otherwise.
func (c *Controller) TryAcquireIO(bytes int) bool {
	if c == nil || c.ioLimiter == nil {
		return true
	}
	return c.ioLimiter.AllowN(time.Now(), bytes)
}
