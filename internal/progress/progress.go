// Package progress reports monotonic completion percentages from concurrent workers.
package progress

import "sync/atomic"

// Sink receives each new percentage. It may be called from any worker
// goroutine, at most once per percentage value.
type Sink func(percent uint32)

// Reporter counts completed units of work against a fixed total.
// It is safe for concurrent use. A nil *Reporter ignores all calls.
type Reporter struct {
	total   uint64
	current atomic.Uint64
	last    atomic.Uint32
	sink    Sink
}

// New creates a Reporter for total units. sink may be nil.
func New(total uint64, sink Sink) *Reporter {
	return &Reporter{total: total, sink: sink}
}

// Tick records one completed unit.
func (r *Reporter) Tick() { r.Add(1) }

// Add records n completed units and emits the new percentage if it advanced.
func (r *Reporter) Add(n uint64) {
	if r == nil || r.total == 0 || n == 0 {
		return
	}
	done := r.current.Add(n)
	percent := uint32(min(done*100/r.total, 100))
	last := r.last.Load()
	// Only the worker that wins the swap reports; losers were overtaken.
	if percent > last && r.last.CompareAndSwap(last, percent) && r.sink != nil {
		r.sink(percent)
	}
}

// Done returns the number of completed units.
func (r *Reporter) Done() uint64 {
	if r == nil {
		return 0
	}
	return r.current.Load()
}

// Percent returns the last reported percentage.
func (r *Reporter) Percent() uint32 {
	if r == nil {
		return 0
	}
	return r.last.Load()
}
