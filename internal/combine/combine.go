// Package combine aggregates per-dataset rankings into one cross-dataset ranking.
//
// Candidates are grouped by their canonical key. Each group is ranked by the
// mean of the diffs reported by the datasets that surfaced it in their own
// top-K. Datasets that did not surface a key contribute nothing to its mean.
package combine

import (
	"github.com/samugi/cal-cu-lator/internal/ranked"
	"github.com/samugi/cal-cu-lator/model"
)

// Combiner folds rankings one dataset at a time.
// It is NOT thread-safe.
type Combiner struct {
	entries  map[model.Key]*model.Combined
	datasets int
}

// New returns an empty Combiner.
func New() *Combiner {
	return &Combiner{entries: make(map[model.Key]*model.Combined)}
}

// Add folds the ranking of one dataset. Datasets are numbered in call order.
func (c *Combiner) Add(candidates []model.Candidate) {
	id := uint32(c.datasets)
	c.datasets++
	for _, cand := range candidates {
		key := cand.IdentityKey()
		entry, ok := c.entries[key]
		if !ok {
			entry = model.NewCombined(cand)
			c.entries[key] = entry
		}
		entry.Observe(id, cand.Diff)
	}
}

// Datasets returns how many rankings have been folded.
func (c *Combiner) Datasets() int { return c.datasets }

// Len returns the number of distinct keys seen so far.
func (c *Combiner) Len() int { return len(c.entries) }

// Finalize fixes every entry's mean and returns the best capacity entries.
func (c *Combiner) Finalize(capacity int) *ranked.Collection[model.Combined] {
	out := ranked.New[model.Combined](capacity)
	for _, entry := range c.entries {
		entry.Finalize()
		out.Insert(*entry)
	}
	return out
}

// Combine folds rankings in order and returns the best capacity aggregates.
func Combine(rankings [][]model.Candidate, capacity int) *ranked.Collection[model.Combined] {
	c := New()
	for _, r := range rankings {
		c.Add(r)
	}
	return c.Finalize(capacity)
}
