package ranked

import (
	"slices"

	"github.com/samugi/cal-cu-lator/model"
)

// Collection is a capacity-bounded slice of items kept sorted best first.
//
// Placement uses the ordering relation of model.Compare only; items are never
// deduplicated by identity. A Collection is NOT thread-safe. It is intended to
// be owned by a single goroutine until it is merged.
type Collection[T model.Ranked] struct {
	items    []T
	capacity int
}

// New returns an empty collection that retains at most capacity items.
// A capacity <= 0 yields a collection that is always empty.
func New[T model.Ranked](capacity int) *Collection[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Collection[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Len returns the number of retained items.
func (c *Collection[T]) Len() int { return len(c.items) }

// Cap returns the configured capacity.
func (c *Collection[T]) Cap() int { return c.capacity }

// Full reports whether the collection holds capacity items.
func (c *Collection[T]) Full() bool { return len(c.items) >= c.capacity }

// Items returns the retained items, best first.
// The slice is owned by the collection and must not be modified.
func (c *Collection[T]) Items() []T { return c.items }

// Worst returns the last retained item.
func (c *Collection[T]) Worst() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[len(c.items)-1], true
}

// Admits reports whether Insert would retain item. It costs at most one
// comparison and lets callers skip building candidates that cannot rank.
func (c *Collection[T]) Admits(item T) bool {
	if c.capacity == 0 {
		return false
	}
	n := len(c.items)
	return n < c.capacity || model.Better(item, c.items[n-1])
}

// Insert adds item at its sorted position, evicting the worst item if the
// collection is over capacity. It reports whether item was retained.
// When the collection is full and item is not strictly better than the
// worst retained item the call is a no-op.
func (c *Collection[T]) Insert(item T) bool {
	if !c.Admits(item) {
		return false
	}
	pos, _ := slices.BinarySearchFunc(c.items, item, model.Compare[T])
	n := len(c.items)
	if n < c.capacity {
		c.items = slices.Insert(c.items, pos, item)
		return true
	}
	// Full: shift the tail right by one, dropping the worst in place.
	copy(c.items[pos+1:], c.items[pos:n-1])
	c.items[pos] = item
	return true
}

// Reset clears the collection for reuse, keeping its capacity.
func (c *Collection[T]) Reset() {
	clear(c.items)
	c.items = c.items[:0]
}

// Merge returns a fresh collection holding the best items of a and b.
// Its capacity is the larger of the two capacities. Neither input is modified.
func Merge[T model.Ranked](a, b *Collection[T]) *Collection[T] {
	out := New[T](max(a.capacity, b.capacity))
	for _, it := range a.items {
		out.Insert(it)
	}
	for _, it := range b.items {
		out.Insert(it)
	}
	return out
}

// MergeAll reduces collections pairwise, level by level, into one.
// It returns an empty zero-capacity collection when cs is empty.
func MergeAll[T model.Ranked](cs ...*Collection[T]) *Collection[T] {
	if len(cs) == 0 {
		return New[T](0)
	}
	level := slices.Clone(cs)
	for len(level) > 1 {
		next := level[:0:0]
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			next = append(next, Merge(level[i], level[i+1]))
		}
		level = next
	}
	return level[0]
}
