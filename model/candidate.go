package model

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Ranked is implemented by every item stored in a ranked collection.
//
// OrderingKey decides placement (smaller is better). IdentityKey names the
// combination and is only consulted to break exact OrderingKey ties.
type Ranked interface {
	OrderingKey() float64
	IdentityKey() Key
}

// Permutation is the display and identity capability shared by per-dataset
// candidates and cross-dataset aggregates.
type Permutation interface {
	Ranked
	SignMask() uint32
	SelectMask() uint32
	FullMask() uint32
	FieldNames() []string
	// Deviation is the value printed as "error": the signed error for a
	// single candidate, the mean diff for a combined one.
	Deviation() float64
}

// Compare orders two ranked items by OrderingKey, then by IdentityKey.
func Compare[T Ranked](a, b T) int {
	da, db := a.OrderingKey(), b.OrderingKey()
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	}
	return a.IdentityKey().Compare(b.IdentityKey())
}

// Better reports whether a ranks strictly ahead of b.
func Better[T Ranked](a, b T) bool {
	return Compare(a, b) < 0
}

// Candidate is a scored (sign, select) combination from one dataset search.
type Candidate struct {
	Names  []string `json:"-"`
	Sign   uint32   `json:"sign"`
	Select uint32   `json:"select"`
	Full   uint32   `json:"full"`
	Error  float64  `json:"error"` // total - goal
	Diff   float64  `json:"diff"`  // |Error|
}

func (c Candidate) OrderingKey() float64 { return c.Diff }
func (c Candidate) IdentityKey() Key     { return KeyOf(c.Sign, c.Select, c.Full) }
func (c Candidate) SignMask() uint32     { return c.Sign }
func (c Candidate) SelectMask() uint32   { return c.Select }
func (c Candidate) FullMask() uint32     { return c.Full }
func (c Candidate) FieldNames() []string { return c.Names }
func (c Candidate) Deviation() float64   { return c.Error }

func (c Candidate) String() string { return Describe(c) }

// Combined aggregates the diffs observed for one Key across datasets.
// It is created on first sighting, updated by Observe, and ranked by the
// mean of its diffs once Finalize has been called.
type Combined struct {
	Names  []string
	Sign   uint32
	Select uint32
	Full   uint32
	Key    Key
	Diffs  []float64
	// Datasets holds the indices of the datasets that surfaced this key.
	Datasets *roaring.Bitmap

	mean  float64
	final bool
}

// NewCombined starts an aggregate from the first candidate seen for its key.
func NewCombined(c Candidate) *Combined {
	return &Combined{
		Names:    c.Names,
		Sign:     c.Sign,
		Select:   c.Select,
		Full:     c.Full,
		Key:      c.IdentityKey(),
		Datasets: roaring.New(),
	}
}

// Observe records the diff a dataset reported for this key.
func (c *Combined) Observe(dataset uint32, diff float64) {
	c.Diffs = append(c.Diffs, diff)
	c.Datasets.Add(dataset)
	c.final = false
}

// Finalize fixes the ordering key to the mean of the collected diffs.
func (c *Combined) Finalize() {
	c.mean = Mean(c.Diffs)
	c.final = true
}

// Mean returns the arithmetic mean of the collected diffs.
func (c Combined) Mean() float64 {
	if c.final {
		return c.mean
	}
	return Mean(c.Diffs)
}

// Seen returns how many datasets surfaced this key.
func (c Combined) Seen() int {
	if c.Datasets == nil {
		return 0
	}
	return int(c.Datasets.GetCardinality())
}

func (c Combined) OrderingKey() float64 { return c.Mean() }
func (c Combined) IdentityKey() Key     { return c.Key }
func (c Combined) SignMask() uint32     { return c.Sign }
func (c Combined) SelectMask() uint32   { return c.Select }
func (c Combined) FullMask() uint32     { return c.Full }
func (c Combined) FieldNames() []string { return c.Names }
func (c Combined) Deviation() float64   { return c.Mean() }

func (c Combined) String() string { return Describe(c) }

// Mean returns the arithmetic mean of vs, or 0 when vs is empty.
func Mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
