package permutation

import (
	"iter"
	"math/bits"
)

// Masked lazily produces every sign mask restricted to a selection mask.
//
// The k-th value produced carries the low-order bits of k on the set bits of
// mask, least significant first, so the sequence is a bijection from
// [0, 2^p) onto the sign assignments of the p selected bits.
// A Masked is restarted by constructing a new one. The zero value is an
// exhausted generator.
type Masked struct {
	mask    uint32
	cur     uint32
	emitted uint64
	limit   uint64
}

// NewMasked returns a generator over the sign masks of mask.
func NewMasked(mask uint32) Masked {
	return Masked{
		mask:  mask,
		limit: uint64(1) << uint(bits.OnesCount32(mask)),
	}
}

// Len returns the total number of values the generator produces.
func (m *Masked) Len() uint64 { return m.limit }

// Next returns the next sign mask, or false once all 2^p values were produced.
func (m *Masked) Next() (uint32, bool) {
	if m.emitted >= m.limit {
		return 0, false
	}
	v := m.cur
	// Next submask of m.mask in increasing order; wraps to 0 after the last.
	m.cur = (m.cur - m.mask) & m.mask
	m.emitted++
	return v, true
}

// Signs returns the sign masks of mask as an iterator.
func Signs(mask uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		g := NewMasked(mask)
		for {
			v, ok := g.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
