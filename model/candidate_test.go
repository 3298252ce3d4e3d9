package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidate_OrderingAndIdentity(t *testing.T) {
	full := FullMask(3)
	a := Candidate{Sign: 0b001, Select: 0b011, Full: full, Diff: 1.5}
	b := Candidate{Sign: 0b010, Select: 0b011, Full: full, Diff: 1.5}
	c := Candidate{Sign: 0b111, Select: 0b001, Full: full, Diff: 0.5}

	// Equal under ordering, distinct under identity.
	assert.Equal(t, a.OrderingKey(), b.OrderingKey())
	assert.NotEqual(t, a.IdentityKey(), b.IdentityKey())

	assert.True(t, Better(c, a))
	assert.False(t, Better(a, c))

	// Ties on diff fall back to the key.
	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, a))
}

func TestCandidate_SameKeyDifferentEncoding(t *testing.T) {
	full := FullMask(4)
	a := Candidate{Sign: 0b0001, Select: 0b0011, Full: full}
	b := Candidate{Sign: 0b1101, Select: 0b0011, Full: full}
	assert.Equal(t, a.IdentityKey(), b.IdentityKey())
}

func TestCombined(t *testing.T) {
	first := Candidate{Names: []string{"A", "B"}, Sign: 0b01, Select: 0b11, Full: 0b11, Diff: 2}
	c := NewCombined(first)
	c.Observe(0, 2)
	c.Observe(3, 5)
	c.Finalize()

	assert.Equal(t, first.IdentityKey(), c.IdentityKey())
	assert.InDelta(t, 3.5, c.OrderingKey(), 1e-12)
	assert.InDelta(t, 3.5, c.Deviation(), 1e-12)
	assert.Equal(t, 2, c.Seen())
	assert.Equal(t, []uint32{0, 3}, c.Datasets.ToArray())

	c.Observe(1, 8)
	assert.InDelta(t, 5.0, c.Mean(), 1e-12, "mean follows new observations before finalize")
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestDataset_Names(t *testing.T) {
	d := Dataset{Fields: []Field{{Name: "A"}, {Name: "B", Values: []float64{1, 2.5}}}}
	require.Equal(t, []string{"A", "B"}, d.Names())
	assert.Equal(t, 3.5, d.Fields[1].Total())
}
