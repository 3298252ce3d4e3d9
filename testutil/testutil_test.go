package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samugi/cal-cu-lator/model"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(5).Fields(4, 3)
	b := NewRNG(5).Fields(4, 3)
	assert.Equal(t, a, b)

	r := NewRNG(5)
	first := r.Amount(0, 1)
	r.Reset()
	assert.Equal(t, first, r.Amount(0, 1))
	assert.Equal(t, int64(5), r.Seed())
}

func TestReference_Tiny(t *testing.T) {
	fields := []model.Field{
		{Name: "A", Values: []float64{10}},
		{Name: "B", Values: []float64{3}},
	}
	// Combinations: +A 10, -A -10, +B 3, -B -3, +A+B 13, +A-B 7, -A+B -7, -A-B -13.
	got := Reference(fields, 7, 3)
	require.Len(t, got, 3)

	assert.Equal(t, uint32(0b11), got[0].Select)
	assert.Equal(t, uint32(0b01), got[0].Sign)
	assert.Equal(t, 0.0, got[0].Diff)

	assert.Equal(t, 3.0, got[1].Diff) // +A
	assert.Equal(t, 4.0, got[2].Diff) // +B

	assert.Nil(t, Reference(nil, 1, 3))
}

func TestFixtures_Shape(t *testing.T) {
	assert.Len(t, PayslipSmall(), 7)
	assert.Len(t, PayslipSmallQ2(), 7)
	assert.Len(t, PayslipLarge(), 10)
	assert.Len(t, PayslipQuarter(), 7)
}
