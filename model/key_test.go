package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyOf(t *testing.T) {
	full := FullMask(7)

	k := KeyOf(0b111, 0b100111, full)
	assert.Equal(t, Key{Positive: 0b111, Negative: 0b100000}, k)
	assert.Equal(t, uint32(0b100111), k.Selection())
}

func TestKeyOf_IgnoresBitsOutsideSelection(t *testing.T) {
	full := FullMask(10)
	for sel := uint32(1); sel <= full; sel += 7 {
		for sign := uint32(0); sign <= full; sign += 13 {
			want := KeyOf(sign&sel, sel, full)
			noise := ^sel & full
			assert.Equal(t, want, KeyOf(sign|noise, sel, full), "sel=%b sign=%b", sel, sign)
			assert.Equal(t, want, KeyOf(sign&^noise, sel, full), "sel=%b sign=%b", sel, sign)
		}
	}
}

func TestKeyOf_DistinguishesSigns(t *testing.T) {
	full := FullMask(3)
	a := KeyOf(0b001, 0b011, full)
	b := KeyOf(0b010, 0b011, full)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a.Selection(), b.Selection())
}

func TestKey_Compare(t *testing.T) {
	tests := []struct {
		a, b Key
		want int
	}{
		{Key{1, 0}, Key{1, 0}, 0},
		{Key{1, 0}, Key{2, 0}, -1},
		{Key{3, 0}, Key{2, 9}, 1},
		{Key{2, 1}, Key{2, 4}, -1},
		{Key{2, 4}, Key{2, 1}, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Compare(tt.b), "%v vs %v", tt.a, tt.b)
	}
}

func TestFullMask(t *testing.T) {
	assert.Equal(t, uint32(0), FullMask(0))
	assert.Equal(t, uint32(0b1111111), FullMask(7))
	assert.Equal(t, uint32(0x7FFFFFFF), FullMask(MaxFields))
}
