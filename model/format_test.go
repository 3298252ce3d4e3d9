package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	assert.Equal(t, "0", Bits(0))
	assert.Equal(t, "1", Bits(1))
	assert.Equal(t, "011", Bits(0b110))
	assert.Equal(t, "111001", Bits(0b100111))
}

func TestFormula(t *testing.T) {
	c := Candidate{
		Names:  []string{"AAAAA", "BBBBB", "CCCCC", "DDDDD"},
		Sign:   0b0101,
		Select: 0b1101,
		Full:   0b1111,
	}
	assert.Equal(t, " + AAAAA + CCCCC - DDDDD", Formula(c))

	terms := Breakdown(c)
	assert.Len(t, terms, 4)
	assert.Equal(t, "  BBBBB (excluded)", terms[1].String())
	assert.Equal(t, "- DDDDD", terms[3].String())
}

func TestDescribe(t *testing.T) {
	c := Candidate{
		Names:  []string{"A", "B", "C"},
		Sign:   0b001,
		Select: 0b011,
		Full:   0b111,
		Error:  -0.0000000000004547473508864641,
	}
	want := "permutation_sign: 1, permutation_select: 11, error: -0.0000000000004547473508864641\n" +
		"        pretty formula: + A - B\n"
	assert.Equal(t, want, Describe(c))
	assert.Equal(t, want, c.String())
}
