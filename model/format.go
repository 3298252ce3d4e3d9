package model

import (
	"strconv"
	"strings"
)

// Term describes how one field takes part in a combination.
type Term struct {
	Name     string
	Included bool
	Positive bool
}

func (t Term) String() string {
	switch {
	case !t.Included:
		return "  " + t.Name + " (excluded)"
	case t.Positive:
		return "+ " + t.Name
	default:
		return "- " + t.Name
	}
}

// Breakdown lists every field of p in dataset order with its role.
func Breakdown(p Permutation) []Term {
	names := p.FieldNames()
	sign, sel := p.SignMask(), p.SelectMask()
	terms := make([]Term, len(names))
	for i, name := range names {
		terms[i] = Term{
			Name:     name,
			Included: sel>>uint(i)&1 == 1,
			Positive: sign>>uint(i)&1 == 1,
		}
	}
	return terms
}

// Formula renders the selected fields as " + A - B ...".
func Formula(p Permutation) string {
	var b strings.Builder
	for _, t := range Breakdown(p) {
		if !t.Included {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(t.String())
	}
	return b.String()
}

// Bits renders mask in binary, least significant bit first, so that the
// digits line up with fields in dataset order.
func Bits(mask uint32) string {
	s := []byte(strconv.FormatUint(uint64(mask), 2))
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return string(s)
}

// Describe renders p as a two line human readable block.
func Describe(p Permutation) string {
	var b strings.Builder
	b.WriteString("permutation_sign: ")
	b.WriteString(Bits(p.SignMask()))
	b.WriteString(", permutation_select: ")
	b.WriteString(Bits(p.SelectMask()))
	b.WriteString(", error: ")
	b.WriteString(strconv.FormatFloat(p.Deviation(), 'f', -1, 64))
	b.WriteString("\n        pretty formula:")
	b.WriteString(Formula(p))
	b.WriteByte('\n')
	return b.String()
}
