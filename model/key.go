package model

import "fmt"

// Key is the canonical identity of a signed combination.
// Positive holds the selected fields added to the total, Negative the
// selected fields subtracted from it. Bits outside the selection are
// always zero, so two encodings of the same combination share a Key.
type Key struct {
	Positive uint32
	Negative uint32
}

// KeyOf maps a (sign, select, full) triple to its canonical Key.
func KeyOf(sign, sel, full uint32) Key {
	return Key{
		Positive: sign & sel,
		Negative: (^sign & full) & sel,
	}
}

// Selection returns the selection mask the key was derived from.
func (k Key) Selection() uint32 { return k.Positive | k.Negative }

// Compare orders keys by positive bits, then negative bits.
// It returns -1, 0 or +1.
func (k Key) Compare(o Key) int {
	switch {
	case k.Positive < o.Positive:
		return -1
	case k.Positive > o.Positive:
		return 1
	case k.Negative < o.Negative:
		return -1
	case k.Negative > o.Negative:
		return 1
	}
	return 0
}

func (k Key) String() string {
	return fmt.Sprintf("+%b/-%b", k.Positive, k.Negative)
}
