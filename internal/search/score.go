package search

import (
	"math"
	"math/bits"

	"github.com/samugi/cal-cu-lator/model"
)

// Total returns the signed sum of every value of every selected field.
// A selected field contributes positively when its sign bit is set.
// Values are accumulated in field order, then period order.
func Total(fields []model.Field, sign, sel uint32) float64 {
	var total float64
	for m := sel; m != 0; m &= m - 1 {
		i := bits.TrailingZeros32(m)
		if i >= len(fields) {
			break
		}
		values := fields[i].Values
		if sign&(1<<uint(i)) != 0 {
			for _, v := range values {
				total += v
			}
		} else {
			for _, v := range values {
				total += -v
			}
		}
	}
	return total
}

// Score returns the signed error (total - goal) of a combination and its
// absolute value.
func Score(fields []model.Field, goal float64, sign, sel uint32) (float64, float64) {
	err := Total(fields, sign, sel) - goal
	return err, math.Abs(err)
}
