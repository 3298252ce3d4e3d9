package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/samugi/cal-cu-lator/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Amount returns a pseudo-random amount in [minVal, maxVal) rounded to cents.
func (r *RNG) Amount(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := minVal + r.rand.Float64()*(maxVal-minVal)
	return math.Round(v*100) / 100
}

// Fields generates n fields named F00, F01, ... with the given number of
// periods, each amount in [10, 5000).
func (r *RNG) Fields(n, periods int) []model.Field {
	fields := make([]model.Field, n)
	for i := range fields {
		values := make([]float64, periods)
		for j := range values {
			values[j] = r.Amount(10, 5000)
		}
		fields[i] = model.Field{Name: fmt.Sprintf("F%02d", i), Values: values}
	}
	return fields
}

// Reference is a sequential brute-force search used as ground truth.
//
// It walks every sign mask of the full field width and drops those with bits
// outside the selection, so it shares no enumeration code with the real
// search. Results are sorted by model.Compare and cut to k.
func Reference(fields []model.Field, goal float64, k int) []model.Candidate {
	n := len(fields)
	if n == 0 || k <= 0 {
		return nil
	}
	full := model.FullMask(n)
	names := make([]string, n)
	for i, f := range fields {
		names[i] = f.Name
	}

	var all []model.Candidate
	for sel := uint32(1); sel <= full; sel++ {
		for sign := uint32(0); sign <= full; sign++ {
			if sign&^sel != 0 {
				continue
			}
			total := 0.0
			for i, f := range fields {
				if (sel>>uint(i))&1 == 0 {
					continue
				}
				negative := (sign>>uint(i))&1 == 0
				for _, v := range f.Values {
					if negative {
						total += v * -1
					} else {
						total += v
					}
				}
			}
			e := total - goal
			all = append(all, model.Candidate{
				Names:  names,
				Sign:   sign,
				Select: sel,
				Full:   full,
				Error:  e,
				Diff:   math.Abs(e),
			})
		}
	}
	slices.SortFunc(all, model.Compare[model.Candidate])
	if len(all) > k {
		all = all[:k]
	}
	return all
}
