package progress

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_Sequential(t *testing.T) {
	var got []uint32
	r := New(4, func(p uint32) { got = append(got, p) })
	for i := 0; i < 4; i++ {
		r.Tick()
	}
	assert.Equal(t, []uint32{25, 50, 75, 100}, got)
	assert.Equal(t, uint64(4), r.Done())
	assert.Equal(t, uint32(100), r.Percent())
}

func TestReporter_SkipsUnchangedPercent(t *testing.T) {
	var got []uint32
	r := New(1000, func(p uint32) { got = append(got, p) })
	for i := 0; i < 1000; i++ {
		r.Tick()
	}
	assert.Len(t, got, 100)
	assert.True(t, slices.IsSorted(got))
}

func TestReporter_CapsAtHundred(t *testing.T) {
	var got []uint32
	r := New(2, func(p uint32) { got = append(got, p) })
	r.Add(5)
	r.Tick()
	assert.Equal(t, []uint32{100}, got)
}

func TestReporter_Concurrent(t *testing.T) {
	var (
		mu  sync.Mutex
		got []uint32
	)
	r := New(10000, func(p uint32) {
		mu.Lock()
		got = append(got, p)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1250; i++ {
				r.Tick()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(10000), r.Done())

	// Best effort: a percentage may be skipped, never repeated.
	seen := make(map[uint32]bool)
	for _, p := range got {
		assert.False(t, seen[p], "percent %d reported twice", p)
		seen[p] = true
	}
}

func TestReporter_NilAndEmpty(t *testing.T) {
	var r *Reporter
	r.Tick()
	assert.Equal(t, uint64(0), r.Done())
	assert.Equal(t, uint32(0), r.Percent())

	called := false
	e := New(0, func(uint32) { called = true })
	e.Tick()
	assert.False(t, called)
}
