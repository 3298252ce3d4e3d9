package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samugi/cal-cu-lator/resource"
	"github.com/samugi/cal-cu-lator/model"
	"github.com/samugi/cal-cu-lator/testutil"
)

func TestRun_PayslipSmall(t *testing.T) {
	fields := testutil.PayslipSmall()
	res, stats, err := Run(context.Background(), fields, testutil.PayslipSmallGoal, 10, Config{})
	require.NoError(t, err)

	items := res.Items()
	require.Len(t, items, len(testutil.PayslipSmallTop10))
	for i, want := range testutil.PayslipSmallTop10 {
		got := items[i]
		assert.Equal(t, want.Select, got.Select, "rank %d select", i)
		assert.Equal(t, want.Sign, got.Sign, "rank %d sign", i)
		assert.Equal(t, want.Diff, got.Diff, "rank %d diff", i)
		assert.Equal(t, math.Abs(got.Error), got.Diff)
		assert.Equal(t, uint32(0b1111111), got.Full)
	}

	top := items[0]
	assert.Equal(t, -32.14999999999782, top.Error)
	assert.Equal(t, model.Key{Positive: 50, Negative: 64}, top.IdentityKey())
	assert.Equal(t, " + BBBBB + EEEEE + FFFFF - ADDED", model.Formula(top))

	assert.Equal(t, 7, stats.Fields)
	assert.Equal(t, uint32(127), stats.FullMask)
	assert.Equal(t, uint64(127), stats.Masks)
	assert.Equal(t, uint64(2186), stats.Candidates) // 3^7 - 1
}

func TestRun_PayslipQuarter(t *testing.T) {
	fields := testutil.PayslipQuarter()
	for _, workers := range []int{1, 2, 4, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			res, stats, err := Run(context.Background(), fields, testutil.PayslipQuarterGoal, 10, Config{Workers: workers})
			require.NoError(t, err)

			items := res.Items()
			require.Len(t, items, len(testutil.PayslipQuarterTop10))
			for i, want := range testutil.PayslipQuarterTop10 {
				assert.Equal(t, want.Select, items[i].Select, "rank %d select", i)
				assert.Equal(t, want.Sign, items[i].Sign, "rank %d sign", i)
				assert.Equal(t, want.Diff, items[i].Diff, "rank %d diff", i)
			}

			first, second := items[0], items[1]
			assert.Equal(t, uint32(0b100111), first.Select)
			assert.Equal(t, uint32(0b111), first.Sign)
			assert.Equal(t, 23.399999999979627, first.Diff)
			assert.Equal(t, 23.399999999979627, first.Error)
			assert.Equal(t, model.Key{Positive: 0b111, Negative: 0b100000}, first.IdentityKey())
			assert.Equal(t, " + BASIC + BONUS + SHIFT - UNION", model.Formula(first))

			assert.Equal(t, uint32(0b1111111), second.Select)
			assert.Equal(t, uint32(0b1100111), second.Sign)
			assert.Equal(t, 25.62999999998283, second.Diff)
			assert.Equal(t, model.Key{Positive: 0b1100111, Negative: 0b11000}, second.IdentityKey())

			assert.Equal(t, uint64(2186), stats.Candidates)
		})
	}
}

func TestRun_PayslipLarge(t *testing.T) {
	fields := testutil.PayslipLarge()
	res, stats, err := Run(context.Background(), fields, testutil.PayslipLargeGoal, 3, Config{Workers: 4})
	require.NoError(t, err)

	items := res.Items()
	require.Len(t, items, 3)
	for i, want := range testutil.PayslipLargeTop3 {
		assert.Equal(t, want.Select, items[i].Select, "rank %d select", i)
		assert.Equal(t, want.Sign, items[i].Sign, "rank %d sign", i)
		assert.Equal(t, want.Diff, items[i].Diff, "rank %d diff", i)
	}
	assert.Equal(t, uint64(59048), stats.Candidates) // 3^10 - 1
	assert.Equal(t, uint64(1023), stats.Masks)
}

func TestRun_MatchesReference(t *testing.T) {
	rng := testutil.NewRNG(42)
	for _, n := range []int{1, 2, 5, 8} {
		fields := rng.Fields(n, 3)
		goal := rng.Amount(0, 8000)
		want := testutil.Reference(fields, goal, 7)

		for _, workers := range []int{1, 3, 8} {
			for _, chunk := range []uint64{0, 1, 5} {
				name := fmt.Sprintf("n=%d/workers=%d/chunk=%d", n, workers, chunk)
				t.Run(name, func(t *testing.T) {
					res, _, err := Run(context.Background(), fields, goal, 7, Config{Workers: workers, ChunkSize: chunk})
					require.NoError(t, err)
					assert.Equal(t, want, res.Items())
				})
			}
		}
	}
}

func TestRun_RankLargerThanSpace(t *testing.T) {
	fields := []model.Field{
		{Name: "A", Values: []float64{10}},
		{Name: "B", Values: []float64{3}},
	}
	res, stats, err := Run(context.Background(), fields, 7, 100, Config{Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, 8, res.Len())
	assert.Equal(t, uint64(8), stats.Candidates)
	assert.Equal(t, 0.0, res.Items()[0].Diff)
}

func TestRun_NoFields(t *testing.T) {
	res, stats, err := Run(context.Background(), nil, 100, 5, Config{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
	assert.Equal(t, uint64(0), stats.Candidates)
}

func TestRun_TooManyFields(t *testing.T) {
	fields := make([]model.Field, model.MaxFields+1)
	_, _, err := Run(context.Background(), fields, 0, 1, Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyFields)
	assert.Contains(t, err.Error(), "32 fields")

	assert.NoError(t, Validate(make([]model.Field, model.MaxFields)))
}

func TestRun_ZeroCapacity(t *testing.T) {
	res, stats, err := Run(context.Background(), testutil.PayslipSmall(), 1, 0, Config{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
	assert.Equal(t, uint64(2186), stats.Candidates)
}

func TestRun_WorkerPanic(t *testing.T) {
	cfg := Config{
		Workers:   4,
		ChunkSize: 4,
		testHookChunk: func(_ int, start uint64) {
			if start == 8 {
				panic("boom")
			}
		},
	}
	res, _, err := Run(context.Background(), testutil.PayslipSmall(), 1, 5, cfg)
	require.Error(t, err)
	assert.Nil(t, res)

	var pe *PanicError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "boom", pe.Value)
	assert.NotEmpty(t, pe.Stack)
	assert.Contains(t, err.Error(), "panicked: boom")
}

func TestRun_PanicReleasesWorkerSlot(t *testing.T) {
	ctrl := resource.NewController(resource.Config{MaxWorkers: 2})
	cfg := Config{
		Workers:    2,
		ChunkSize:  1,
		Controller: ctrl,
		testHookChunk: func(_ int, start uint64) {
			if start == 3 {
				panic("boom")
			}
		},
	}
	_, _, err := Run(context.Background(), testutil.PayslipSmall(), 1, 5, cfg)
	require.Error(t, err)
	assert.Equal(t, int64(0), ctrl.Busy())
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, _, err := Run(ctx, testutil.PayslipSmall(), 1, 5, Config{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestRun_CancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var once sync.Once
	cfg := Config{
		Workers:   2,
		ChunkSize: 1,
		testHookChunk: func(_ int, start uint64) {
			if start >= 10 {
				once.Do(cancel)
			}
		},
	}
	_, _, err := Run(ctx, testutil.PayslipLarge(), 1, 5, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Controller(t *testing.T) {
	fields := testutil.PayslipSmall()
	want := testutil.Reference(fields, testutil.PayslipSmallGoal, 10)

	ctrl := resource.NewController(resource.Config{MaxWorkers: 1})
	res, stats, err := Run(context.Background(), fields, testutil.PayslipSmallGoal, 10, Config{Workers: 4, Controller: ctrl})
	require.NoError(t, err)
	assert.Equal(t, want, res.Items())
	assert.Equal(t, 4, stats.Workers)
	assert.Equal(t, int64(0), ctrl.Busy())
}

func TestRun_ControllerExhausted(t *testing.T) {
	ctrl := resource.NewController(resource.Config{MaxWorkers: 1})
	require.True(t, ctrl.TryAcquireWorker())
	defer ctrl.ReleaseWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := Run(ctx, testutil.PayslipSmall(), 1, 5, Config{Workers: 2, Controller: ctrl})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun_Progress(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []uint32
	)
	sink := func(p uint32) {
		mu.Lock()
		seen = append(seen, p)
		mu.Unlock()
	}
	_, _, err := Run(context.Background(), testutil.PayslipLarge(), 1, 1, Config{Workers: 1, Progress: sink})
	require.NoError(t, err)

	require.NotEmpty(t, seen)
	assert.Equal(t, uint32(100), seen[len(seen)-1])
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i], seen[i-1])
	}
}

func TestRun_WorkersCappedByMasks(t *testing.T) {
	fields := []model.Field{{Name: "A", Values: []float64{1}}}
	_, stats, err := Run(context.Background(), fields, 1, 1, Config{Workers: 16})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Workers)
}
