package resource

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Workers(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})
	assert.Equal(t, 2, c.MaxWorkers())

	require.NoError(t, c.AcquireWorker(t.Context()))
	require.NoError(t, c.AcquireWorker(t.Context()))
	assert.Equal(t, int64(2), c.Busy())

	// Third slot is not available.
	assert.False(t, c.TryAcquireWorker())

	c.ReleaseWorker()
	assert.Equal(t, int64(1), c.Busy())
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
	c.ReleaseWorker()
	assert.Equal(t, int64(0), c.Busy())
}

func TestController_AcquireWorkerHonorsContext(t *testing.T) {
	c := NewController(Config{MaxWorkers: 1})
	require.NoError(t, c.AcquireWorker(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	err := c.AcquireWorker(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int64(1), c.Busy())
}

func TestController_DefaultWorkers(t *testing.T) {
	c := NewController(Config{})
	assert.Equal(t, runtime.GOMAXPROCS(0), c.MaxWorkers())
}

func TestController_IO(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 100})

	// Burst is available immediately.
	assert.True(t, c.TryAcquireIO(100))
	assert.False(t, c.TryAcquireIO(100))

	unlimited := NewController(Config{})
	assert.True(t, unlimited.TryAcquireIO(1<<30))
	require.NoError(t, unlimited.AcquireIO(t.Context(), 1<<30))
}

func TestController_AcquireIOSplitsLargeRequests(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})
	// Larger than the burst, but only by a little, so this finishes quickly.
	require.NoError(t, c.AcquireIO(t.Context(), (1<<20)+1024))
}

func TestController_Nil(t *testing.T) {
	var c *Controller
	require.NoError(t, c.AcquireWorker(t.Context()))
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
	require.NoError(t, c.AcquireIO(t.Context(), 10))
	assert.True(t, c.TryAcquireIO(10))
	assert.Equal(t, 0, c.MaxWorkers())
	assert.Equal(t, int64(0), c.Busy())
}
