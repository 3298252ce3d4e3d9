package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	data := []byte("AAAAA,1.0,2.0\nBBBBB,3.5\n")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "q1.csv"), data, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "2024"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "2024", "q2.csv"), data, 0o644))

	blob, err := store.Open(ctx, "q1.csv")
	require.NoError(t, err)
	defer blob.Close()
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 5)
	n, err := blob.ReadAt(ctx, buf, 14)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "BBBBB", string(buf))

	// Reading past the end reports EOF.
	n, err = blob.ReadAt(ctx, make([]byte, 10), int64(len(data))-2)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, io.EOF)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024/q2.csv", "q1.csv"}, names)

	names, err = store.List(ctx, "2024/")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024/q2.csv"}, names)

	got, err := ReadAll(ctx, store, filepath.Join(tmpDir, "2024", "q2.csv"))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLocalStore_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	_, err := store.Open(ctx, "missing.csv")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "dir"), 0o755))
	_, err = store.Open(ctx, "dir")
	assert.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "x"), []byte("x"), 0o644))
	blob, err := store.Open(ctx, "x")
	require.NoError(t, err)
	defer blob.Close()
	_, err = blob.ReadAt(cancelled, make([]byte, 1), 0)
	assert.ErrorIs(t, err, context.Canceled)
}
