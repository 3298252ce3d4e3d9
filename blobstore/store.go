package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading immutable dataset blobs.
// Implementations must be safe for concurrent use.
type Store interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Fetcher is an optional interface for stores that download a whole blob
// more efficiently than through ranged reads.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// ReadAll returns the full contents of the named blob.
func ReadAll(ctx context.Context, s Store, name string) ([]byte, error) {
	if f, ok := s.(Fetcher); ok {
		return f.Fetch(ctx, name)
	}

	b, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = b.Close() }()

	size := b.Size()
	if size < 0 {
		return nil, fmt.Errorf("blob %q: invalid size %d", name, size)
	}
	buf := make([]byte, size)
	if size == 0 {
		return buf, nil
	}
	n, err := b.ReadAt(ctx, buf, 0)
	if err != nil && !(errors.Is(err, io.EOF) && int64(n) == size) {
		return nil, err
	}
	if int64(n) != size {
		return nil, fmt.Errorf("blob %q: short read: %d of %d bytes", name, n, size)
	}
	return buf, nil
}
