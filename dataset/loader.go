package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samugi/cal-cu-lator/blobstore"
	"github.com/samugi/cal-cu-lator/resource"
	"github.com/samugi/cal-cu-lator/model"
)

// Source is a parsed dataset location.
type Source struct {
	// Scheme is "file" for plain paths.
	Scheme string
	Bucket string
	Key    string
}

func (s Source) String() string {
	if s.Scheme == "file" {
		return s.Key
	}
	return s.Scheme + "://" + s.Bucket + "/" + s.Key
}

// ParseSource splits uri into scheme, bucket and key. Anything without a
// "scheme://" prefix is a local path.
func ParseSource(uri string) (Source, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		if uri == "" {
			return Source{}, errors.New("empty source")
		}
		return Source{Scheme: "file", Key: uri}, nil
	}
	if scheme == "file" {
		return Source{Scheme: "file", Key: rest}, nil
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return Source{}, fmt.Errorf("source %q: want %s://bucket/key", uri, scheme)
	}
	return Source{Scheme: scheme, Bucket: bucket, Key: key}, nil
}

// Resolver returns the store serving a bucket.
type Resolver func(ctx context.Context, bucket string) (blobstore.Store, error)

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithResolver serves sources of scheme through r.
func WithResolver(scheme string, r Resolver) LoaderOption {
	return func(l *Loader) {
		l.resolvers[scheme] = r
	}
}

// WithController throttles reads through the controller's IO limit.
func WithController(c *resource.Controller) LoaderOption {
	return func(l *Loader) {
		l.ctrl = c
	}
}

// Loader reads and parses datasets from any configured store.
// It is safe for concurrent use.
type Loader struct {
	resolvers map[string]Resolver
	ctrl      *resource.Controller

	mu     sync.Mutex
	stores map[string]blobstore.Store
}

// NewLoader creates a Loader that reads local paths. Register object stores
// with WithResolver.
func NewLoader(opts ...LoaderOption) *Loader {
	local := blobstore.NewLocalStore("")
	l := &Loader{
		resolvers: map[string]Resolver{
			"file": func(context.Context, string) (blobstore.Store, error) { return local, nil },
		},
		stores: make(map[string]blobstore.Store),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) store(ctx context.Context, src Source) (blobstore.Store, error) {
	id := src.Scheme + "://" + src.Bucket

	l.mu.Lock()
	defer l.mu.Unlock()
	if s, ok := l.stores[id]; ok {
		return s, nil
	}
	r, ok := l.resolvers[src.Scheme]
	if !ok {
		return nil, fmt.Errorf("source %s: unsupported scheme %q", src, src.Scheme)
	}
	s, err := r(ctx, src.Bucket)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", src, err)
	}
	l.stores[id] = s
	return s, nil
}

// Load reads, decompresses and parses the dataset at uri.
func (l *Loader) Load(ctx context.Context, uri string) (model.Dataset, error) {
	src, err := ParseSource(uri)
	if err != nil {
		return model.Dataset{}, err
	}
	s, err := l.store(ctx, src)
	if err != nil {
		return model.Dataset{}, err
	}

	data, err := blobstore.ReadAll(ctx, s, src.Key)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("read %s: %w", src, err)
	}
	if err := l.ctrl.AcquireIO(ctx, len(data)); err != nil {
		return model.Dataset{}, err
	}

	data, err = Decompress(data, DetectCompression(src.Key, data))
	if err != nil {
		return model.Dataset{}, fmt.Errorf("read %s: %w", src, err)
	}
	return Parse(uri, bytes.NewReader(data))
}
