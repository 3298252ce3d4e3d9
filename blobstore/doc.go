// Package blobstore provides read access to dataset files wherever they live.
//
// Store is the interface for opening and listing blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem
//   - MemoryStore: In-memory, for tests
//   - s3.Store: Amazon S3, whole-object downloads via the s3 manager
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Open(ctx, name) (Blob, error)
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Stores that can download a whole object in one go may also implement
// Fetcher, which ReadAll prefers over ranged reads.
package blobstore
