// Package blobstore provides storage abstraction for input and analysis documents.
//
// Store is the interface for reading and writing whole documents.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with atomic writes
//   - MemoryStore: In-memory, for tests
//   - s3.Store: Amazon S3 with multipart uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Get(ctx, name) ([]byte, error)
//	    Put(ctx, name, data) error         // Atomic write
//	    List(ctx, prefix) ([]string, error)
//	    Delete(ctx, name) error
//	}
//
// Missing blobs are reported with an error matching ErrNotFound.
package blobstore
