// Package blobstore abstracts the location of run sources.
//
// A BlobStore lists source names and opens them as read-only Blobs. The
// merge treats the lexically sorted listing as its source order, so the
// position of a name in List is the run index used for tie-breaking.
//
// # Built-in Implementations
//
//   - LocalStore: a directory of regular files, memory-mapped on open
//   - MemoryStore: in-memory sources for tests and embedding
//   - ThrottledStore: wraps any store with a bytes-per-second read limit
//   - s3.Store: Amazon S3 with ranged and parallel downloads
//   - minio.Store: MinIO and other S3-compatible object stores
package blobstore
