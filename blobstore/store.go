package blobstore

import (
	"context"
	"io"
	"os"
	"strings"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore enumerates and opens run sources.
type BlobStore interface {
	// List returns the names of all sources with the given prefix, sorted
	// lexically. The position of a name in the result is its source index.
	List(ctx context.Context, prefix string) ([]string, error)
	// Open opens a source for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a source.
type Blob interface {
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
	// ReadAt reads len(p) bytes starting at off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// ReadRange returns a reader over [off, off+length), clamped to Size.
	// An offset past the end returns io.EOF.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
}

// Mappable is an optional interface for Blobs that expose their bytes directly.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// ReadAll returns the full contents of b.
func ReadAll(ctx context.Context, b Blob) ([]byte, error) {
	if m, ok := b.(Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	}
	r, err := b.ReadRange(ctx, 0, b.Size())
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func clampRange(size, off, length int64) (start, end int64, err error) {
	if off < 0 || length < 0 {
		return 0, 0, ErrInvalidRange
	}
	if off > size {
		return 0, 0, io.EOF
	}
	end = off + length
	if end > size {
		end = size
	}
	return off, end, nil
}

// DirPrefix normalizes an object-store root prefix to "" or "dir/".
func DirPrefix(root string) string {
	root = strings.Trim(root, "/")
	if root == "" {
		return ""
	}
	return root + "/"
}
