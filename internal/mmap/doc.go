// Package mmap provides read-only memory-mapped access to source files.
//
// # Usage
//
//	m, err := mmap.Open("data/part-0001.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	// Run sources are scanned front to back exactly once.
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
//
// # Thread Safety
//
// A Mapping is safe for concurrent read access. Close is idempotent; callers
// must not touch the slice returned by Bytes after Close returns.
package mmap
