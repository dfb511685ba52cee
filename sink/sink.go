// Package sink appends merged lines to their destination.
//
// Every WriteLine is one write call carrying the text and its terminator,
// so a line is never split across writes by this package. Files are opened
// in append mode and never truncated.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// Terminator ends every written line.
const Terminator = "\n"

// ErrSinkWriteFailed is returned when the destination cannot be opened or a write fails.
var ErrSinkWriteFailed = errors.New("sink write failed")

// WriteError describes a failed open or write.
//
// It matches ErrSinkWriteFailed via errors.Is. The underlying I/O error
// can be accessed via errors.Unwrap.
type WriteError struct {
	Path  string
	Op    string
	cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrSinkWriteFailed, e.Op, e.Path, e.cause)
}

// Is reports whether target is ErrSinkWriteFailed.
func (e *WriteError) Is(target error) bool { return target == ErrSinkWriteFailed }

func (e *WriteError) Unwrap() error { return e.cause }

// Sink is a line destination.
type Sink interface {
	WriteLine(text string) error
	io.Closer
}

// FileSink appends lines to a file. The file is opened on first use (or by
// OpenFile) and kept open until Close.
type FileSink struct {
	path string
	perm os.FileMode

	mu  sync.Mutex
	f   *os.File
	buf []byte
}

// NewFile returns a sink for path that creates or opens the file on the
// first WriteLine. No file is created if nothing is ever written.
func NewFile(path string) *FileSink {
	return &FileSink{path: path, perm: 0o644}
}

// OpenFile opens path for appending immediately, creating it if absent.
func OpenFile(path string) (*FileSink, error) {
	s := NewFile(path)
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the destination path.
func (s *FileSink) Path() string { return s.path }

func (s *FileSink) open() error {
	if s.f != nil {
		return nil
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, s.perm)
	if err != nil {
		return &WriteError{Path: s.path, Op: "open", cause: err}
	}
	s.f = f
	return nil
}

// WriteLine appends text and the terminator in a single write.
func (s *FileSink) WriteLine(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.open(); err != nil {
		return err
	}
	s.buf = append(append(s.buf[:0], text...), Terminator...)
	if _, err := s.f.Write(s.buf); err != nil {
		return &WriteError{Path: s.path, Op: "write", cause: err}
	}
	return nil
}

// Close closes the file if it was opened. It is idempotent.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	if err != nil {
		return &WriteError{Path: s.path, Op: "close", cause: err}
	}
	return nil
}

// WriterSink writes lines to an io.Writer such as os.Stdout.
type WriterSink struct {
	name string
	w    io.Writer
	buf  []byte
}

// NewWriter returns a sink over w. name is used in error messages.
// Closing the sink does not close w.
func NewWriter(name string, w io.Writer) *WriterSink {
	return &WriterSink{name: name, w: w}
}

// WriteLine writes text and the terminator in a single write.
func (s *WriterSink) WriteLine(text string) error {
	s.buf = append(append(s.buf[:0], text...), Terminator...)
	n, err := s.w.Write(s.buf)
	if err == nil && n < len(s.buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &WriteError{Path: s.name, Op: "write", cause: err}
	}
	return nil
}

// Close is a no-op.
func (s *WriterSink) Close() error { return nil }
