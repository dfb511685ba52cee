// Package run loads one source into an in-memory run and sorts it.
//
// Loading is whole-or-nothing: if any line fails key extraction the source
// produces no run at all, so a malformed source can never leak partial or
// unsorted data into the merge.
package run

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hupe1980/runmerge/record"
)

// ErrSourceUnreadable is returned when a source cannot be opened or fully read.
var ErrSourceUnreadable = errors.New("source unreadable")

// DefaultColumn is the key column used when none is configured.
const DefaultColumn = 2

// Config controls how a source is turned into records.
type Config struct {
	// Header discards the first line of the source unconditionally.
	Header bool
	// Column is the zero-based token index of the key.
	Column int
	// OnHeader, if set, receives the discarded header line.
	OnHeader func(line string)
}

// DefaultConfig returns the loader defaults (no header, column 2).
func DefaultConfig() Config {
	return Config{Column: DefaultColumn}
}

// Run is one source's records. After Sort it is ordered by key and must be
// treated as read-only.
type Run struct {
	Source  string
	Records []record.Record
	sorted  bool
}

// Len returns the number of records in the run.
func (r *Run) Len() int { return len(r.Records) }

// Sorted reports whether Sort has been applied.
func (r *Run) Sorted() bool { return r.sorted }

// SourceError wraps a failure that caused a whole source to be skipped.
//
// It matches ErrSourceUnreadable, record.ErrMissingColumn or
// record.ErrInvalidNumber via errors.Is.
type SourceError struct {
	Source string
	// Line is the 1-based line number of a key extraction failure, 0 otherwise.
	Line  int
	cause error
}

func (e *SourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("source %s: line %d: %v", e.Source, e.Line, e.cause)
	}
	return fmt.Sprintf("source %s: %v", e.Source, e.cause)
}

func (e *SourceError) Unwrap() error { return e.cause }

// Load reads all of r and keys every non-empty line after the optional header.
// The returned run keeps the original line order; call Sort before merging.
func Load(source string, r io.Reader, cfg Config) (*Run, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &SourceError{Source: source, cause: fmt.Errorf("%w: %w", ErrSourceUnreadable, err)}
	}
	return Parse(source, string(data), cfg)
}

// Parse keys the lines of an already read source. See Load.
func Parse(source, contents string, cfg Config) (*Run, error) {
	run := &Run{Source: source}
	first := true
	lineNo := 0
	for line := range strings.Lines(contents) {
		lineNo++
		line = trimTerminator(line)
		if first && cfg.Header {
			first = false
			if cfg.OnHeader != nil {
				cfg.OnHeader(line)
			}
			continue
		}
		first = false
		if line == "" {
			continue
		}
		rec, err := record.Parse(line, cfg.Column)
		if err != nil {
			return nil, &SourceError{Source: source, Line: lineNo, cause: err}
		}
		run.Records = append(run.Records, rec)
	}
	return run, nil
}

// Sort orders the run ascending by key. Equal keys keep their line order.
func Sort(r *Run) *Run {
	slices.SortStableFunc(r.Records, record.Compare)
	r.sorted = true
	return r
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
