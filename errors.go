package runmerge

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/runmerge/record"
	"github.com/hupe1980/runmerge/run"
	"github.com/hupe1980/runmerge/sink"
)

var (
	// ErrMissingColumn is returned when a line has fewer tokens than the key column requires.
	ErrMissingColumn = record.ErrMissingColumn

	// ErrInvalidNumber is returned when the key token is not a valid floating-point literal.
	ErrInvalidNumber = record.ErrInvalidNumber

	// ErrSourceUnreadable is returned when a source cannot be opened or fully read,
	// or the source listing itself fails.
	ErrSourceUnreadable = run.ErrSourceUnreadable

	// ErrSinkWriteFailed is returned when the destination cannot be opened or a write fails.
	ErrSinkWriteFailed = sink.ErrSinkWriteFailed

	// ErrInvalidColumn is returned when the configured key column is negative.
	ErrInvalidColumn = errors.New("key column must be non-negative")
)

// ErrInvalidConcurrency indicates a non-positive load concurrency.
type ErrInvalidConcurrency struct {
	Concurrency int
}

func (e *ErrInvalidConcurrency) Error() string {
	return fmt.Sprintf("invalid load concurrency: %d", e.Concurrency)
}

// ErrorKind returns a stable short name for the error's kind, for logs and
// metrics labels.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingColumn):
		return "missing_column"
	case errors.Is(err, ErrInvalidNumber):
		return "invalid_number"
	case errors.Is(err, ErrSourceUnreadable):
		return "source_unreadable"
	case errors.Is(err, ErrSinkWriteFailed):
		return "sink_write_failed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "unknown"
	}
}
