package runmerge

import (
	"log/slog"
	"os"

	"github.com/hupe1980/runmerge/run"
)

type options struct {
	header           bool
	column           int
	prefix           string
	loadConcurrency  int
	readLimit        int64
	decode           bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a merge.
type Option func(*options)

// WithHeader discards the first line of every source when true.
func WithHeader(header bool) Option {
	return func(o *options) {
		o.header = header
	}
}

// WithColumn sets the zero-based token index of the sort key.
// Defaults to 2.
func WithColumn(column int) Option {
	return func(o *options) {
		o.column = column
	}
}

// WithPrefix restricts the merge to sources whose names start with prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithLoadConcurrency sets how many sources are loaded and sorted at once.
//
// The default of 1 loads sources strictly one after another. Higher values
// only overlap loading; run indices still follow the source listing, so the
// merged output is identical.
func WithLoadConcurrency(n int) Option {
	return func(o *options) {
		o.loadConcurrency = n
	}
}

// WithReadLimit caps source read throughput in bytes per second.
// Zero (the default) means unlimited.
func WithReadLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.readLimit = bytesPerSec
	}
}

// WithCodecDetection toggles decompression of sources by name suffix
// (.gz, .zst, .lz4). Enabled by default.
func WithCodecDetection(enabled bool) Option {
	return func(o *options) {
		o.decode = enabled
	}
}

// WithMetricsCollector sets a metrics collector for load and merge events.
//
// Example:
//
//	metrics := &runmerge.BasicMetricsCollector{}
//	report, _ := runmerge.Merge(ctx, store, out, runmerge.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a stderr text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(os.Stderr, level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(os.Stderr, level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		column:           run.DefaultColumn,
		loadConcurrency:  1,
		decode:           true,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o *options) validate() error {
	if o.column < 0 {
		return ErrInvalidColumn
	}
	if o.loadConcurrency < 1 {
		return &ErrInvalidConcurrency{Concurrency: o.loadConcurrency}
	}
	return nil
}
