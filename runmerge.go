package runmerge

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/runmerge/blobstore"
	"github.com/hupe1980/runmerge/merge"
	"github.com/hupe1980/runmerge/run"
)

// SourceFailure records why one source was left out of the merge.
type SourceFailure struct {
	Index int
	Name  string
	Err   error
}

// Report summarizes a merge.
type Report struct {
	// Sources is the number of listed sources.
	Sources int
	// Loaded is the number of sources that produced a run (possibly empty).
	Loaded int
	// Skipped holds the listing indices of sources dropped from the merge.
	Skipped *roaring.Bitmap
	// Failures holds one entry per skipped source, in listing order.
	Failures []SourceFailure
	// Records is the number of records across all loaded runs.
	Records int
	// Emitted is the number of lines written to the sink.
	Emitted int
	// Duration is the wall time of the whole merge.
	Duration time.Duration
}

// IsSkipped reports whether the source at listing index i was dropped.
func (r *Report) IsSkipped(i int) bool {
	return i >= 0 && r.Skipped.Contains(uint32(i))
}

// Complete reports whether every loaded record was emitted.
func (r *Report) Complete() bool {
	return r.Emitted == r.Records
}

// Merge loads every source in store, sorts each into a run and writes the
// k-way merge of all runs to w.
//
// A source that cannot be read, or that has any line without a valid key,
// is skipped as a whole and listed in the report; it is not an error.
// The returned error is non-nil only when the listing fails, the context is
// cancelled, the configuration is invalid, or w fails (ErrSinkWriteFailed).
// Output already written is left in place on error.
func Merge(ctx context.Context, store blobstore.BlobStore, w merge.Writer, optFns ...Option) (*Report, error) {
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	logger := o.logger
	logger.LogConfig(ctx, o.header, o.column, o.loadConcurrency)

	names, err := store.List(ctx, o.prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: list sources: %w", ErrSourceUnreadable, err)
	}

	report := &Report{
		Sources: len(names),
		Skipped: roaring.New(),
	}

	runs, err := loadRuns(ctx, blobstore.NewThrottledStore(store, o.readLimit), names, &o, report)
	if err != nil {
		report.Duration = time.Since(start)
		return report, err
	}

	mergeStart := time.Now()
	m := merge.New(runs)
	report.Records = m.Total()
	report.Emitted, err = m.Run(ctx, w)
	mergeDur := time.Since(mergeStart)

	o.metricsCollector.RecordMerge(len(runs), report.Emitted, mergeDur, err)
	logger.LogMerge(ctx, len(runs), report.Emitted, mergeDur, err)

	report.Duration = time.Since(start)
	return report, err
}

// loadRuns loads and sorts every named source. Runs come back in listing
// order with skipped sources removed, so a run's index preserves the
// relative order of source indices.
func loadRuns(ctx context.Context, store blobstore.BlobStore, names []string, o *options, report *Report) ([]*run.Run, error) {
	loaded := make([]*run.Run, len(names))
	failed := make([]error, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.loadConcurrency)

	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			logger := o.logger.WithSource(name)
			cfg := run.Config{
				Header: o.header,
				Column: o.column,
				OnHeader: func(line string) {
					logger.LogHeader(gctx, line)
				},
			}

			t := time.Now()
			r, err := run.LoadBlob(gctx, store, name, cfg, o.decode)
			if err == nil {
				run.Sort(r)
			}
			d := time.Since(t)

			if err != nil {
				// A cancelled read is not the source's fault.
				if cerr := gctx.Err(); cerr != nil {
					return cerr
				}
				o.metricsCollector.RecordLoad(0, d, err)
				logger.LogSourceSkipped(gctx, err)
				failed[i] = err
				return nil
			}
			o.metricsCollector.RecordLoad(r.Len(), d, nil)
			logger.LogSourceLoaded(gctx, r.Len(), d)
			loaded[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	runs := make([]*run.Run, 0, len(names))
	for i, r := range loaded {
		if failed[i] != nil {
			report.Skipped.Add(uint32(i))
			report.Failures = append(report.Failures, SourceFailure{Index: i, Name: names[i], Err: failed[i]})
			continue
		}
		runs = append(runs, r)
	}
	report.Loaded = len(runs)
	return runs, nil
}
