// Package runmerge merges column-delimited text sources, each sorted by a
// numeric key column, into one globally sorted stream.
//
// Each source is loaded whole, keyed on a zero-based column, and stably
// sorted into a run. The runs are then k-way merged through a min-heap that
// holds one head record per run, so the merge itself keeps a single pending
// record per source.
//
// # Quick Start
//
//	ctx := context.Background()
//	out := sink.NewFile("foo.txt") // append mode, created on first write
//	defer out.Close()
//
//	report, err := runmerge.Merge(ctx, blobstore.NewLocalStore("data"), out,
//	    runmerge.WithHeader(true),
//	    runmerge.WithColumn(0),
//	)
//
// # Ordering
//
// Output is non-decreasing by key. Equal keys within one source keep their
// line order; equal keys from different sources are emitted in source
// order, where a source's order is its position in the sorted listing of
// the store. The same inputs always produce byte-identical output.
//
// # Failure Model
//
// A source with any line whose key column is missing (ErrMissingColumn) or
// not a number (ErrInvalidNumber), or that cannot be read
// (ErrSourceUnreadable), is skipped entirely and recorded in the Report.
// Other sources are still merged. A sink failure (ErrSinkWriteFailed)
// aborts the merge; lines written before the failure remain.
//
// # Sources
//
// Any blobstore.BlobStore can supply sources: a local directory, memory,
// Amazon S3 (blobstore/s3) or MinIO (blobstore/minio). Sources ending in
// .gz, .zst or .lz4 are decompressed transparently.
package runmerge
