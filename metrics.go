package runmerge

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// RecordLoad may be called concurrently when load concurrency is above one.
type MetricsCollector interface {
	// RecordLoad is called after each source is loaded and sorted, or skipped.
	// records is zero when err is non-nil.
	RecordLoad(records int, duration time.Duration, err error)

	// RecordMerge is called once after the merge pass.
	RecordMerge(runs, emitted int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordMerge(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	LoadRecords     atomic.Int64
	LoadTotalNanos  atomic.Int64
	MergeCount      atomic.Int64
	MergeErrors     atomic.Int64
	MergeRuns       atomic.Int64
	MergeEmitted    atomic.Int64
	MergeTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(records int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadRecords.Add(int64(records))
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(runs, emitted int, duration time.Duration, err error) {
	b.MergeCount.Add(1)
	b.MergeRuns.Add(int64(runs))
	b.MergeEmitted.Add(int64(emitted))
	b.MergeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MergeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:     b.LoadCount.Load(),
		LoadErrors:    b.LoadErrors.Load(),
		LoadRecords:   b.LoadRecords.Load(),
		LoadAvgNanos:  avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		MergeCount:    b.MergeCount.Load(),
		MergeErrors:   b.MergeErrors.Load(),
		MergeRuns:     b.MergeRuns.Load(),
		MergeEmitted:  b.MergeEmitted.Load(),
		MergeAvgNanos: avg(b.MergeTotalNanos.Load(), b.MergeCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount     int64
	LoadErrors    int64
	LoadRecords   int64
	LoadAvgNanos  int64
	MergeCount    int64
	MergeErrors   int64
	MergeRuns     int64
	MergeEmitted  int64
	MergeAvgNanos int64
}
