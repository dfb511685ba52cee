// Package merge implements the k-way merge of sorted runs.
//
// The merger keeps one heap entry per active run: the key of the run's next
// unconsumed record. Each step emits the smallest head, advances that run's
// cursor and re-enters the run if it still has records. Equal keys from
// different runs are emitted in ascending run index, so output is fully
// deterministic for a given run order.
package merge

import (
	"context"
	"fmt"

	"github.com/hupe1980/runmerge/internal/queue"
	"github.com/hupe1980/runmerge/record"
	"github.com/hupe1980/runmerge/run"
)

// checkEvery is how many emissions pass between context checks.
const checkEvery = 1024

// Writer receives merged lines in global key order.
type Writer interface {
	WriteLine(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

// WriteLine calls f(text).
func (f WriterFunc) WriteLine(text string) error { return f(text) }

// Merger merges runs that are each sorted ascending by key.
// Runs are read-only to the merger; only its cursors move.
type Merger struct {
	runs    []*run.Run
	cursors []int
	pq      *queue.PriorityQueue
	total   int
	emitted int
}

// New prepares a merge over runs. The index of a run in runs is its
// tie-break rank. Empty runs never enter the priority queue.
//
// Every run must already be sorted (see run.Sort); this is not re-checked.
func New(runs []*run.Run) *Merger {
	m := &Merger{
		runs:    runs,
		cursors: make([]int, len(runs)),
		pq:      queue.NewMin(len(runs)),
	}
	for i, r := range runs {
		if r == nil || r.Len() == 0 {
			continue
		}
		m.total += r.Len()
		m.pq.PushEntry(queue.Entry{Key: r.Records[0].Key, Run: i})
	}
	return m
}

// Total returns the number of records the merge will emit.
func (m *Merger) Total() int { return m.total }

// Emitted returns the number of records emitted so far.
func (m *Merger) Emitted() int { return m.emitted }

// Active returns the number of runs that still have unconsumed records.
func (m *Merger) Active() int { return m.pq.Len() }

// Next removes and returns the globally smallest unconsumed record and the
// index of its run. ok is false once every run is exhausted.
func (m *Merger) Next() (rec record.Record, runIndex int, ok bool) {
	top, ok := m.pq.TopEntry()
	if !ok {
		return record.Record{}, -1, false
	}

	i := top.Run
	recs := m.runs[i].Records
	rec = recs[m.cursors[i]]
	m.cursors[i]++

	if c := m.cursors[i]; c < len(recs) {
		m.pq.ReplaceTop(queue.Entry{Key: recs[c].Key, Run: i})
	} else {
		m.pq.PopEntry()
	}
	m.emitted++
	return rec, i, true
}

// Run drains the merge into w and returns the number of lines written.
// A write error aborts the merge immediately; lines already written stay
// written.
func (m *Merger) Run(ctx context.Context, w Writer) (int, error) {
	written := 0
	for {
		if written%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return written, err
			}
		}
		rec, i, ok := m.Next()
		if !ok {
			return written, nil
		}
		if err := w.WriteLine(rec.Text); err != nil {
			return written, fmt.Errorf("merge: emit record from run %d (%s): %w", i, m.runs[i].Source, err)
		}
		written++
	}
}

// Merge is shorthand for New(runs).Run(ctx, w).
func Merge(ctx context.Context, runs []*run.Run, w Writer) (int, error) {
	return New(runs).Run(ctx, w)
}
