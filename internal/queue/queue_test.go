package queue

import (
	"container/heap"
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(pq *PriorityQueue) []Entry {
	var out []Entry
	for {
		e, ok := pq.PopEntry()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func TestPriorityQueue_MinOrder(t *testing.T) {
	pq := NewMin(4)
	pq.PushEntry(Entry{Key: 0.3, Run: 0})
	pq.PushEntry(Entry{Key: 0.1, Run: 1})
	pq.PushEntry(Entry{Key: 0.2, Run: 2})

	top, ok := pq.TopEntry()
	require.True(t, ok)
	assert.Equal(t, Entry{Key: 0.1, Run: 1}, top)

	assert.Equal(t, []Entry{{0.1, 1}, {0.2, 2}, {0.3, 0}}, drain(pq))
	assert.Equal(t, 0, pq.Len())
}

func TestPriorityQueue_TieBreakByRun(t *testing.T) {
	pq := NewMin(4)
	for _, run := range []int{3, 0, 2, 1} {
		pq.PushEntry(Entry{Key: 1, Run: run})
	}
	assert.Equal(t, []Entry{{1, 0}, {1, 1}, {1, 2}, {1, 3}}, drain(pq))
}

func TestPriorityQueue_Empty(t *testing.T) {
	pq := NewMin(0)
	_, ok := pq.TopEntry()
	assert.False(t, ok)
	_, ok = pq.PopEntry()
	assert.False(t, ok)
}

func TestPriorityQueue_ReplaceTop(t *testing.T) {
	pq := NewMin(3)
	pq.PushEntry(Entry{Key: 1, Run: 0})
	pq.PushEntry(Entry{Key: 2, Run: 1})
	pq.PushEntry(Entry{Key: 3, Run: 2})

	pq.ReplaceTop(Entry{Key: 2.5, Run: 0})
	assert.Equal(t, []Entry{{2, 1}, {2.5, 0}, {3, 2}}, drain(pq))

	pq.ReplaceTop(Entry{Key: 9, Run: 4})
	assert.Equal(t, []Entry{{9, 4}}, drain(pq))
}

func TestPriorityQueue_Infinities(t *testing.T) {
	pq := NewMin(3)
	pq.PushEntry(Entry{Key: math.Inf(1), Run: 0})
	pq.PushEntry(Entry{Key: 0, Run: 1})
	pq.PushEntry(Entry{Key: math.Inf(-1), Run: 2})
	assert.Equal(t, []Entry{{math.Inf(-1), 2}, {0, 1}, {math.Inf(1), 0}}, drain(pq))
}

func TestPriorityQueue_RandomAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 100; iter++ {
		pq := NewMin(0)
		var want []Entry
		n := rng.IntN(64)
		for i := 0; i < n; i++ {
			e := Entry{Key: float64(rng.IntN(8)), Run: i}
			want = append(want, e)
			pq.PushEntry(e)
		}
		sort.Slice(want, func(i, j int) bool { return want[i].Less(want[j]) })
		require.Equal(t, want, drain(pq))
	}
}

func TestPriorityQueue_HeapInterface(t *testing.T) {
	pq := NewMin(3)
	heap.Push(pq, Entry{Key: 2, Run: 0})
	heap.Push(pq, Entry{Key: 1, Run: 1})
	heap.Push(pq, Entry{Key: 1, Run: 0})

	assert.Equal(t, Entry{Key: 1, Run: 0}, heap.Pop(pq))
	assert.Equal(t, Entry{Key: 1, Run: 1}, heap.Pop(pq))
	assert.Equal(t, Entry{Key: 2, Run: 0}, heap.Pop(pq))

	pq.PushEntry(Entry{Key: 5})
	pq.Reset()
	assert.Equal(t, 0, pq.Len())
}
