package testutil

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewPCG(r.seed, r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// SourceShape describes generated sources.
type SourceShape struct {
	// Column is the zero-based key position. Filler tokens precede it.
	Column int
	// Keys bounds the key space to [0, Keys). Small values force ties.
	// Zero means 1000.
	Keys int
	// Header prepends a header line to every source.
	Header bool
	// Fractional writes keys with a decimal part.
	Fractional bool
}

// Sources generates num sources of up to maxLines lines each. Every line is
// unique, so the origin of an output line can be recovered from its text.
func (r *RNG) Sources(num, maxLines int, shape SourceShape) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := shape.Keys
	if keys <= 0 {
		keys = 1000
	}

	out := make([]string, num)
	for s := range num {
		var b strings.Builder
		if shape.Header {
			b.WriteString("header line\n")
		}
		n := r.rand.IntN(maxLines + 1)
		for i := range n {
			for c := range shape.Column {
				fmt.Fprintf(&b, "f%d ", c)
			}
			k := r.rand.IntN(keys)
			if shape.Fractional {
				fmt.Fprintf(&b, "%d.%d", k, r.rand.IntN(10))
			} else {
				b.WriteString(strconv.Itoa(k))
			}
			fmt.Fprintf(&b, " s%d-l%d\n", s, i)
		}
		out[s] = b.String()
	}
	return out
}

// ExpectedMerge computes the merged output of sources by a global stable
// sort over all lines in source order. It panics on a line without a
// numeric key at column, so callers must pass well-formed sources.
func ExpectedMerge(sources []string, header bool, column int) []string {
	type keyed struct {
		key  float64
		text string
	}
	var all []keyed
	for _, src := range sources {
		lines := strings.Split(src, "\n")
		if header && len(lines) > 0 {
			lines = lines[1:]
		}
		for _, line := range lines {
			line = strings.TrimSuffix(line, "\r")
			if line == "" {
				continue
			}
			tokens := strings.Split(line, " ")
			k, err := strconv.ParseFloat(tokens[column], 64)
			if err != nil {
				panic(err)
			}
			all = append(all, keyed{key: k, text: line})
		}
	}
	slices.SortStableFunc(all, func(a, b keyed) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		}
		return 0
	})

	out := make([]string, len(all))
	for i, k := range all {
		out[i] = k.text
	}
	return out
}

// IsSortedBy reports whether lines are non-decreasing by the key at column.
func IsSortedBy(lines []string, column int) bool {
	prev := 0.0
	for i, line := range lines {
		k, err := strconv.ParseFloat(strings.Split(line, " ")[column], 64)
		if err != nil {
			return false
		}
		if i > 0 && k < prev {
			return false
		}
		prev = k
	}
	return true
}
