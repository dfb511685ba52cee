// Package testutil provides testing utilities for runmerge.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random keyed sources and computing
// the expected merge of a set of sources independently of the merger.
//
// # Random Sources
//
//	rng := testutil.NewRNG(seed)
//	srcs := rng.Sources(8, 100, testutil.SourceShape{Column: 2, Keys: 10})
//
// # Expected Output (Ground Truth)
//
//	want := testutil.ExpectedMerge(srcs, false, 2)
package testutil
