// Package testutil provides testing utilities for pathsearch.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random instances, computing the exact
// frontier by exhaustive enumeration, and replaying reported paths.
//
// # Random Instances
//
//	rng := testutil.NewRNG(seed)
//	in := rng.Instance(testutil.InstanceConfig{Items: 6, Layers: 3, MaxDeps: 2, EdgeProb: 0.4})
//
// # Exhaustive Reference (Ground Truth)
//
//	want, err := testutil.ReferenceFrontier(in)
//
// # Path Verification
//
//	mem, err := testutil.ReplayPath(in, result.Path)
package testutil
