// Package testutil provides testing utilities for cal-cu-lator.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic random datasets, the payslip fixtures used by
// end-to-end tests, and a slow sequential reference search.
//
// # Random Datasets
//
//	rng := testutil.NewRNG(seed)
//	fields := rng.Fields(8, 3) // 8 fields, 3 periods each
//
// # Exact Search (Ground Truth)
//
//	want := testutil.Reference(fields, goal, k)
package testutil
