// Package model defines the core types shared by the search engine.
//
// # Identity Types
//
//   - Key: canonical identity of a (sign, select) combination (positive bits, negative bits)
//   - SelectionMask / SignMask: plain uint32 bitsets, bit i refers to field i
//
// # Data Types
//
//   - Field: named series of per-period amounts
//   - Dataset: ordered list of fields loaded from one source
//   - Candidate: a scored combination found by a single dataset search
//   - Combined: a combination aggregated across several dataset searches
//
// # Ordering vs Identity
//
// Candidates are ranked by their ordering key (Diff, or mean diff for Combined)
// and identified by their Key. The two relations are deliberately distinct:
// two different combinations may share a diff, and the same combination found
// in two datasets has two different diffs. Better breaks exact ordering ties
// by Key so that rankings are reproducible.
package model
