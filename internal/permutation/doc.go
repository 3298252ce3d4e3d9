// Package permutation enumerates the sign assignments of a selection mask.
//
// For a selection mask with p set bits there are exactly 2^p meaningful sign
// masks; bits outside the selection are always zero. Enumerating only those
// reduces the work over all selection masks of N fields from 4^N to 3^N.
package permutation
