// Package search enumerates every signed combination of a dataset's fields
// and keeps the k combinations whose total lands closest to a goal.
//
// The selection mask space 1..2^N-1 is cut into chunks that workers claim
// from a shared counter. Each worker folds its candidates into a private
// ranked.Collection; the per-worker collections are merged pairwise once all
// workers finish. Because the merge is associative and commutative under a
// total order, the ranking is identical for any worker count or chunk size.
package search
