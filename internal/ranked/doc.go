// Package ranked provides a bounded, always-sorted top-k collection.
//
// A Collection keeps at most k items ordered best first by model.Compare.
// Collections built independently (one per worker) are combined with Merge,
// which is associative and commutative: the final top-k does not depend on
// how the input was partitioned or in which order partitions are merged.
package ranked
