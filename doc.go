// Package covertree provides a generic cover tree for nearest-neighbor
// search over arbitrary point types under a caller-supplied distance
// function.
//
// A cover tree is a level-indexed, multiway tree: a node at level L may hold
// children no farther than base^L from its own point (the covering
// invariant, with base = 1.3 by default). Insertion maintains the invariant
// by re-rooting the tree when a point falls outside the root's cover and by
// descending into the first covering child otherwise. Queries walk the tree
// depth-first, visiting children nearest-first and pruning subtrees that a
// distance bound proves cannot beat the running best.
//
// # Quick Start
//
//	tree, _ := covertree.Build(points, func(a, b Point) float64 {
//	    return a.DistanceTo(b)
//	})
//	tree.Insert(p)
//	nearest, err := tree.FindNearest(query)
//
// # Metric Requirements
//
// The distance function must be non-negative and symmetric. The triangle
// inequality is assumed for pruning but never checked. A metric returning
// NaN or infinite values makes comparison order unreliable; the tree
// propagates whatever ordering results rather than clamping.
//
// # Exactness
//
// Pruning uses a single tree-wide bound (the maximum distance from the root
// to any inserted point) instead of the canonical per-subtree maxdist. This
// keeps bookkeeping trivial at the cost of provable exactness: in rare
// metric configurations a subtree containing the true nearest neighbor can
// be pruned, making results approximate. See the Tree documentation.
//
// # Concurrency
//
// Insert mutates node identities and is not safe to run concurrently with
// anything. FindNearest is side-effect free, so any number of queries may
// run in parallel between mutations; FindNearestBatch does exactly that.
package covertree
