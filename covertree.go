package covertree

import (
	"cmp"
	"math"
	"slices"
	"time"
)

// DistanceFunc computes a non-negative distance between two points.
// It must be symmetric; the triangle inequality is assumed for pruning
// but never verified.
type DistanceFunc[T any] func(a, b T) float64

// node is a single tree vertex. A node owns its children exclusively;
// the structure is a strict arborescence, never a DAG. Nodes are immutable
// once placed except for gaining children and for level changes during
// re-rooting.
type node[T any] struct {
	data     T
	level    int
	children []*node[T]
}

// raise grows the node by one level so a farther point can be covered.
// A childless node just bumps its own level. Otherwise the first child is
// promoted to be the new parent with the old node re-attached below it.
func (n *node[T]) raise() *node[T] {
	if len(n.children) == 0 {
		n.level++
		return n
	}
	promoted := n.children[0]
	n.children = n.children[1:]
	promoted.children = append(promoted.children, n)
	promoted.level++
	return promoted
}

// Tree is a cover tree over points of type T.
//
// The covering invariant: a child of a node at level L is never farther
// than base^L from the node's point. No separation invariant (minimum
// pairwise distance between siblings) is maintained; this matches the
// insertion algorithm, which attaches a point under the first covering
// child rather than the best one.
//
// Query pruning uses maxDistance, the running maximum distance from the
// current root to any point seen at insertion time, as a stand-in for the
// canonical per-subtree maxdist bound. The substitute is usually looser
// (less pruning) but is not a true per-subtree bound, so FindNearest is
// approximate: on rare metric configurations it can miss the exact nearest
// neighbor.
//
// A Tree is not safe for concurrent mutation. Queries perform no writes,
// so concurrent FindNearest calls are safe as long as no Insert runs.
type Tree[T any] struct {
	distFn      DistanceFunc[T]
	root        *node[T]
	maxDistance float64
	base        float64
	size        int

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty tree using the given distance function.
func New[T any](distFn DistanceFunc[T], optFns ...Option) (*Tree[T], error) {
	if distFn == nil {
		return nil, ErrNilDistanceFunc
	}
	o := applyOptions(optFns)
	return &Tree[T]{
		distFn:  distFn,
		base:    o.base,
		logger:  o.logger,
		metrics: o.metrics,
	}, nil
}

// Build creates a tree by inserting the given points in order.
// The resulting shape is insertion-order-dependent; no balance is
// guaranteed. An empty slice yields an empty tree ready for later inserts.
func Build[T any](points []T, distFn DistanceFunc[T], optFns ...Option) (*Tree[T], error) {
	t, err := New(distFn, optFns...)
	if err != nil {
		return nil, err
	}
	for _, p := range points {
		t.Insert(p)
	}
	return t, nil
}

// Len returns the number of points held by the tree. Duplicate inserts are
// counted individually; the tree performs no duplicate detection.
func (t *Tree[T]) Len() int {
	return t.size
}

// MaxDistance returns the running maximum of the distance from the root to
// any inserted point. It is monotonically non-decreasing and resets only
// when the tree becomes empty, which this implementation never does.
func (t *Tree[T]) MaxDistance() float64 {
	return t.maxDistance
}

// Base returns the expansion constant.
func (t *Tree[T]) Base() float64 {
	return t.base
}

func (t *Tree[T]) coverDistance(level int) float64 {
	return math.Pow(t.base, float64(level))
}

// Insert adds a point to the tree.
//
// An already-present point is not detected; inserting one creates a second
// node holding an equal-valued point, which FindNearest treats like any
// other.
func (t *Tree[T]) Insert(point T) {
	start := time.Now()

	if t.root == nil {
		t.root = &node[T]{data: point, level: 0}
		t.maxDistance = 0
		t.size = 1
		t.metrics.RecordInsert(time.Since(start))
		t.logger.LogInsert(t.size, t.root.level, t.maxDistance)
		return
	}

	if d := t.distFn(t.root.data, point); d > t.maxDistance {
		t.maxDistance = d
	}
	t.root = t.insert(t.root, point)
	t.size++

	t.metrics.RecordInsert(time.Since(start))
	t.logger.LogInsert(t.size, t.root.level, t.maxDistance)
}

// insert places point at or above n, returning the possibly new root of the
// subtree. When the point lies outside n's cover, n is raised until the
// point is within twice the cover distance, then a new root holding the
// point is wrapped around it.
func (t *Tree[T]) insert(n *node[T], point T) *node[T] {
	if t.distFn(point, n.data) > t.coverDistance(n.level) {
		for t.distFn(point, n.data) > 2*t.coverDistance(n.level) {
			n = n.raise()
		}
		return &node[T]{
			data:     point,
			level:    n.level + 1,
			children: []*node[T]{n},
		}
	}
	return t.insertCovered(n, point)
}

// insertCovered descends into the first child whose cover contains the
// point, or attaches the point as a new leaf one level below n.
// Precondition: the point is within n's cover distance.
func (t *Tree[T]) insertCovered(n *node[T], point T) *node[T] {
	if t.distFn(n.data, point) > t.coverDistance(n.level) {
		// Not a caller error: the raise loop or the descent above picked a
		// node that cannot cover the point, so the structure is corrupt.
		panic("covertree: insertion violates covering invariant")
	}
	for i, child := range n.children {
		if t.distFn(child.data, point) <= t.coverDistance(child.level) {
			n.children[i] = t.insertCovered(child, point)
			return n
		}
	}
	n.children = append(n.children, &node[T]{data: point, level: n.level - 1})
	return n
}

// FindNearest returns the stored point nearest to query under the tree's
// distance function. Querying an empty tree returns ErrEmptyTree.
//
// Ties go to the first point encountered in traversal order: parents before
// children, children in ascending distance to the query. The result is
// deterministic and repeated queries return the same point.
func (t *Tree[T]) FindNearest(query T) (T, error) {
	start := time.Now()

	if t.root == nil {
		var zero T
		t.metrics.RecordSearch(time.Since(start), ErrEmptyTree)
		t.logger.LogSearch(t.size, ErrEmptyTree)
		return zero, ErrEmptyTree
	}
	best := t.findNearest(t.root, query, t.root.data)

	t.metrics.RecordSearch(time.Since(start), nil)
	t.logger.LogSearch(t.size, nil)
	return best, nil
}

// findNearest is a branch-and-bound depth-first descent. A subtree under
// child c is skipped when d(query, best) <= d(c, best) - maxDistance: no
// point that close to c could beat the incumbent if maxDistance bounded the
// subtree's spread.
func (t *Tree[T]) findNearest(n *node[T], query T, best T) T {
	if t.distFn(n.data, query) < t.distFn(best, query) {
		best = n.data
	}

	// Sort a transient view, nearest-first, so effective pruning does not
	// require mutating the stored child order.
	ordered := slices.Clone(n.children)
	slices.SortStableFunc(ordered, func(a, b *node[T]) int {
		return cmp.Compare(t.distFn(a.data, query), t.distFn(b.data, query))
	})

	for _, child := range ordered {
		if t.distFn(query, best) > t.distFn(child.data, best)-t.maxDistance {
			best = t.findNearest(child, query, best)
		}
	}
	return best
}

// walk visits every node top-down, parents before children, passing the
// node's depth from the root. Traversal stops early if fn returns false.
func (t *Tree[T]) walk(fn func(n *node[T], depth int) bool) {
	if t.root == nil {
		return
	}
	var rec func(n *node[T], depth int) bool
	rec = func(n *node[T], depth int) bool {
		if !fn(n, depth) {
			return false
		}
		for _, child := range n.children {
			if !rec(child, depth+1) {
				return false
			}
		}
		return true
	}
	rec(t.root, 0)
}
