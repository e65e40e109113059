package covertree

import (
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the shape of the tree. Shape depends on insertion order;
// these figures are diagnostic only and carry no balance guarantee.
type Stats struct {
	// Size is the number of points held.
	Size int
	// RootLevel is the level of the root node; meaningless when Size is 0.
	RootLevel int
	// MinLevel is the lowest level of any node.
	MinLevel int
	// MaxDepth is the longest root-to-leaf path, in edges.
	MaxDepth int
	// DepthCounts maps depth from the root to the number of nodes there.
	DepthCounts map[int]int
	// MeanDepth and StdDevDepth describe the node depth distribution.
	MeanDepth   float64
	StdDevDepth float64
	// MaxDistance is the tree's pruning bound, see Tree.MaxDistance.
	MaxDistance float64
}

// Stats walks the whole tree. Cost is linear in the number of points.
func (t *Tree[T]) Stats() Stats {
	s := Stats{
		Size:        t.size,
		DepthCounts: make(map[int]int),
		MaxDistance: t.maxDistance,
	}
	if t.root == nil {
		return s
	}
	s.RootLevel = t.root.level
	s.MinLevel = t.root.level

	var depths []float64
	t.walk(func(n *node[T], depth int) bool {
		if n.level < s.MinLevel {
			s.MinLevel = n.level
		}
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		s.DepthCounts[depth]++
		depths = append(depths, float64(depth))
		return true
	})

	s.MeanDepth = stat.Mean(depths, nil)
	if len(depths) > 1 {
		s.StdDevDepth = stat.StdDev(depths, nil)
	}
	return s
}
