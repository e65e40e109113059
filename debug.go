package covertree

import (
	"fmt"

	"github.com/nearspace/covertree/treeprint"
)

// DebugString renders the tree structure for diagnostics, one node per
// line, each labeled with the formatted point and its level. format may be
// nil, in which case points are rendered with %v. The output is not a
// stable API.
func (t *Tree[T]) DebugString(format func(T) string, optFns ...treeprint.Option) string {
	if t.root == nil {
		return "(empty)"
	}
	if format == nil {
		format = func(p T) string { return fmt.Sprintf("%v", p) }
	}
	tp := treeprint.New(
		func(n *node[T]) string {
			return fmt.Sprintf("%s (level %d)", format(n.data), n.level)
		},
		func(n *node[T]) []*node[T] { return n.children },
		optFns...,
	)
	return tp.Sprint(t.root)
}
