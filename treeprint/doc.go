// Package treeprint provides a simple, generic renderer for tree-like data
// structures, producing one line per node with unix tree-style branch
// glyphs. It exists for diagnostics; output format is not a stable API.
package treeprint
