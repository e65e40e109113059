package colorname

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tidwall/btree"

	"github.com/nearspace/covertree"
	"github.com/nearspace/covertree/color"
	"github.com/nearspace/covertree/treeprint"
)

// NamedColor pairs a color with its human-readable name.
type NamedColor struct {
	Name  string
	Color color.Color
}

// Source is a database of named colors supporting exact lookup by name and
// nearest-name lookup by color. Names are held in an ordered index; colors
// are additionally indexed in a cover tree under the configured metric.
//
// A Source is safe for concurrent use: a single writer lock serializes Add
// against lookups, which the underlying cover tree requires.
type Source struct {
	mu     sync.RWMutex
	names  btree.Map[string, NamedColor]
	tree   *covertree.Tree[NamedColor]
	metric covertree.DistanceFunc[color.Color]
	logger *covertree.Logger
}

// Empty constructs a Source with no data. The default metric is
// color.HSLDistance.
func Empty(optFns ...Option) *Source {
	o := applyOptions(optFns)
	s := &Source{
		metric: o.metric,
		logger: o.logger,
	}
	// The metric is guaranteed non-nil by applyOptions, so New cannot fail.
	s.tree, _ = covertree.New(func(a, b NamedColor) float64 {
		return s.metric(a.Color, b.Color)
	}, o.treeOptions...)
	return s
}

// Normalize canonicalizes a color name for lookup: trimmed of surrounding
// whitespace and upper-cased.
func Normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Add registers a named color. The name is normalized; an existing entry
// under the same normalized name is replaced in the name index, though its
// node remains in the cover tree (the tree does not support deletion).
func (s *Source) Add(name string, c color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(name, c)
}

func (s *Source) add(name string, c color.Color) {
	nc := NamedColor{Name: Normalize(name), Color: c}
	s.names.Set(nc.Name, nc)
	s.tree.Insert(nc)
}

// Len returns the number of distinct names.
func (s *Source) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.names.Len()
}

// Color returns the color registered under the given name, which is
// normalized before lookup.
func (s *Source) Color(name string) (color.Color, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nc, ok := s.names.Get(Normalize(name))
	return nc.Color, ok
}

// Names returns all registered names with the given normalized prefix, in
// lexicographic order. An empty prefix returns every name.
func (s *Source) Names(prefix string) []string {
	prefix = Normalize(prefix)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var names []string
	s.names.Ascend(prefix, func(name string, _ NamedColor) bool {
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		names = append(names, name)
		return true
	})
	return names
}

// Nearest returns the registered NamedColor nearest to c under the
// configured metric. An empty source returns covertree.ErrEmptyTree.
func (s *Source) Nearest(c color.Color) (NamedColor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.FindNearest(NamedColor{Color: c})
}

// NearestName returns the name of the registered color nearest to c.
func (s *Source) NearestName(c color.Color) (string, error) {
	nc, err := s.Nearest(c)
	if err != nil {
		return "", err
	}
	return nc.Name, nil
}

// NearestNames answers many nearest-name queries concurrently. Results are
// positionally aligned with colors.
func (s *Source) NearestNames(ctx context.Context, colors []color.Color) ([]string, error) {
	queries := make([]NamedColor, len(colors))
	for i, c := range colors {
		queries[i] = NamedColor{Color: c}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	matches, err := s.tree.FindNearestBatch(ctx, queries)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, nc := range matches {
		names[i] = nc.Name
	}
	return names, nil
}

// TreeStats reports the shape of the underlying cover tree.
func (s *Source) TreeStats() covertree.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Stats()
}

// DebugTree renders the underlying cover tree for diagnostics.
func (s *Source) DebugTree(optFns ...treeprint.Option) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.DebugString(func(nc NamedColor) string {
		return fmt.Sprintf("%s %s", nc.Color, nc.Name)
	}, optFns...)
}
