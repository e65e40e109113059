package colorname

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearspace/covertree"
	"github.com/nearspace/covertree/color"
)

// testSource builds a small source under the RGB metric. Black and white are
// added first so the pruning bound spans the whole RGB cube and nearest
// lookups are exact.
func testSource(t *testing.T) *Source {
	t.Helper()
	s := Empty(WithMetric(color.RGBDistance))
	for _, e := range []struct {
		name string
		hex  uint32
	}{
		{"black", 0x000000},
		{"white", 0xFFFFFF},
		{"red", 0xFF0000},
		{"green", 0x00FF00},
		{"blue", 0x0000FF},
		{"yellow", 0xFFFF00},
		{"gray", 0x808080},
	} {
		s.Add(e.name, color.FromHexCode(e.hex))
	}
	return s
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "NAVY", Normalize("navy"))
	assert.Equal(t, "NAVY BLUE", Normalize("  Navy Blue  "))
	assert.Equal(t, "", Normalize("   "))
}

func TestColor(t *testing.T) {
	s := testSource(t)

	c, ok := s.Color("red")
	require.True(t, ok)
	assert.Equal(t, color.FromHexCode(0xFF0000), c)

	// Lookup is case- and whitespace-insensitive.
	c, ok = s.Color("  ReD ")
	require.True(t, ok)
	assert.Equal(t, color.FromHexCode(0xFF0000), c)

	_, ok = s.Color("mauve")
	assert.False(t, ok)
}

func TestAdd_ReplacesExistingName(t *testing.T) {
	s := Empty(WithMetric(color.RGBDistance))
	s.Add("navy", color.FromHexCode(0x000080))
	s.Add("Navy", color.FromHexCode(0x000081))

	assert.Equal(t, 1, s.Len())
	c, ok := s.Color("navy")
	require.True(t, ok)
	assert.Equal(t, color.FromHexCode(0x000081), c)
}

func TestNames(t *testing.T) {
	s := testSource(t)

	assert.Equal(t,
		[]string{"BLACK", "BLUE", "GRAY", "GREEN", "RED", "WHITE", "YELLOW"},
		s.Names(""))
	assert.Equal(t, []string{"BLACK", "BLUE"}, s.Names("b"))
	assert.Equal(t, []string{"GRAY", "GREEN"}, s.Names("GR"))
	assert.Empty(t, s.Names("z"))
}

func TestNearestName(t *testing.T) {
	s := testSource(t)

	tests := []struct {
		query uint32
		want  string
	}{
		{0xFF0000, "RED"},
		{0xFE0102, "RED"},
		{0x010101, "BLACK"},
		{0x7F8081, "GRAY"},
		{0xFFFF10, "YELLOW"},
	}
	for _, tt := range tests {
		name, err := s.NearestName(color.FromHexCode(tt.query))
		require.NoError(t, err)
		assert.Equal(t, tt.want, name, "query #%06X", tt.query)
	}
}

func TestNearest_EmptySource(t *testing.T) {
	s := Empty()

	_, err := s.Nearest(color.FromHexCode(0xFF0000))
	assert.ErrorIs(t, err, covertree.ErrEmptyTree)

	_, err = s.NearestName(color.FromHexCode(0xFF0000))
	assert.ErrorIs(t, err, covertree.ErrEmptyTree)
}

func TestNearestNames_MatchesIndividualLookups(t *testing.T) {
	s := testSource(t)

	queries := []color.Color{
		color.FromHexCode(0xFE0102),
		color.FromHexCode(0x010101),
		color.FromHexCode(0x7F8081),
		color.FromHexCode(0x00EE11),
	}
	names, err := s.NearestNames(context.Background(), queries)
	require.NoError(t, err)
	require.Len(t, names, len(queries))

	for i, q := range queries {
		want, err := s.NearestName(q)
		require.NoError(t, err)
		assert.Equal(t, want, names[i], "query %s", q)
	}
}

func TestTreeStats(t *testing.T) {
	s := testSource(t)

	stats := s.TreeStats()
	assert.Equal(t, 7, stats.Size)
	assert.Greater(t, stats.MaxDistance, 1.7)
}

func TestDebugTree(t *testing.T) {
	assert.Equal(t, "(empty)", Empty().DebugTree())

	s := testSource(t)
	out := s.DebugTree()
	assert.Contains(t, out, "#FF0000 RED")
	assert.Contains(t, out, "#000000 BLACK")
}
