package colorname

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearspace/covertree/color"
)

func writePalette(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromYAML(t *testing.T) {
	s, err := FromYAML(writePalette(t, "crimson: \"#DC143C\"\nsea green: \"#2E8B57\"\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())

	c, ok := s.Color("Sea Green")
	require.True(t, ok)
	assert.Equal(t, color.FromHexCode(0x2E8B57), c)
}

func TestFromYAML_InvalidHex(t *testing.T) {
	_, err := FromYAML(writePalette(t, "red: not-a-color\n"))
	assert.ErrorIs(t, err, color.ErrInvalidHex)
}

func TestFromYAML_MalformedDocument(t *testing.T) {
	_, err := FromYAML(writePalette(t, "- just\n- a\n- list\n"))
	assert.Error(t, err)
}

func TestSaveYAML_RoundTrip(t *testing.T) {
	s := testSource(t)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, s.SaveYAML(path))

	reloaded, err := FromYAML(path, WithMetric(color.RGBDistance))
	require.NoError(t, err)
	assert.Equal(t, s.Len(), reloaded.Len())
	assert.Equal(t, s.Names(""), reloaded.Names(""))

	for _, name := range s.Names("") {
		want, ok := s.Color(name)
		require.True(t, ok)
		got, ok := reloaded.Color(name)
		require.True(t, ok)
		assert.Equal(t, want, got, "color %s", name)
	}
}
