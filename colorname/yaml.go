package colorname

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nearspace/covertree/color"
)

// FromYAML reads a palette file mapping names to hex color strings:
//
//	crimson: "#DC143C"
//	sea green: "#2E8B57"
//
// Unlike FromFile, malformed entries are errors rather than skipped lines;
// a palette is expected to be hand-maintained and fully valid.
func FromYAML(path string, optFns ...Option) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("colorname: open %q: %w", path, err)
	}
	defer f.Close()

	var palette map[string]string
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&palette); err != nil {
		return nil, fmt.Errorf("colorname: parse %q: %w", path, err)
	}

	s := Empty(optFns...)
	for name, hex := range palette {
		c, err := color.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("colorname: entry %q: %w", name, err)
		}
		s.add(name, c)
	}

	s.logger.Info("palette loaded", "path", path, "count", s.names.Len())
	return s, nil
}

// SaveYAML writes the database as a YAML palette readable by FromYAML.
func (s *Source) SaveYAML(path string) error {
	s.mu.RLock()
	palette := make(map[string]string, s.names.Len())
	s.names.Scan(func(name string, nc NamedColor) bool {
		palette[name] = nc.Color.String()
		return true
	})
	s.mu.RUnlock()

	out, err := yaml.Marshal(palette)
	if err != nil {
		return fmt.Errorf("colorname: encode palette: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("colorname: write %q: %w", path, err)
	}
	return nil
}
