package colorname

import (
	"bufio"
	"fmt"
	"os"
	"regexp"

	"github.com/nearspace/covertree/color"
)

// DefaultFile is the conventional name of the color name database.
const DefaultFile = "colornames.txt"

// lineRE matches one database line: a six-digit hex code, one space, then
// the color name. Anything else is ignored.
var lineRE = regexp.MustCompile(`^(#[0-9a-fA-F]{6}) (.*)$`)

// FromFile reads a color name database in the "#RRGGBB name" line format.
// Lines that do not match the format are skipped. Loading is linear in the
// file size; the cover tree is built as entries are read.
func FromFile(path string, optFns ...Option) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("colorname: open %q: %w", path, err)
	}
	defer f.Close()

	s := Empty(optFns...)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := lineRE.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		// The hex group is regexp-validated, so ParseHex cannot fail.
		c, _ := color.ParseHex(m[1])
		s.add(m[2], c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("colorname: read %q: %w", path, err)
	}

	s.logger.Info("color names loaded", "path", path, "count", s.names.Len())
	return s, nil
}

// Save writes the database in the "#RRGGBB name" line format, ordered by
// name. The output can be read back with FromFile.
func (s *Source) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("colorname: create %q: %w", path, err)
	}

	s.mu.RLock()
	w := bufio.NewWriter(f)
	s.names.Scan(func(_ string, nc NamedColor) bool {
		fmt.Fprintf(w, "%s %s\n", nc.Color, nc.Name)
		return true
	})
	s.mu.RUnlock()

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("colorname: write %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("colorname: close %q: %w", path, err)
	}
	return nil
}
