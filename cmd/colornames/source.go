package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nearspace/covertree"
	"github.com/nearspace/covertree/color"
	"github.com/nearspace/covertree/colorname"
)

// loadSource builds a colorname.Source from the persistent flags.
func loadSource() (*colorname.Source, error) {
	var optFns []colorname.Option

	switch strings.ToLower(flagMetric) {
	case "hsl":
		optFns = append(optFns, colorname.WithMetric(color.HSLDistance))
	case "rgb":
		optFns = append(optFns, colorname.WithMetric(color.RGBDistance))
	default:
		return nil, fmt.Errorf("unknown metric %q (want hsl or rgb)", flagMetric)
	}
	if flagVerbose {
		optFns = append(optFns, colorname.WithLogger(covertree.NewTextLogger(slog.LevelDebug)))
	}

	switch filepath.Ext(flagFile) {
	case ".yaml", ".yml":
		return colorname.FromYAML(flagFile, optFns...)
	default:
		return colorname.FromFile(flagFile, optFns...)
	}
}

// swatch renders a small colored block for terminal output.
func swatch(c color.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.String())).
		Render("  ")
}
