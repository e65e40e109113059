package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the entry point for the colornames CLI. Subcommands query a
// color name database loaded from --file under the metric given by --metric.
var rootCmd = &cobra.Command{
	Use:   "colornames",
	Short: "Look up and name colors using a cover-tree index",
	Long: `colornames loads a color name database ("#RRGGBB name" lines or a
YAML palette) and answers exact and nearest-color queries against it.`,
	SilenceUsage: true,
}

var (
	flagFile    string
	flagMetric  string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "colornames.txt",
		"color name database (.txt line format or .yaml/.yml palette)")
	rootCmd.PersistentFlags().StringVarP(&flagMetric, "metric", "m", "hsl",
		"color distance metric (hsl or rgb)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
