package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nearspace/covertree/treeprint"
)

var flagTreeDepth int

// treeCmd dumps the cover-tree structure of the loaded database.
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Render the cover-tree index for diagnostics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := loadSource()
		if err != nil {
			return err
		}

		stats := src.TreeStats()
		fmt.Printf("points=%d root_level=%d min_level=%d max_depth=%d mean_depth=%.2f\n",
			stats.Size, stats.RootLevel, stats.MinLevel, stats.MaxDepth, stats.MeanDepth)

		branchStyle := lipgloss.NewStyle().Faint(true)
		fmt.Println(src.DebugTree(
			treeprint.WithMaxDepth(flagTreeDepth),
			treeprint.WithBranchStyle(branchStyle),
		))
		return nil
	},
}

func init() {
	treeCmd.Flags().IntVar(&flagTreeDepth, "depth", 0, "maximum depth to render (0 = unlimited)")
	rootCmd.AddCommand(treeCmd)
}
