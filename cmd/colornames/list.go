package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd prints registered names in lexicographic order.
var listCmd = &cobra.Command{
	Use:   "list [PREFIX]",
	Short: "List color names, optionally filtered by prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		src, err := loadSource()
		if err != nil {
			return err
		}
		for _, name := range src.Names(prefix) {
			c, _ := src.Color(name)
			fmt.Printf("%s %s %s\n", swatch(c), c, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
