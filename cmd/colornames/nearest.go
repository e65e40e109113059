package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nearspace/covertree/color"
)

// nearestCmd resolves each hex argument to its nearest named color.
var nearestCmd = &cobra.Command{
	Use:   "nearest HEX...",
	Short: "Find the nearest named color for each hex value",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queries := make([]color.Color, len(args))
		for i, arg := range args {
			c, err := color.ParseHex(arg)
			if err != nil {
				return err
			}
			queries[i] = c
		}

		src, err := loadSource()
		if err != nil {
			return err
		}
		names, err := src.NearestNames(cmd.Context(), queries)
		if err != nil {
			return err
		}

		for i, name := range names {
			match, _ := src.Color(name)
			fmt.Printf("%s %s -> %s %s %s\n",
				swatch(queries[i]), queries[i], swatch(match), match, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nearestCmd)
}
