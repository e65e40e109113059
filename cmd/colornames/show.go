package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nearspace/covertree/color"
)

// showCmd prints the color registered under a name, with its color-space
// breakdown.
var showCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a named color with its HSV/HSL/CMYK breakdown",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		src, err := loadSource()
		if err != nil {
			return err
		}
		c, ok := src.Color(name)
		if !ok {
			return fmt.Errorf("no color named %q", name)
		}
		printBreakdown(c)
		return nil
	},
}

// convertCmd prints the color-space breakdown for an arbitrary hex color.
var convertCmd = &cobra.Command{
	Use:   "convert HEX",
	Short: "Show the HSV/HSL/CMYK breakdown for a hex color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := color.ParseHex(args[0])
		if err != nil {
			return err
		}
		printBreakdown(c)
		return nil
	},
}

func printBreakdown(c color.Color) {
	h, sv, v := c.HSV()
	_, sl, l := c.HSL()
	cy, m, y, k := c.CMYK()
	fmt.Printf("%s %s\n", swatch(c), c)
	fmt.Printf("  rgb:  %3d %3d %3d\n", c.RedOctet(), c.GreenOctet(), c.BlueOctet())
	fmt.Printf("  hsv:  %.0f° %.0f%% %.0f%%\n", h, sv*100, v*100)
	fmt.Printf("  hsl:  %.0f° %.0f%% %.0f%%\n", h, sl*100, l*100)
	fmt.Printf("  cmyk: %.0f%% %.0f%% %.0f%% %.0f%%\n", cy*100, m*100, y*100, k*100)
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(convertCmd)
}
