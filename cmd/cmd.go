// Package cmd defines the command-line interface for gitwrapped.
package cmd

import (
	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("year", "y", schema.DefaultYear, "Calendar year to summarize")
	rootCmd.PersistentFlags().StringP("image", "i", schema.DefaultImageFile, "Output image path (.png, .jpg, .gif, .bmp or .tiff)")
	rootCmd.PersistentFlags().String("marker", schema.DefaultMarker, "Directory name that marks a repository root")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated list of path prefixes or patterns to ignore when counting languages")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("git-timeout", "0s", "Timeout for each git invocation (0 = none)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	// Card layout flags are shared by card, repos and mcp
	rootCmd.PersistentFlags().Int("card-width", schema.DefaultCardWidth, "Card canvas width in pixels")
	rootCmd.PersistentFlags().Int("card-height", schema.DefaultCardHeight, "Height of a single card in pixels")
	rootCmd.PersistentFlags().Int("padding", schema.DefaultPadding, "Padding around and inside cards in pixels")
	rootCmd.PersistentFlags().String("background", schema.DefaultBackground, "Canvas background color (#rrggbb)")
	rootCmd.PersistentFlags().String("card-color", schema.DefaultCardColor, "Card fill color (#rrggbb)")
	rootCmd.PersistentFlags().String("border-color", schema.DefaultBorderColor, "Card border color (#rrggbb)")
	rootCmd.PersistentFlags().String("text-color", schema.DefaultTextColor, "Text color (#rrggbb)")
	rootCmd.PersistentFlags().String("font", "", "Path to a TTF/OTF font (empty = embedded Go fonts)")
	rootCmd.PersistentFlags().Float64("font-size", schema.DefaultFontSize, "Body text size in points")
	rootCmd.PersistentFlags().Float64("title-font-size", schema.DefaultTitleFontSize, "Title text size in points")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
