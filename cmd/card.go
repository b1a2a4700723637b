package cmd

import (
	"github.com/huangsam/gitwrapped/core"
	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/spf13/cobra"
)

// cardCmd renders the global summary card.
var cardCmd = &cobra.Command{
	Use:   "card [root-path]",
	Short: "Render one card summarizing every repository under a root.",
	Long: `Scan a directory tree for repositories and summarize one calendar year of commits.

Prints the aggregate summary and renders a single card with:
- Total commits across all repositories
- The most active month and weekday
- The most common file extension

Examples:
  # Summarize 2024 for everything under ~/src
  gitwrapped card ~/src --year 2024

  # Write a JPEG card and a JSON summary
  gitwrapped card ~/src --image wrapped.jpg --output json --output-file wrapped.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGlobalCard(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot render global card", err)
		}
	},
}
