package cmd

import (
	"github.com/huangsam/gitwrapped/core"
	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/spf13/cobra"
)

// reposCmd renders one card per repository.
var reposCmd = &cobra.Command{
	Use:   "repos [root-path]",
	Short: "Render one card per repository under a root.",
	Long: `Scan a directory tree for repositories and report each one separately.

Prints a per-repository table followed by the aggregate summary, then stacks
one card per repository into a single image.

Examples:
  # Per-repository cards for the current directory
  gitwrapped repos

  # Export per-repository rows to parquet
  gitwrapped repos ~/src --output parquet --output-file stats.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRepoCards(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot render repository cards", err)
		}
	},
}
