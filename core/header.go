package core

import (
	"context"
	"io"
	"os"

	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/schema"
)

// progressOut picks where progress lines go. Machine-readable output on stdout
// must stay clean, so progress moves to stderr in that case.
func progressOut(ctx context.Context, cfg *contract.Config) io.Writer {
	switch {
	case shouldSuppressHeader(ctx):
		return io.Discard
	case cfg.Output == schema.TextOut || cfg.OutputFile != "":
		return os.Stdout
	default:
		return os.Stderr
	}
}

// logRunHeader prints a concise, 2-line header for a run.
func logRunHeader(w io.Writer, cfg *contract.Config) {
	_, _ = contract.HeaderColor.Fprintf(w, "🔎 Root: %s (Year: %d)\n", cfg.RootPath, cfg.Year)
	_, _ = contract.HeaderColor.Fprintf(w, "📅 Range: %s → %s\n",
		cfg.StartTime.Format(contract.DateTimeFormat),
		cfg.EndTime.Format(contract.DateTimeFormat))
}

// logRepoProgress prints one line per repository as it is processed.
func logRepoProgress(w io.Writer, repoPath string) {
	_, _ = contract.ProgressColor.Fprintf(w, "Processing repository: %s\n", repoPath)
}

// logImageSaved confirms where a card was written.
func logImageSaved(w io.Writer, path string) {
	_, _ = contract.SuccessColor.Fprintf(w, "🖼️  Image saved to %s\n", path)
}
