// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/gitwrapped/schema"
)

// GitClient defines the Git operations needed to extract repository statistics.
// This allows the core extraction logic to be tested without needing a real git executable.
type GitClient interface {
	// Run executes a git command inside repoPath and returns its stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetCommitDates returns one ISO-8601 committer timestamp per line for every
	// commit whose committer date lies within [startTime, endTime].
	GetCommitDates(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]byte, error)
}

// StatsWriter prints the textual summary of a run.
type StatsWriter interface {
	// WriteSummary prints the aggregate of a run.
	WriteSummary(agg schema.AggregateStat, cfg *Config, duration time.Duration) error

	// WriteRepos prints every repository record followed by the aggregate.
	WriteRepos(stats []schema.RepoStat, agg schema.AggregateStat, cfg *Config, duration time.Duration) error
}

// CardRenderer draws statistics as raster cards and writes them to disk.
type CardRenderer interface {
	// RenderGlobal writes a single card for the aggregate.
	RenderGlobal(agg schema.AggregateStat, path string) error

	// RenderRepos writes one card per repository, stacked vertically.
	RenderRepos(stats []schema.RepoStat, path string) error
}
