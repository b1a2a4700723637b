// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

var _ contract.StatsWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummary prints the aggregate using the configured output format.
func (ow *OutWriter) WriteSummary(agg schema.AggregateStat, cfg *contract.Config, duration time.Duration) error {
	return PrintSummary(agg, cfg, duration)
}

// WriteRepos prints every repository and the aggregate using the configured output format.
func (ow *OutWriter) WriteRepos(stats []schema.RepoStat, agg schema.AggregateStat, cfg *contract.Config, duration time.Duration) error {
	return PrintRepoStats(stats, agg, cfg, duration)
}
