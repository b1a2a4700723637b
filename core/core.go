// Package core has core logic for scanning, extraction and aggregation.
package core

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/internal/outwriter"
	"github.com/huangsam/gitwrapped/internal/render"
	"github.com/huangsam/gitwrapped/schema"
)

// ExecutorFunc defines the function signature for executing the card commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteGlobalCard scans cfg.RootPath, prints the summary and renders one
// card for the whole year. It serves as the main entry point for 'card'.
func ExecuteGlobalCard(ctx context.Context, cfg *contract.Config) error {
	return executeLayout(ctx, cfg, schema.GlobalLayout)
}

// ExecuteRepoCards scans cfg.RootPath, prints every repository and renders
// one card per repository. It serves as the main entry point for 'repos'.
func ExecuteRepoCards(ctx context.Context, cfg *contract.Config) error {
	return executeLayout(ctx, cfg, schema.RepoLayout)
}

func executeLayout(ctx context.Context, cfg *contract.Config, layout schema.CardLayout) error {
	client := contract.NewLocalGitClient(cfg.GitTimeout)
	return RunCards(ctx, cfg, layout, client, outwriter.NewOutWriter(), render.NewRenderer(cfg.Render))
}

// RunCards is the full pipeline with every collaborator injected:
// scan, extract, aggregate, write the summary, then render the card image.
func RunCards(
	ctx context.Context,
	cfg *contract.Config,
	layout schema.CardLayout,
	client contract.GitClient,
	writer contract.StatsWriter,
	renderer contract.CardRenderer,
) error {
	start := time.Now()
	out := progressOut(ctx, cfg)
	logRunHeader(out, cfg)

	stats, err := CollectStats(ctx, cfg, client)
	if err != nil {
		return err
	}
	agg := Aggregate(cfg.Year, stats)
	duration := time.Since(start)

	switch layout {
	case schema.RepoLayout:
		if err := writer.WriteRepos(stats, agg, cfg, duration); err != nil {
			return err
		}
		if err := renderer.RenderRepos(stats, cfg.ImageFile); err != nil {
			return err
		}
	default:
		if err := writer.WriteSummary(agg, cfg, duration); err != nil {
			return err
		}
		if err := renderer.RenderGlobal(agg, cfg.ImageFile); err != nil {
			return err
		}
	}
	logImageSaved(out, cfg.ImageFile)
	return nil
}

// CollectStats extracts statistics for every repository under cfg.RootPath, in
// scan order. A repository that fails with a git, timestamp or file system
// error is logged and skipped; any other error aborts the run.
func CollectStats(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]schema.RepoStat, error) {
	repos, err := ScanRepos(cfg.RootPath, cfg.Marker)
	if err != nil {
		return nil, err
	}

	out := progressOut(ctx, cfg)
	var results []schema.RepoStat
	for repoPath := range repos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logRepoProgress(out, repoPath)
		stat, err := ExtractRepoStat(ctx, cfg, client, repoPath)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if !isRecoverable(err) {
				return nil, err
			}
			contract.LogRepoError(repoPath, err)
			continue
		}
		results = append(results, stat)
	}
	return results, nil
}

// CollectAggregate runs CollectStats and aggregates the result for cfg.Year.
func CollectAggregate(ctx context.Context, cfg *contract.Config, client contract.GitClient) (schema.AggregateStat, []schema.RepoStat, error) {
	stats, err := CollectStats(ctx, cfg, client)
	if err != nil {
		return schema.AggregateStat{}, nil, err
	}
	return Aggregate(cfg.Year, stats), stats, nil
}

// isRecoverable reports whether a per-repository error only affects that repository.
func isRecoverable(err error) bool {
	var pathErr *fs.PathError
	return errors.Is(err, contract.ErrGitCommand) ||
		errors.Is(err, contract.ErrMalformedTimestamp) ||
		errors.Is(err, contract.ErrFileSystem) ||
		errors.As(err, &pathErr)
}
