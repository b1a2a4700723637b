package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/gitwrapped/core"
	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/internal/render"
	"github.com/huangsam/gitwrapped/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

// configFor clones the base config, applying the optional year and root arguments.
func (h *toolHandler) configFor(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if y := request.GetInt("year", 0); y != 0 {
		if err := contract.ValidateYear(y); err != nil {
			return nil, err
		}
		cfg = cfg.CloneWithYear(y)
	}
	if root := request.GetString("root", ""); root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve root %q: %w", root, err)
		}
		cfg.RootPath = abs
	}
	return cfg, nil
}

func (h *toolHandler) handleGetRepoStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	path := request.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}
	repoPath, err := filepath.Abs(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid path: %v", err)), nil
	}
	if info, err := os.Stat(filepath.Join(repoPath, cfg.Marker)); err != nil || !info.IsDir() {
		return mcp.NewToolResultError(fmt.Sprintf("%s is not a repository (no %s directory)", repoPath, cfg.Marker)), nil
	}

	stat, err := core.ExtractRepoStat(ctx, cfg, h.client, repoPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("extraction failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(stat, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetAggregateStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	agg, stats, err := core.CollectAggregate(core.WithQuietProgress(ctx), cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("collection failed: %v", err)), nil
	}

	var payload any = agg
	if request.GetBool("include_repos", false) {
		if stats == nil {
			stats = []schema.RepoStat{}
		}
		payload = struct {
			Aggregate schema.AggregateStat `json:"aggregate"`
			Repos     []schema.RepoStat    `json:"repos"`
		}{agg, stats}
	}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRenderCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	image := request.GetString("image", "")
	if image == "" {
		return mcp.NewToolResultError("image is required"), nil
	}
	if _, ok := schema.ImageFormatFromPath(image); !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %q", contract.ErrUnsupportedFormat, image)), nil
	}

	agg, stats, err := core.CollectAggregate(core.WithQuietProgress(ctx), cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("collection failed: %v", err)), nil
	}

	renderer := render.NewRenderer(cfg.Render)
	if request.GetBool("per_repo", false) {
		err = renderer.RenderRepos(stats, image)
	} else {
		err = renderer.RenderGlobal(agg, image)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rendering failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Image saved to %s (%d repositories, %d commits in %d)",
		image, agg.Repos, agg.TotalCommits, agg.Year)), nil
}
