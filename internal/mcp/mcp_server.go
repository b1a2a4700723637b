// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitwrapped MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Git Wrapped Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: get_repo_stats ---
	s.AddTool(mcp.NewTool("get_repo_stats",
		mcp.WithDescription("Yearly commit statistics of a single Git repository: commits, most active month and weekday, top file extension."),
		mcp.WithString("path", mcp.Description("Path to the Git repository."), mcp.Required()),
		mcp.WithNumber("year", mcp.Description("Calendar year to summarize. Defaults to the configured year.")),
	), h.handleGetRepoStats)

	// --- 2. Tool: get_aggregate_stats ---
	s.AddTool(mcp.NewTool("get_aggregate_stats",
		mcp.WithDescription("Scan a directory tree for Git repositories and aggregate their yearly statistics."),
		mcp.WithString("root", mcp.Description("Directory to scan (defaults to the configured root).")),
		mcp.WithNumber("year", mcp.Description("Calendar year to summarize.")),
		mcp.WithBoolean("include_repos", mcp.Description("Also return the per-repository statistics.")),
	), h.handleGetAggregateStats)

	// --- 3. Tool: render_card ---
	s.AddTool(mcp.NewTool("render_card",
		mcp.WithDescription("Scan a directory tree and render the yearly statistics as a card image."),
		mcp.WithString("image", mcp.Description("Output image path; the extension selects the format (png, jpg, gif, bmp, tiff)."), mcp.Required()),
		mcp.WithString("root", mcp.Description("Directory to scan (defaults to the configured root).")),
		mcp.WithNumber("year", mcp.Description("Calendar year to summarize.")),
		mcp.WithBoolean("per_repo", mcp.Description("Render one card per repository instead of a single global card.")),
	), h.handleRenderCard)

	return s
}

// StartMCPServer starts the gitwrapped MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg, contract.NewLocalGitClient(baseCfg.GitTimeout))
	return server.ServeStdio(s)
}
