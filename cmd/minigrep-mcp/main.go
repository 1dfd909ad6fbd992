// Command minigrep-mcp serves the minigrep search tools over MCP on stdio.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/usestring/minigrep/internal/cache"
	"github.com/usestring/minigrep/internal/config"
	"github.com/usestring/minigrep/internal/logging"
	"github.com/usestring/minigrep/internal/mcp"
	"github.com/usestring/minigrep/internal/mcp/tools"
)

func main() {
	// Set up context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Configuration is loaded from environment variables:
	// - LOG_LEVEL: debug, info, warn, error (default: info)
	// - LOG_FILE: path to log file (default: stderr only)
	// - FILE_CACHE_MAX_ITEMS, DEFAULT_MATCH_LIMIT (see internal/config)
	// - CASE_INSENSITIVE: default matching mode for calls that do not set it
	cfg := config.Load()

	logCleanup, err := logging.Setup(logging.FromConfig(cfg))
	if err != nil {
		slog.Error("failed to setup logging", "error", err)
		os.Exit(1)
	}
	defer logCleanup()

	files, err := cache.NewFileCache(cfg.FileCacheMaxItems)
	if err != nil {
		slog.Error("failed to create file cache", "error", err)
		os.Exit(1)
	}

	server, err := mcp.NewServer(&tools.Deps{
		Config:    cfg,
		Files:     files,
		LookupEnv: os.LookupEnv,
	}, mcp.WithBuiltinTools())
	if err != nil {
		slog.Error("failed to create MCP server", "error", err)
		os.Exit(1)
	}

	slog.Info("starting minigrep MCP server on stdio")
	if err := server.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
