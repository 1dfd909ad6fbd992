// Package runner wires a SearchConfig to a file, the search engine and an
// output stream.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/usestring/minigrep/internal/config"
	"github.com/usestring/minigrep/internal/textfile"
	"github.com/usestring/minigrep/pkg/linesearch"
)

// Loader returns the full text of the file at path.
type Loader func(ctx context.Context, path string) (string, error)

// ReadFile is a Loader that reads from disk on every call.
func ReadFile(_ context.Context, path string) (string, error) {
	return textfile.Read(path)
}

// Run loads cfg.Filename, searches it and writes each matching line to w.
// Nothing is written if loading fails.
func Run(ctx context.Context, cfg *config.SearchConfig, load Loader, w io.Writer) error {
	text, err := load(ctx, cfg.Filename)
	if err != nil {
		return err
	}

	results := linesearch.Run(cfg.Query, text, cfg.CaseInsensitive)

	slog.Debug("search completed",
		slog.String("query", cfg.Query),
		slog.String("file", cfg.Filename),
		slog.Bool("case_insensitive", cfg.CaseInsensitive),
		slog.Int("matches", len(results)),
	)

	var sb strings.Builder
	for _, line := range results {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
