// Command minigrep prints the lines of a file that contain a query.
//
//	minigrep <query> <filename> [case_insensitive]
//
// Case-insensitive matching is enabled by a third argument of exactly "true",
// or, when that argument is absent, by setting CASE_INSENSITIVE to any value.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/usestring/minigrep/internal/config"
	"github.com/usestring/minigrep/internal/logging"
	"github.com/usestring/minigrep/internal/runner"
)

const usage = "usage: minigrep <query> <filename> [case_insensitive]"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	// Logging is configured from LOG_* environment variables and goes to
	// stderr (or LOG_FILE), never stdout.
	logCleanup, err := logging.Setup(logging.FromConfig(config.Load()))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logging:", err)
		os.Exit(exitError)
	}

	code := exitCode(run(context.Background(), os.Stdout, os.Args), os.Stderr)
	_ = logCleanup()
	os.Exit(code)
}

// run encapsulates the main application logic for easier testing.
func run(ctx context.Context, stdout io.Writer, args []string) error {
	cfg, err := config.SearchConfigFromOS(args)
	if err != nil {
		return err
	}
	return runner.Run(ctx, cfg, runner.ReadFile, stdout)
}

// exitCode reports err and maps it to a process exit status.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrInsufficientArguments):
		slog.Error("problem parsing arguments", "error", err)
		fmt.Fprintln(stderr, usage)
		return exitUsage
	default:
		slog.Error("application error", "error", err)
		return exitError
	}
}
