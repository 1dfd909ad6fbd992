package tools

import (
	"context"

	"github.com/usestring/minigrep/internal/cache"
	"github.com/usestring/minigrep/internal/config"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Config *config.Config
	Files  *cache.FileCache

	// LookupEnv resolves CASE_INSENSITIVE when a call does not say. It has the
	// signature of os.LookupEnv; nil means the variable is treated as unset.
	LookupEnv func(string) (string, bool)
}

// LoadFile returns a file's text through the shared file cache.
func (d *Deps) LoadFile(ctx context.Context, path string) (string, error) {
	return d.Files.Load(ctx, path)
}

// resolveCaseInsensitive applies the CLI precedence: an explicit value wins,
// otherwise the CASE_INSENSITIVE environment variable decides.
func (d *Deps) resolveCaseInsensitive(explicit *bool) bool {
	if explicit != nil {
		return *explicit
	}
	if d.LookupEnv == nil {
		return false
	}
	_, ok := d.LookupEnv(config.CaseInsensitiveEnv)
	return ok
}
