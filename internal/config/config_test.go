package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_defaults(t *testing.T) {
	for _, key := range []string{"FILE_CACHE_MAX_ITEMS", "DEFAULT_MATCH_LIMIT", "LOG_LEVEL", "LOG_FILE", "LOG_COMPRESS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, DefaultFileCacheMaxItems, cfg.FileCacheMaxItems)
	assert.Equal(t, 0, cfg.DefaultMatchLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.True(t, cfg.LogCompress)
}

func TestLoad_overrides(t *testing.T) {
	t.Setenv("FILE_CACHE_MAX_ITEMS", "8")
	t.Setenv("DEFAULT_MATCH_LIMIT", "25")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_COMPRESS", "off")

	cfg := Load()
	assert.Equal(t, 8, cfg.FileCacheMaxItems)
	assert.Equal(t, 25, cfg.DefaultMatchLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogCompress)
}

func TestGetEnvInt_invalidFallsBack(t *testing.T) {
	t.Setenv("FILE_CACHE_MAX_ITEMS", "lots")
	assert.Equal(t, 7, getEnvInt("FILE_CACHE_MAX_ITEMS", 7))
}
