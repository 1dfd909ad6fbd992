// Package config provides configuration loading from environment variables
// and command-line arguments.
package config

import (
	"os"
	"strconv"
)

// Defaults for the MCP server front end.
const (
	DefaultFileCacheMaxItems = 64
	DefaultMatchLimitValue   = 0 // unlimited
)

// Config holds the ambient settings shared by both commands.
type Config struct {
	FileCacheMaxItems int // FILE_CACHE_MAX_ITEMS, default 64
	DefaultMatchLimit int // DEFAULT_MATCH_LIMIT, default 0 (unlimited)

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		FileCacheMaxItems: getEnvInt("FILE_CACHE_MAX_ITEMS", DefaultFileCacheMaxItems),
		DefaultMatchLimit: getEnvInt("DEFAULT_MATCH_LIMIT", DefaultMatchLimitValue),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
