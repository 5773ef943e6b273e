// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// logLevels are the values accepted for LOG_LEVEL.
var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// FeedsDir is a directory of *.json feed files to serve.
	// Empty means the data set embedded in the binary.
	FeedsDir string

	// OPMLTitle is the <title> of exported OPML documents. Defaults to "RSS Feeds".
	OPMLTitle string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every variable that holds an invalid value.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		FeedsDir:    os.Getenv("FEEDS_DIR"),
		OPMLTitle:   getEnv("OPML_TITLE", "RSS Feeds"),
	}

	var invalid []string

	if !slices.Contains(logLevels, cfg.LogLevel) {
		invalid = append(invalid, fmt.Sprintf("LOG_LEVEL=%q (want one of %s)", cfg.LogLevel, strings.Join(logLevels, ", ")))
	}
	if cfg.FeedsDir != "" {
		if info, err := os.Stat(cfg.FeedsDir); err != nil || !info.IsDir() {
			invalid = append(invalid, fmt.Sprintf("FEEDS_DIR=%q (not a directory)", cfg.FeedsDir))
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
