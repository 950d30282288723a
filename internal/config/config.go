package config

import (
	"os"
	"strconv"

	"seqsense/internal/errors"
)

// Config represents the complete application configuration. The
// prediction core itself has no configuration surface; everything here
// belongs to the web and admin servers around it.
type Config struct {
	Server    ServerConfig
	Admin     AdminConfig
	History   HistoryConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AdminConfig holds the chi admin/health router settings
type AdminConfig struct {
	Port    string
	Enabled bool
}

// HistoryConfig bounds the in-memory prediction history ring
type HistoryConfig struct {
	Size int
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    envOr("PORT", "8080"),
			GinMode: envOr("GIN_MODE", "release"),
		},
		Admin: AdminConfig{
			Port:    envOr("ADMIN_PORT", "8081"),
			Enabled: envBool("ADMIN_ENABLED", true),
		},
		History: HistoryConfig{
			Size: envInt("HISTORY_SIZE", 50),
		},
		Profiling: ProfilingConfig{
			Enabled: envBool("PPROF_ENABLED", false),
		},
	}
	if cfg.History.Size <= 0 {
		return nil, errors.ConfigInvalid("HISTORY_SIZE must be positive, got %d", cfg.History.Size)
	}
	if cfg.Server.Port == cfg.Admin.Port && cfg.Admin.Enabled {
		return nil, errors.ConfigInvalid("PORT and ADMIN_PORT must differ")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
