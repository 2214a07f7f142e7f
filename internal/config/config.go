// Package config provides configuration loading and validation for the CLI.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aktus/pipeline-cli/internal/schemas"
)

//go:embed config.schema.json
var configSchema string

// EnvBaseURL is the environment variable that overrides the base URL when
// no --base-url flag is given. A .env file is honored via godotenv.
const EnvBaseURL = "AKTUS_BASE_URL"

// Config represents the optional CLI configuration file. All fields are
// optional; missing values fall back to flags, env, or defaults.
type Config struct {
	BaseURL  string `json:"base_url,omitempty"`  // API server URL
	Provider string `json:"provider,omitempty"`  // Default provider name for uploads
	Compact  bool   `json:"compact,omitempty"`   // Compact JSON output
	Quiet    bool   `json:"quiet,omitempty"`     // Minimal output
}

// DefaultPath returns the well-known config file location under the user's
// home directory, or "" when the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aktus", "config.json")
}

// Load reads the config file at path. A missing file is not an error and
// yields an empty config; a file that exists but fails schema validation
// or JSON parsing is a hard error, since silently ignoring a typo in a
// config file is worse than refusing to run.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := schemas.ValidateString(configSchema, string(data)); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// ResolveBaseURL applies the base URL precedence chain: explicit flag,
// then environment, then the session's issued URL, then the config file,
// then the built-in default (handled by the API client for "").
func ResolveBaseURL(flagValue, sessionURL string, cfg *Config) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvBaseURL); env != "" {
		return env
	}
	if sessionURL != "" {
		return sessionURL
	}
	if cfg != nil && cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	return ""
}
