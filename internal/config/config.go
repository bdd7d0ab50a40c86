// Package config loads the tool's optional TOML configuration and resolves
// the GitHub token. Precedence: --token flag, then the GITHUB_TOKEN
// environment variable, then the config file. The token is always passed
// explicitly into the API client; nothing reads ambient state past this
// package.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvToken is the environment variable consulted for the GitHub token.
const EnvToken = "GITHUB_TOKEN"

// defaultPerPage is the per-page record count used when unconfigured.
const defaultPerPage = 100

// Config holds the file-backed settings.
type Config struct {
	// Token is a GitHub personal access token.
	Token string `toml:"token"`

	// PerPage overrides the per-page record count for API requests.
	PerPage int `toml:"per_page"`
}

// DefaultPath returns the default config file location,
// ~/.repominer/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".repominer", "config.toml"), nil
}

// Load reads a TOML config file. A missing file is not an error: the tool
// runs fine on flags and environment alone.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveToken applies the precedence chain: flag, environment, config file.
func (c Config) ResolveToken(flagToken string) string {
	if flagToken != "" {
		return flagToken
	}
	if env := os.Getenv(EnvToken); env != "" {
		return env
	}
	return c.Token
}

// PageSize returns the configured per-page count, defaulting to 100.
func (c Config) PageSize() int {
	if c.PerPage > 0 {
		return c.PerPage
	}
	return defaultPerPage
}
