package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// APIBaseURL is the edge issue-store API. Empty disables the remote
	// tier entirely; reads then come from the snapshot and writes stay
	// local.
	APIBaseURL string `yaml:"api_base_url,omitempty"`

	// SnapshotURL is the static triage-results document used as the
	// last-resort issue source.
	SnapshotURL string `yaml:"snapshot_url,omitempty"`

	// Repo is the owner/name GitHub repository that comments and labels
	// are posted to.
	Repo string `yaml:"repo,omitempty"`

	DefaultFormat string `yaml:"default_format,omitempty"`
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".triagedesk"
	}
	return filepath.Join(configDir, "triagedesk")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".triagedesk.yaml"
}

// Load loads the configuration from disk.
// It first loads the global config from the XDG config directory, then
// merges any local .triagedesk.yaml on top (local values take precedence).
func Load() (*Config, error) {
	cfg := &Config{
		DefaultFormat: "table",
	}

	globalPath := ConfigPath()
	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}
	}

	localPath := LocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}

		var localCfg Config
		if err := yaml.Unmarshal(data, &localCfg); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}

		cfg = mergeConfig(cfg, &localCfg)
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "table"
	}

	return cfg, nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := &Config{
		APIBaseURL:    global.APIBaseURL,
		SnapshotURL:   global.SnapshotURL,
		Repo:          global.Repo,
		DefaultFormat: global.DefaultFormat,
	}
	if local.APIBaseURL != "" {
		result.APIBaseURL = local.APIBaseURL
	}
	if local.SnapshotURL != "" {
		result.SnapshotURL = local.SnapshotURL
	}
	if local.Repo != "" {
		result.Repo = local.Repo
	}
	if local.DefaultFormat != "" {
		result.DefaultFormat = local.DefaultFormat
	}
	return result
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configDir := DefaultConfigDir()

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetGitHubToken returns the GitHub token from the GITHUB_TOKEN environment
// variable. Following 12-factor app best practices, tokens are only read
// from the environment.
func (c *Config) GetGitHubToken() string {
	return os.Getenv("GITHUB_TOKEN")
}

// SplitRepo splits the configured owner/name repo string.
func (c *Config) SplitRepo() (owner, name string, ok bool) {
	parts := strings.Split(c.Repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# triagedesk configuration file

# Edge issue-store API. Leave unset to work offline from the snapshot.
# api_base_url: https://triage-api.example.workers.dev

# Static triage-results document (fallback issue source)
# snapshot_url: https://example.github.io/triage/data/triage-results.json

# Repository that comments and labels are posted to
# repo: mui/mui-x

# Output format: table or json
default_format: table
`
}
