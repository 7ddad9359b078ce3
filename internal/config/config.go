package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir = ".config/ringnav"
	DefaultTimeout   = 5 * time.Second
	DefaultLogLevel  = "info"
)

// defaultFiles are tried in order when no path is given
var defaultFiles = []string{"config.yaml", "config.yml", "config.json", "config.toml"}

// LoadConfig loads configuration from the specified path or default location.
// If path is empty, the first existing file in ~/.config/ringnav is used and
// a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Config{}, nil
		}
		path = FindConfigFile(filepath.Join(home, DefaultConfigDir))
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return LoadConfigFromBytes(data, ext)
}

// FindConfigFile returns the first default config file present in dir, or ""
func FindConfigFile(dir string) string {
	for _, name := range defaultFiles {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// LoadConfigFromBytes loads configuration from raw bytes
// format should be "yaml", "json" or "toml"
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	var cfg Config

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// GetConfigPath returns the default YAML config file path
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, defaultFiles[0])
}

// GetTimeout returns the IPC timeout
// Returns 5s as default if not configured
func (c *Config) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// GetLogLevel returns the configured log level or "info"
func (c *Config) GetLogLevel() string {
	if c.Log.Level == "" {
		return DefaultLogLevel
	}
	return strings.ToLower(c.Log.Level)
}
