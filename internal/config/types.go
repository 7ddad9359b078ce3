package config

// Config is the root configuration structure
type Config struct {
	Socket  string    `yaml:"socket" json:"socket" toml:"socket"`    // IPC socket path (default: discovered)
	Timeout string    `yaml:"timeout" json:"timeout" toml:"timeout"` // Per round trip, Go duration syntax
	DryRun  bool      `yaml:"dryRun" json:"dryRun" toml:"dryRun"`    // Decide and print, never run commands
	Log     LogConfig `yaml:"log" json:"log" toml:"log"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level" json:"level" toml:"level"` // debug, info, warn, error
	File  string `yaml:"file" json:"file" toml:"file"`    // Default: ~/.local/state/ringnav/ringnav.log
}
