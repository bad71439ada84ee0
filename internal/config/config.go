package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"open-eyes/internal/logger"
)

// DefaultStorePath is the table store file used when settings name none
const DefaultStorePath = "temp.arrow"

// Config holds the user-tunable application settings
type Config struct {
	LogLevel     string `toml:"log_level"`
	JSONLogs     bool   `toml:"json_logs"`
	StorePath    string `toml:"store_path"`
	EchoContents bool   `toml:"echo_contents"`
}

// Default returns the settings used when no settings file exists
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		StorePath: DefaultStorePath,
	}
}

// Load reads settings from path on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStorePath
	}
	return cfg, nil
}

// Level resolves the effective log level. LOG_LEVEL wins over the settings
// file, and DEBUG=1 forces debug when neither names a valid level.
func (c *Config) Level() logger.LogLevel {
	if level, ok := logger.ParseLevel(os.Getenv("LOG_LEVEL")); ok {
		return level
	}
	if level, ok := logger.ParseLevel(c.LogLevel); ok {
		return level
	}
	if os.Getenv("DEBUG") == "1" {
		return logger.DebugLevel
	}
	return logger.InfoLevel
}
