package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// EnvVar names the environment variable holding an explicit config path.
const EnvVar = "NAKA_CONFIG"

// Config holds the CLI configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	REPL    REPLConfig    `toml:"repl"`
}

// GeneralConfig holds settings shared by every command.
type GeneralConfig struct {
	LogLevel   string `toml:"log_level"`
	SourceName string `toml:"source_name"`
}

// REPLConfig holds interactive session settings.
type REPLConfig struct {
	Prompt       string `toml:"prompt"`
	HistoryLimit int    `toml:"history_limit"`
	ShowTokens   bool   `toml:"show_tokens"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by NAKA_CONFIG, falling back to
// ./naka.toml and the user config directory. Having no file at all is not
// an error; defaults are returned instead.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./naka.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "nakascript", "config.toml"))
	}
	return paths
}

func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.SourceName == "" {
		c.General.SourceName = "<stdin>"
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "naka> "
	}
	if c.REPL.HistoryLimit <= 0 {
		c.REPL.HistoryLimit = 200
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses General.LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.General.LogLevel)
	if err != nil {
		return logrus.WarnLevel, errors.Join(fmt.Errorf("invalid log_level %q", c.General.LogLevel), err)
	}
	return level, nil
}
