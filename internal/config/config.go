package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/harrison/mdfiles/internal/logger"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory
// when --config is not given.
const DefaultFileName = ".mdfiles.yaml"

// Config represents mdfiles configuration options.
// There is no date field: the target date is per-run input only.
type Config struct {
	// Suffix is the file name ending to match (e.g. ".go", "_test.go").
	// An empty suffix matches every file.
	Suffix string `yaml:"suffix"`

	// Root is the directory traversal starts from
	Root string `yaml:"root"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Exclude lists directory names that are not descended into
	Exclude []string `yaml:"exclude"`

	// MaxDepth limits recursion depth (0 = unlimited, 1 = root dir only)
	MaxDepth int `yaml:"max_depth"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Suffix:   ".go",
		Root:     ".",
		LogLevel: logger.DefaultLevel,
		Exclude:  nil,
		MaxDepth: 0,
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointers distinguish "absent" from "set to the zero value".
	type yamlConfig struct {
		Suffix   *string  `yaml:"suffix"`
		Root     *string  `yaml:"root"`
		LogLevel *string  `yaml:"log_level"`
		Exclude  []string `yaml:"exclude"`
		MaxDepth *int     `yaml:"max_depth"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if yamlCfg.Suffix != nil {
		cfg.Suffix = *yamlCfg.Suffix
	}
	if yamlCfg.Root != nil {
		cfg.Root = *yamlCfg.Root
	}
	if yamlCfg.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(*yamlCfg.LogLevel))
	}
	if yamlCfg.Exclude != nil {
		cfg.Exclude = yamlCfg.Exclude
	}
	if yamlCfg.MaxDepth != nil {
		cfg.MaxDepth = *yamlCfg.MaxDepth
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(suffix, root, logLevel *string, exclude *[]string, maxDepth *int) {
	if suffix != nil {
		c.Suffix = *suffix
	}
	if root != nil {
		c.Root = *root
	}
	if logLevel != nil {
		c.LogLevel = strings.ToLower(strings.TrimSpace(*logLevel))
	}
	if exclude != nil {
		c.Exclude = *exclude
	}
	if maxDepth != nil {
		c.MaxDepth = *maxDepth
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("root cannot be empty")
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}
	for _, name := range c.Exclude {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("exclude entries must be bare directory names, got %q", name)
		}
	}
	return nil
}
