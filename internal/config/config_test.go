package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".go", cfg.Suffix)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.Exclude)
	assert.Equal(t, 0, cfg.MaxDepth)
	assert.NoError(t, cfg.Validate())
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	path := writeConfig(t, `suffix: .md
root: docs
log_level: Debug
exclude:
  - node_modules
  - vendor
max_depth: 3
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ".md", cfg.Suffix)
	assert.Equal(t, "docs", cfg.Root)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"node_modules", "vendor"}, cfg.Exclude)
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.NoError(t, cfg.Validate())
}

// TestLoadConfigPartialFile keeps defaults for fields the file omits
func TestLoadConfigPartialFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "suffix: _test.go\n"))
	require.NoError(t, err)

	assert.Equal(t, "_test.go", cfg.Suffix)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "warn", cfg.LogLevel)
}

// TestLoadConfigExplicitEmptySuffix distinguishes "set to empty" from "absent"
func TestLoadConfigExplicitEmptySuffix(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "suffix: \"\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Suffix)
	assert.NoError(t, cfg.Validate(), "an empty suffix matches every file")
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/.mdfiles.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "suffix: [unclosed\n"},
		{"wrong type", "max_depth: deep\n"},
		{"exclude not a list", "exclude:\n  name: vendor\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse config file")
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfigUnreadable(t *testing.T) {
	// A directory cannot be read as a file.
	dir := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.Mkdir(dir, 0755))

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestMergeWithFlags(t *testing.T) {
	t.Run("nil flags keep config values", func(t *testing.T) {
		cfg := &Config{Suffix: ".md", Root: "docs", LogLevel: "info", Exclude: []string{"a"}, MaxDepth: 2}
		cfg.MergeWithFlags(nil, nil, nil, nil, nil)

		assert.Equal(t, &Config{Suffix: ".md", Root: "docs", LogLevel: "info", Exclude: []string{"a"}, MaxDepth: 2}, cfg)
	})

	t.Run("set flags override config values", func(t *testing.T) {
		cfg := DefaultConfig()
		suffix, root, level := ".rs", "src", "TRACE"
		exclude := []string{"target"}
		depth := 1

		cfg.MergeWithFlags(&suffix, &root, &level, &exclude, &depth)

		assert.Equal(t, ".rs", cfg.Suffix)
		assert.Equal(t, "src", cfg.Root)
		assert.Equal(t, "trace", cfg.LogLevel)
		assert.Equal(t, []string{"target"}, cfg.Exclude)
		assert.Equal(t, 1, cfg.MaxDepth)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "empty suffix matches everything", mutate: func(c *Config) { c.Suffix = "" }},
		{name: "empty root", mutate: func(c *Config) { c.Root = "" }, wantErr: "root cannot be empty"},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log_level"},
		{name: "negative depth", mutate: func(c *Config) { c.MaxDepth = -1 }, wantErr: "max_depth must be >= 0"},
		{name: "exclude with path", mutate: func(c *Config) { c.Exclude = []string{"a/b"} }, wantErr: "bare directory names"},
		{name: "exclude empty", mutate: func(c *Config) { c.Exclude = []string{""} }, wantErr: "bare directory names"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
