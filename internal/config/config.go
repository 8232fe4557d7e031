// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"arena/internal/models"
)

// EnvPath overrides the config file location
const EnvPath = "ARENA_CONFIG"

// Output formats for the run command
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

const (
	defaultMinSize       = 4
	defaultMaxSize       = 5
	defaultMaxImageBytes = 5 << 20
	defaultWidth         = 100
)

var defaultCohort = []string{"gpt-4o", "claude-3-5-sonnet", "gemini-2-flash", "llama-4-vision"}

type Config struct {
	Cohort struct {
		Default []string `yaml:"default"`
		MinSize int      `yaml:"min_size"`
		MaxSize int      `yaml:"max_size"`
	} `yaml:"cohort"`
	Prompt struct {
		DefaultType   string `yaml:"default_type"`
		MaxImageBytes int64  `yaml:"max_image_bytes"`
	} `yaml:"prompt"`
	Output struct {
		Format    string `yaml:"format"`
		ExportDir string `yaml:"export_dir,omitempty"`
		Width     int    `yaml:"width"`
	} `yaml:"output"`
}

// Load reads the config from ConfigPath, falling back to defaults when the
// file does not exist.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables in config
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Cohort.Default = append([]string(nil), defaultCohort...)
	cfg.Cohort.MinSize = defaultMinSize
	cfg.Cohort.MaxSize = defaultMaxSize
	cfg.Prompt.DefaultType = string(models.PromptText)
	cfg.Prompt.MaxImageBytes = defaultMaxImageBytes
	cfg.Output.Format = FormatTable
	cfg.Output.Width = defaultWidth
	return cfg
}

func applyDefaults(cfg *Config) {
	if len(cfg.Cohort.Default) == 0 {
		cfg.Cohort.Default = append([]string(nil), defaultCohort...)
	}
	if cfg.Cohort.MinSize == 0 {
		cfg.Cohort.MinSize = defaultMinSize
	}
	if cfg.Cohort.MaxSize == 0 {
		cfg.Cohort.MaxSize = defaultMaxSize
	}
	if cfg.Prompt.DefaultType == "" {
		cfg.Prompt.DefaultType = string(models.PromptText)
	}
	if cfg.Prompt.MaxImageBytes == 0 {
		cfg.Prompt.MaxImageBytes = defaultMaxImageBytes
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatTable
	}
	if cfg.Output.Width == 0 {
		cfg.Output.Width = defaultWidth
	}
}

// Validate rejects settings the run command could not honor.
func (c *Config) Validate() error {
	if c.Cohort.MinSize < 1 {
		return fmt.Errorf("cohort.min_size must be at least 1, got %d", c.Cohort.MinSize)
	}
	if c.Cohort.MinSize > c.Cohort.MaxSize {
		return fmt.Errorf("cohort.min_size %d exceeds cohort.max_size %d", c.Cohort.MinSize, c.Cohort.MaxSize)
	}
	if _, ok := models.ParsePromptType(c.Prompt.DefaultType); !ok {
		return fmt.Errorf("prompt.default_type %q is not one of text, image, multimodal", c.Prompt.DefaultType)
	}
	if c.Prompt.MaxImageBytes < 0 {
		return fmt.Errorf("prompt.max_image_bytes must not be negative")
	}
	switch c.Output.Format {
	case FormatTable, FormatMarkdown, FormatJSON:
	default:
		return fmt.Errorf("output.format %q is not one of table, markdown, json", c.Output.Format)
	}
	if _, err := models.NewRegistry().Cohort(c.Cohort.Default); err != nil {
		return fmt.Errorf("cohort.default: %w", err)
	}
	return nil
}

// PromptType returns the parsed default prompt type
func (c *Config) PromptType() models.PromptType {
	t, ok := models.ParsePromptType(c.Prompt.DefaultType)
	if !ok {
		return models.PromptText
	}
	return t
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func ConfigPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	configDir, _ := os.UserConfigDir()
	if configDir == "" {
		configDir = os.ExpandEnv("$HOME/.config")
	}
	return filepath.Join(configDir, "arena", "config.yaml")
}
