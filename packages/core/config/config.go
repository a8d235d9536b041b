package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the green configuration
type Config struct {
	Renderer   string   `yaml:"renderer,omitempty"` // auto, text or html
	NoColor    *bool    `yaml:"noColor,omitempty"`
	OutputFile string   `yaml:"outputFile,omitempty"`
	Addr       string   `yaml:"addr,omitempty"` // listen address for green serve
	Suites     []string `yaml:"suites,omitempty"`
}

// BoolPtr returns a pointer to a bool value
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".green.yaml",
	"green.yaml",
	".greenrc",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Validate rejects unknown renderer names.
func (c *Config) Validate() error {
	switch c.Renderer {
	case "", RendererAuto, "text", "html":
		return nil
	}
	return fmt.Errorf("unknown renderer %q", c.Renderer)
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c

	if other.Renderer != "" {
		result.Renderer = other.Renderer
	}
	if other.OutputFile != "" {
		result.OutputFile = other.OutputFile
	}
	if other.Addr != "" {
		result.Addr = other.Addr
	}

	// Only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	if len(other.Suites) > 0 {
		result.Suites = other.Suites
	}

	return &result
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
