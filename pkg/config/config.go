// Package config provides configuration management for the tsfix application.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=config.go -destination=mockconfig.gen.go -package=config

// Config represents the application configuration.
type Config struct {
	// Command is the executable used to run the type check.
	Command string `yaml:"command"`
	// Args are the arguments passed to the command.
	Args []string `yaml:"args"`
	// WorkDir is the directory the command runs in and file paths resolve against.
	WorkDir string `yaml:"work_dir"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	LoadConfig(configPath string) (*Config, error)
	DefaultConfig() *Config
}

type realManager struct {
	// No fields needed for basic configuration operations
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the default configuration: `npm run type-check`
// in the current directory.
func (c *realManager) DefaultConfig() *Config {
	return &Config{
		Command: "npm",
		Args:    []string{"run", "type-check"},
		WorkDir: ".",
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Command == "" {
		return ErrEmptyCommand
	}
	if c.WorkDir == "" {
		c.WorkDir = "."
	}
	return nil
}

// LoadConfigWithFallback loads configuration from file with fallback to default.
func LoadConfigWithFallback(configPath string) (*Config, error) {
	manager := NewManager()

	// Try to load from file first
	if config, err := manager.LoadConfig(configPath); err == nil {
		return config, nil
	}

	// Fall back to default configuration
	return manager.DefaultConfig(), nil
}
