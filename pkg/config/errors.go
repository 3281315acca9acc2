package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound = errors.New("config file not found")
	// Configuration validation errors.
	ErrEmptyCommand = errors.New("command cannot be empty")
)
