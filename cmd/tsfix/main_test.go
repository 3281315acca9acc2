//go:build unit

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsfix/pkg/config"
)

func TestLoadConfig_ExplicitPathMustExist(t *testing.T) {
	originalConfigPath := configPath
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { configPath = originalConfigPath }()

	_, err := loadConfig()
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("command: npx\nargs: [tsc, --noEmit]\n"), 0644))

	originalConfigPath := configPath
	configPath = path
	defer func() { configPath = originalConfigPath }()

	cfg, err := loadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "npx", cfg.Command)
}

func TestNewLogger_QuietSelectsNoop(t *testing.T) {
	originalQuiet := quiet
	defer func() { quiet = originalQuiet }()

	quiet = true
	logger := newLogger()

	// Noop logger must swallow output without panicking
	logger.Logf("should not appear")
}
