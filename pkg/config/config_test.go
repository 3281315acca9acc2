//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Command: "npm",
				Args:    []string{"run", "type-check"},
				WorkDir: ".",
			},
			wantErr: false,
		},
		{
			name: "empty command",
			config: &Config{
				Command: "",
			},
			wantErr: true,
		},
		{
			name: "empty work dir defaults to current directory",
			config: &Config{
				Command: "tsc",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptyCommand)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, tt.config.WorkDir)
			}
		})
	}
}

func TestRealManager_DefaultConfig(t *testing.T) {
	manager := NewManager()
	config := manager.DefaultConfig()

	assert.NotNil(t, config)
	assert.Equal(t, "npm", config.Command)
	assert.Equal(t, []string{"run", "type-check"}, config.Args)
	assert.Equal(t, ".", config.WorkDir)
}

func TestRealManager_LoadConfig(t *testing.T) {
	manager := NewManager()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "command: npx\nargs: [tsc, --noEmit]\nwork_dir: /tmp/project\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	config, err := manager.LoadConfig(configPath)
	assert.NoError(t, err)
	assert.Equal(t, "npx", config.Command)
	assert.Equal(t, []string{"tsc", "--noEmit"}, config.Args)
	assert.Equal(t, "/tmp/project", config.WorkDir)
}

func TestRealManager_LoadConfig_NotFound(t *testing.T) {
	manager := NewManager()

	_, err := manager.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestRealManager_LoadConfig_InvalidYAML(t *testing.T) {
	manager := NewManager()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("command: [broken"), 0644))

	_, err := manager.LoadConfig(configPath)
	assert.Error(t, err)
}

func TestLoadConfigWithFallback(t *testing.T) {
	// Missing file falls back to defaults
	config, err := LoadConfigWithFallback(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, "npm", config.Command)

	// Existing file wins over defaults
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("command: yarn\nargs: [type-check]\n"), 0644))

	config, err = LoadConfigWithFallback(configPath)
	assert.NoError(t, err)
	assert.Equal(t, "yarn", config.Command)
}
