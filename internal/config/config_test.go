package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonpas/ue4cli/internal/utils"
)

func TestLoad(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	engineRoot := t.TempDir()
	viper.Set("engine_root", engineRoot)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, engineRoot, cfg.EngineRoot)
	assert.Equal(t, utils.DefaultPlatform(), cfg.Platform)
	assert.Equal(t, DefaultConfiguration, cfg.Configuration)
	assert.False(t, cfg.NoCache)
	assert.False(t, cfg.Verbose)
}

func TestLoadMissingEngineRoot(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine root")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		configuration string
		wantErr       bool
	}{
		{"development", "Development", false},
		{"shipping", "Shipping", false},
		{"debug game", "DebugGame", false},
		{"lowercase rejected", "development", true},
		{"unknown rejected", "Release", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := &Config{
				EngineRoot:    t.TempDir(),
				Platform:      "Linux",
				Configuration: test.configuration,
			}

			err := cfg.Validate()
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateResolvesEngineRoot(t *testing.T) {
	cfg := &Config{
		EngineRoot:    ".",
		Configuration: "Development",
	}

	err := cfg.Validate()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.EngineRoot))
}

func TestEngineVersionHash(t *testing.T) {
	engineRoot := t.TempDir()
	versionDir := filepath.Join(engineRoot, "Engine", "Build")
	require.NoError(t, os.MkdirAll(versionDir, 0o755))

	versionFile := filepath.Join(versionDir, "Build.version")
	err := os.WriteFile(versionFile, []byte(`{"MajorVersion": 4, "MinorVersion": 27}`), 0o644)
	require.NoError(t, err)

	cfg := &Config{EngineRoot: engineRoot, Configuration: "Development"}

	hash1, err := cfg.EngineVersionHash()
	require.NoError(t, err)
	assert.Len(t, hash1, 64)

	// Same engine build, same hash
	hash2, err := cfg.EngineVersionHash()
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2)

	// Different engine build, different hash
	err = os.WriteFile(versionFile, []byte(`{"MajorVersion": 5, "MinorVersion": 0}`), 0o644)
	require.NoError(t, err)

	hash3, err := cfg.EngineVersionHash()
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash3)
}

func TestEngineVersionHashMissingFile(t *testing.T) {
	cfg := &Config{EngineRoot: t.TempDir(), Configuration: "Development"}

	_, err := cfg.EngineVersionHash()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Build.version")
}
