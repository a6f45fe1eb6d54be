package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/jonpas/ue4cli/internal/cache"
	"github.com/jonpas/ue4cli/internal/utils"
)

// Default configuration values
const (
	DefaultConfiguration = "Development"
	DefaultVerbose       = false
	DefaultNoCache       = false
)

// Holds the configuration options for ue4cli
type Config struct {
	// Root directory of the Unreal Engine installation
	EngineRoot string

	// UnrealBuildTool platform identifier (e.g., Linux, Win64, Mac)
	Platform string

	// Build configuration (Debug, DebugGame, Development, Shipping, Test)
	Configuration string

	// Directory for the interrogation cache; empty selects the default
	CacheDir string

	// Disable the interrogation cache
	NoCache bool

	// Enable verbose output
	Verbose bool
}

func Load() (*Config, error) {
	cfg := &Config{
		EngineRoot:    viper.GetString("engine_root"),
		Platform:      viper.GetString("platform"),
		Configuration: viper.GetString("configuration"),
		CacheDir:      viper.GetString("cache_dir"),
		NoCache:       viper.GetBool("no-cache"),
		Verbose:       viper.GetBool("verbose"),
	}

	// Apply defaults if not set
	if cfg.Platform == "" {
		cfg.Platform = utils.DefaultPlatform()
	}

	if cfg.Configuration == "" {
		cfg.Configuration = DefaultConfiguration
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.EngineRoot == "" {
		return fmt.Errorf("engine root not specified (set --engine-root, UE4_ROOT, or engine_root in a config file)")
	}

	abs, err := filepath.Abs(c.EngineRoot)
	if err != nil {
		return fmt.Errorf("invalid engine root path: %v", err)
	}

	c.EngineRoot = abs

	// Validate configuration
	if !utils.IsValidConfiguration(c.Configuration) {
		return fmt.Errorf("invalid build configuration: %s", c.Configuration)
	}

	return nil
}

// buildVersionFile is the engine metadata file that identifies one engine build
const buildVersionFile = "Engine/Build/Build.version"

// EngineVersionHash returns a stable identifier for the engine build at
// EngineRoot, used as the outer interrogation cache key
func (c *Config) EngineVersionHash() (string, error) {
	path := filepath.Join(c.EngineRoot, filepath.FromSlash(buildVersionFile))

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("failed to locate %s under %s: %w", buildVersionFile, c.EngineRoot, err)
	}

	hash, err := cache.HashFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", buildVersionFile, err)
	}

	return hash, nil
}
