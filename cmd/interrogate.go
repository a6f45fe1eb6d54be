package cmd

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jonpas/ue4cli/internal/cache"
	"github.com/jonpas/ue4cli/internal/config"
	"github.com/jonpas/ue4cli/internal/interrogator"
	"github.com/jonpas/ue4cli/internal/ubt"
)

// newInterrogator loads configuration and wires up an interrogator with its
// collaborators. The returned cleanup function closes the cache database.
func newInterrogator(cmd *cobra.Command) (*interrogator.Interrogator, *config.Config, func(), error) {
	cfg, err := config.NewLoader().LoadForCommand(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	level := charmlog.InfoLevel
	if cfg.Verbose {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{Level: level})

	hash, err := cfg.EngineVersionHash()
	if err != nil {
		return nil, nil, nil, err
	}

	var store interrogator.Store
	cleanup := func() {}
	if cfg.NoCache {
		store = cache.NewNull()
	} else {
		c, err := cache.New(cfg.CacheDir)
		if err != nil {
			logger.Warnf("failed to open cache, continuing without: %v", err)
			store = cache.NewNull()
		} else {
			store = c
			cleanup = func() { _ = c.Close() }
		}
	}

	runner := ubt.NewRunner(cfg.EngineRoot)
	i := interrogator.New(cfg.EngineRoot, hash, runner.Run, store, logger)

	return i, cfg, cleanup, nil
}
