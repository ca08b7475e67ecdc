package cmd

import (
	"fmt"

	"github.com/ziadkadry99/on-the-issues/internal/config"
	"github.com/ziadkadry99/on-the-issues/internal/logging"
	"github.com/ziadkadry99/on-the-issues/internal/topic"
)

// loadConfig loads and validates the config, and builds the shared logger from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `onissues init` to create a config file", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	l, err := logging.New(cfg.Log.Level, string(cfg.Log.Format))
	if err != nil {
		return nil, err
	}
	logger = l
	return cfg, nil
}

// loadStore loads and validates the topic dataset named by cfg.
func loadStore(cfg *config.Config) (*topic.Store, error) {
	store, err := topic.LoadStore(cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w\nRun `onissues init` to create a starter dataset", err)
	}
	return store, nil
}
