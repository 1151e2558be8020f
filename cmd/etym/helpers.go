package main

import (
	"fmt"

	"github.com/at-ishikawa/etym/internal/config"
)

// loadConfig loads the configuration file and validates it again after
// applying command line overrides.
func loadConfig(overrides ...func(cfg *config.Config)) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	for _, override := range overrides {
		override(cfg)
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
