package internal

import (
	"log/slog"
)

// Init loads the configuration and builds the application logger, which
// is also installed as the slog default.
func Init(configFile string) (*Config, *slog.Logger, error) {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return nil, nil, err
	}

	logger := NewLogger(cfg)
	slog.SetDefault(logger)

	return cfg, logger, nil
}
