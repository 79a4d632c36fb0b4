package app

import (
	"github.com/signcraft/sheet-pricing-service/config"
	"github.com/signcraft/sheet-pricing-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from configuration.
func InitializeLogger(cfg config.LoggingConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
