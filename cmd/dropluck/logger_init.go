package main

import (
	"github.com/osse101/DropLuck_Go/internal/config"
	"github.com/osse101/DropLuck_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only in dev
	lc := cfg.LoggerConfig()
	lc.AddSource = cfg.Environment == logger.EnvironmentDev

	logger.InitLogger(lc)
}
