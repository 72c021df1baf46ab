// Package main is the entry point for the kiosk backdrop.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-backdrop/internal/backdrop"
	"github.com/Faultbox/terrain-backdrop/internal/config"
	"github.com/Faultbox/terrain-backdrop/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Terrain Backdrop ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	b, err := backdrop.New(cfg)
	if err != nil {
		logger.Error("failed to create backdrop", zap.Error(err))
		os.Exit(1)
	}
	defer b.Close()

	if err := b.Run(); err != nil {
		logger.Error("backdrop error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("backdrop closed normally")
}
