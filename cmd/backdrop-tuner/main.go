// Package main is the entry point for the backdrop tuner: the terrain with
// a live parameter panel on top.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-backdrop/internal/backdrop"
	"github.com/Faultbox/terrain-backdrop/internal/config"
	"github.com/Faultbox/terrain-backdrop/internal/engine/ui"
	"github.com/Faultbox/terrain-backdrop/internal/logger"
)

func main() {
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

	logger.Info("=== Terrain Backdrop Tuner ===")

	if err := run(cfg); err != nil {
		logger.Error("tuner error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("tuner closed normally")
}

func run(cfg *config.Config) error {
	shots, err := backdrop.NewScreenshots(cfg)
	if err != nil {
		return err
	}

	s, err := backdrop.NewScene(cfg, logger.Log)
	if err != nil {
		return err
	}
	defer s.Close()

	width, height := int32(cfg.Graphics.Width), int32(cfg.Graphics.Height)
	b, err := ui.NewBackend(windowTitle(s.Tracker.Direction()), width, height)
	if err != nil {
		return fmt.Errorf("creating ui backend: %w", err)
	}

	app := &tuner{
		scene:   s,
		shots:   shots,
		backend: b,
		width:   width,
		height:  height,
		title:   s.Tracker.Direction(),
		log:     logger.Named("tuner"),
	}
	app.panel = ui.NewPanel(s, func() { app.wantScreenshot = true })

	b.OnShutdown(app.release)
	b.Run(app.frame)
	return app.err
}
