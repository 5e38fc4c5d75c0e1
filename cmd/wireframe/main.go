// Package main is the entry point for the wireframe renderer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/internal/app"
	"github.com/Faultbox/wireframe/internal/config"
	"github.com/Faultbox/wireframe/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Wireframe Renderer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the renderer
	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create renderer", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	// Run the frame loop
	if err := a.Run(); err != nil {
		logger.Error("renderer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("renderer closed normally")
}
