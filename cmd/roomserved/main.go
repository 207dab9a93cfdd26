// Package main is the roomforge HTTP service entry point.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/loftlab/roomforge/internal/assets"
	"github.com/loftlab/roomforge/internal/config"
	"github.com/loftlab/roomforge/internal/logger"
	"github.com/loftlab/roomforge/internal/scene"
	"github.com/loftlab/roomforge/internal/server"
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

	builder := scene.NewBuilder(assets.NewManager(cfg.Assets.Dir), logger.Log)
	app := server.New(cfg.Server, builder)

	logger.Info("starting roomforge service",
		zap.String("listen", cfg.Server.Listen),
		zap.String("assets", cfg.Assets.Dir))

	if err := app.Listen(cfg.Server.Listen); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}
