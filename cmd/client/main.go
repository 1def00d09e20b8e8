package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/levantva/crewcenter/internal/buildinfo"
	"github.com/levantva/crewcenter/internal/client/cli"
	"github.com/levantva/crewcenter/internal/client/config"
	"github.com/levantva/crewcenter/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	log := logging.NewText(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	if cfg.EnvFileErr != nil {
		log.Warn(ctx, "env file not loaded", "error", cfg.EnvFileErr)
	}

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "starting client failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
