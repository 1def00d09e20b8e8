package main

import (
	"context"
	"flag"
	"os"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/levantva/crewcenter/internal/buildinfo"
	"github.com/levantva/crewcenter/internal/flagx"
	"github.com/levantva/crewcenter/internal/logging"
	"github.com/levantva/crewcenter/internal/server"
	"github.com/levantva/crewcenter/internal/server/config"

	gs "github.com/levantva/crewcenter/internal/server/grpc"
)

func main() {

	var healthCheck bool
	fs := flag.NewFlagSet("health", flag.ContinueOnError)
	fs.BoolVar(&healthCheck, "health-check", false, "query the gRPC health service and exit")
	_ = fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-health-check", "--health-check"}))

	cfg := config.LoadConfig()
	log := logging.NewJSON(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	ctx := context.Background()

	if healthCheck {
		os.Exit(runHealthCheck(ctx, cfg, log))
	}

	buildinfo.PrintBuildData(os.Stdout)

	if cfg.EnvFileErr != nil {
		log.Warn(ctx, "env file not loaded", "error", cfg.EnvFileErr)
	}

	app, err := server.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "starting portal failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)

}

func runHealthCheck(ctx context.Context, cfg *config.Config, log logging.Logger) int {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	addr := cfg.EndpointAddrGRPC
	if addr != "" && addr[0] == ':' {
		addr = "127.0.0.1" + addr
	}
	resp, err := gs.Check(ctx, addr, "")
	if err != nil {
		log.Error(ctx, "health check failed", "error", err)
		return 1
	}
	log.Info(ctx, "health check", "status", resp.GetStatus().String())
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return 1
	}
	return 0
}
