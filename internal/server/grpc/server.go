// Package grpc serves the standard gRPC health protocol for the portal.
// The overall status is SERVING while the portal runs; GatewayService
// reports whether the IVAO gateway is live or on mock data.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/levantva/crewcenter/internal/logging"
)

// GatewayService is the health service name describing the IVAO gateway.
const GatewayService = "ivao.gateway"

// Liveness reports whether the gateway reaches the remote API.
type Liveness interface {
	Live() bool
}

type HealthServer struct {
	address string
	logger  logging.Logger
	gateway Liveness
	health  *health.Server
}

func NewHealthServer(a string, l logging.Logger, gateway Liveness) *HealthServer {
	return &HealthServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		gateway: gateway,
		health:  health.NewServer(),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *HealthServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done.
func (s *HealthServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	healthpb.RegisterHealthServer(srv, s.health)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	gw := healthpb.HealthCheckResponse_NOT_SERVING
	if s.gateway != nil && s.gateway.Live() {
		gw = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(GatewayService, gw)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String(), "gateway", gw.String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
