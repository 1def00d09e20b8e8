package grpc

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/levantva/crewcenter/internal/logging"
)

func newTestServer(buf *bytes.Buffer) *HealthServer {
	return NewHealthServer("", logging.NewText(buf, slog.LevelDebug), liveness(true))
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(&buf)

	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	called := false
	h := func(ctx context.Context, req any) (any, error) {
		called = true
		return "ok", nil
	}

	resp, err := s.loggingInterceptor(context.Background(), nil, info, h)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ok", resp)
	assert.Contains(t, buf.String(), "method=/grpc.health.v1.Health/Check")
	assert.Contains(t, buf.String(), "code=OK")
}

func TestLoggingInterceptor_ReturnsHandlerError(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(&buf)

	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	h := func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "unknown service")
	}

	_, err := s.loggingInterceptor(context.Background(), nil, info, h)
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Contains(t, buf.String(), "code=NotFound")
}
