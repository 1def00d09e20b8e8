package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/levantva/crewcenter/internal/logging"
	"github.com/levantva/crewcenter/internal/server/api"
	"github.com/levantva/crewcenter/internal/server/config"

	gs "github.com/levantva/crewcenter/internal/server/grpc"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().String()
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrHTTP = freeAddr(t)
	c.EndpointAddrGRPC = freeAddr(t)
	c.DatabasePath = filepath.Join(t.TempDir(), "portal.db")
	return c
}

func TestNewApp_RejectsBadSettings(t *testing.T) {
	c := testConfig(t)
	c.AuthMode = "lenient"
	_, err := NewApp(context.Background(), c, logging.Discard())
	require.Error(t, err)

	c = testConfig(t)
	c.Language = "fr"
	_, err = NewApp(context.Background(), c, logging.Discard())
	require.Error(t, err)
}

func TestApp_RunServesUntilCancelled(t *testing.T) {
	c := testConfig(t)
	app, err := NewApp(context.Background(), c, logging.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	url := fmt.Sprintf("http://%s/api/health", c.EndpointAddrHTTP)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		var h api.HealthResponse
		return json.NewDecoder(resp.Body).Decode(&h) == nil && h.Mode == "mock"
	}, 3*time.Second, 50*time.Millisecond)

	require.Eventually(t, func() bool {
		cctx, ccancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer ccancel()
		resp, err := gs.Check(cctx, c.EndpointAddrGRPC, gs.GatewayService)
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_NOT_SERVING
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
	assert.Error(t, app.db.Ping())
}
