package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levantva/crewcenter/internal/client/catalog"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"portal"}, args...)
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()
	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, catalog.DefaultKey, c.S3Key)
	assert.False(t, c.Catalog().Enabled())
}

func TestCatalog(t *testing.T) {
	c := defaults()
	c.S3Bucket = "levant"
	c.S3BaseEndpoint = "http://minio:9000"
	c.S3RootUser = "u"
	c.S3RootPassword = "p"

	assert.Equal(t, catalog.S3Config{
		Bucket: "levant", Key: "events.json", Region: "us-east-1",
		User: "u", Password: "p", Endpoint: "http://minio:9000",
	}, c.Catalog())
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		mutate      func(c *Config)
	}{
		{
			name: "addresses and bucket",
			args: []string{"-a", ":9090", "-g", ":6000", "-b", "events", "-e", "http://127.0.0.1:9000/", "-dash", "45s"},
			mutate: func(c *Config) {
				c.EndpointAddrHTTP = ":9090"
				c.EndpointAddrGRPC = ":6000"
				c.S3Bucket = "events"
				c.S3BaseEndpoint = "http://127.0.0.1:9000/"
				c.DashboardInterval = 45 * time.Second
			},
		},
		{
			name:   "equals form and foreign flags",
			args:   []string{"-health-check", "-auth=strict", "-c", "x.json"},
			mutate: func(c *Config) { c.AuthMode = "strict" },
		},
		{name: "bad duration", args: []string{"-map", "fast"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			cfg := defaults()
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			parseFlags(cfg)
			want := defaults()
			tt.mutate(want)
			assert.Empty(t, cmp.Diff(want, cfg, cmpopts.IgnoreFields(Config{}, "EnvFileErr")))
		})
	}
}

func TestParseJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")
	b, err := json.Marshal(map[string]any{
		"endpoint_addr_http": ":7000",
		"s3_bucket":          "catalogue",
		"live_map_interval":  "5s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	withArgs(t, "-config="+path)
	cfg := defaults()
	parseJson(cfg)

	assert.Equal(t, ":7000", cfg.EndpointAddrHTTP)
	assert.Equal(t, "catalogue", cfg.S3Bucket)
	assert.Equal(t, 5*time.Second, cfg.LiveMapInterval)
	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	assert.Equal(t, 30*time.Second, cfg.DashboardInterval)
}

func TestParseJson_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"dashboard_interval": true}`), 0o600))
	withArgs(t, "-c", path)
	require.Panics(t, func() { parseJson(defaults()) })
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, "portal.env")
	require.NoError(t, os.WriteFile(env, []byte("IVAO_API_KEY=key\nIVAO_BEARER_TOKEN=token\n"), 0o600))

	t.Setenv("IVAO_API_KEY", "")
	t.Setenv("IVAO_BEARER_TOKEN", "")
	os.Unsetenv("IVAO_API_KEY")
	os.Unsetenv("IVAO_BEARER_TOKEN")

	withArgs(t, "-env", env, "-a", ":1")
	cfg := LoadConfig()
	require.NoError(t, cfg.EnvFileErr)
	assert.Equal(t, "key", cfg.Credentials.APIKey)
	assert.Equal(t, "token", cfg.Credentials.BearerToken)
	assert.Equal(t, ":1", cfg.EndpointAddrHTTP)
}
