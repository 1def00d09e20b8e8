// Package config handles configuration for the web portal, including
// defaults, JSON overlay, command-line flags and the IVAO secrets from the
// environment.
package config

import (
	"time"

	"github.com/levantva/crewcenter/internal/client/catalog"
	"github.com/levantva/crewcenter/internal/client/client"
	"github.com/levantva/crewcenter/internal/envx"
	"github.com/levantva/crewcenter/internal/flagx"
)

// Config holds runtime settings for the crew center portal.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the REST API and WebSocket.
//   - EndpointAddrGRPC: bind address for the gRPC health service.
//   - APIBaseURL: IVAO API root.
//   - DatabasePath: SQLite file holding the session and language.
//   - AuthMode: "demo" or "strict".
//   - DashboardInterval / LiveMapInterval: poll cadences for WebSocket screens.
//   - S3*: bucket holding events.json. An empty bucket disables it.
type Config struct {
	EndpointAddrHTTP  string
	EndpointAddrGRPC  string
	APIBaseURL        string
	DatabasePath      string
	AuthMode          string
	Language          string
	LogLevel          string
	DashboardInterval time.Duration
	LiveMapInterval   time.Duration
	S3RootUser        string
	S3RootPassword    string
	S3Bucket          string
	S3Key             string
	S3Region          string
	S3BaseEndpoint    string

	Credentials client.Credentials
	EnvFileErr  error
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.APIBaseURL = client.DefaultBaseURL
	c.DatabasePath = "portal.db"
	c.AuthMode = "demo"
	c.Language = "en"
	c.LogLevel = "info"
	c.DashboardInterval = 30 * time.Second
	c.LiveMapInterval = 10 * time.Second
	c.S3Key = catalog.DefaultKey
	c.S3Region = "us-east-1"
}

// Catalog returns the events bucket settings.
func (c *Config) Catalog() catalog.S3Config {
	return catalog.S3Config{
		Bucket:   c.S3Bucket,
		Key:      c.S3Key,
		Region:   c.S3Region,
		User:     c.S3RootUser,
		Password: c.S3RootPassword,
		Endpoint: c.S3BaseEndpoint,
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags. The IVAO
// secrets are read last, from the environment.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	cfg.Credentials, cfg.EnvFileErr = envx.LoadCredentials(flagx.EnvFileFlag(envx.DefaultFile))
	return cfg
}
