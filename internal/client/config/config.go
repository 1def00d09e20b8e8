package config

import (
	"time"

	"github.com/levantva/crewcenter/internal/client/client"
	"github.com/levantva/crewcenter/internal/envx"
	"github.com/levantva/crewcenter/internal/flagx"
)

// Config holds runtime settings for the crew center terminal client.
//
// Credentials are never read from JSON or flags; they come from the
// environment (see envx).
type Config struct {
	APIBaseURL        string
	DatabasePath      string
	AuthMode          string
	Language          string
	LogLevel          string
	DashboardInterval time.Duration
	LiveMapInterval   time.Duration

	Credentials client.Credentials
	// EnvFileErr is set when the dotenv file could not be read.
	EnvFileErr error
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = client.DefaultBaseURL
	c.DatabasePath = "crewcenter.db"
	c.AuthMode = "demo"
	c.Language = "en"
	c.LogLevel = "warn"
	c.DashboardInterval = 30 * time.Second
	c.LiveMapInterval = 10 * time.Second
}

// LoadConfig applies defaults, then the JSON file, then flags, and finally
// reads the credentials from the environment.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	cfg.Credentials, cfg.EnvFileErr = envx.LoadCredentials(flagx.EnvFileFlag(envx.DefaultFile))
	return cfg
}
