package config

import (
	"encoding/json"
	"os"

	"github.com/levantva/crewcenter/internal/flagx"
	"github.com/levantva/crewcenter/internal/timex"
)

// JsonConfig is the on-disk shape of Config. Intervals use timex.Duration,
// so both "30s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrHTTP  string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC  string         `json:"endpoint_addr_grpc"`
	APIBaseURL        string         `json:"api_base_url"`
	DatabasePath      string         `json:"database_path"`
	AuthMode          string         `json:"auth_mode"`
	Language          string         `json:"language"`
	LogLevel          string         `json:"log_level"`
	DashboardInterval timex.Duration `json:"dashboard_interval"`
	LiveMapInterval   timex.Duration `json:"live_map_interval"`
	S3RootUser        string         `json:"s3_root_user"`
	S3RootPassword    string         `json:"s3_root_password"`
	S3Bucket          string         `json:"s3_bucket"`
	S3Key             string         `json:"s3_key"`
	S3Region          string         `json:"s3_region"`
	S3BaseEndpoint    string         `json:"s3_base_endpoint"`
}

// parseJson overlays config with the file named by -c or -config. Keys
// missing from the file keep their current value. It panics when the file
// cannot be read or contains invalid JSON.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	for dst, v := range map[*string]string{
		&config.EndpointAddrHTTP: c.EndpointAddrHTTP,
		&config.EndpointAddrGRPC: c.EndpointAddrGRPC,
		&config.APIBaseURL:       c.APIBaseURL,
		&config.DatabasePath:     c.DatabasePath,
		&config.AuthMode:         c.AuthMode,
		&config.Language:         c.Language,
		&config.LogLevel:         c.LogLevel,
		&config.S3RootUser:       c.S3RootUser,
		&config.S3RootPassword:   c.S3RootPassword,
		&config.S3Bucket:         c.S3Bucket,
		&config.S3Key:            c.S3Key,
		&config.S3Region:         c.S3Region,
		&config.S3BaseEndpoint:   c.S3BaseEndpoint,
	} {
		if v != "" {
			*dst = v
		}
	}
	if c.DashboardInterval.Duration > 0 {
		config.DashboardInterval = c.DashboardInterval.Duration
	}
	if c.LiveMapInterval.Duration > 0 {
		config.LiveMapInterval = c.LiveMapInterval.Duration
	}
}
