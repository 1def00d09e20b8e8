package config

import (
	"encoding/json"
	"os"

	"github.com/levantva/crewcenter/internal/flagx"
	"github.com/levantva/crewcenter/internal/timex"
)

// JsonConfig is the on-disk shape of Config.
type JsonConfig struct {
	APIBaseURL        string         `json:"api_base_url"`
	DatabasePath      string         `json:"database_path"`
	AuthMode          string         `json:"auth_mode"`
	Language          string         `json:"language"`
	LogLevel          string         `json:"log_level"`
	DashboardInterval timex.Duration `json:"dashboard_interval"`
	LiveMapInterval   timex.Duration `json:"live_map_interval"`
}

// parseJson overlays cfg with the values present in the file named by -c
// or -config. Absent keys keep their current value. It panics when the
// file cannot be read or parsed.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.AuthMode, jc.AuthMode)
	setString(&cfg.Language, jc.Language)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.DashboardInterval.Duration > 0 {
		cfg.DashboardInterval = jc.DashboardInterval.Duration
	}
	if jc.LiveMapInterval.Duration > 0 {
		cfg.LiveMapInterval = jc.LiveMapInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
