// Package config loads runtime configuration for the crew center terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//  4. IVAO_API_KEY and IVAO_BEARER_TOKEN from the environment, seeded from
//     the dotenv file given with -env (default ".env").
//
// Supported flags
//
//	-u string    IVAO API base URL
//	-d string    path of the local SQLite store
//	-auth string login policy when the API cannot vouch for a member: demo or strict
//	-lang string initial language: en or ar
//	-log string  log level: debug, info, warn or error
//	-dash dur    dashboard refresh interval
//	-map dur     live map refresh interval
//
// # JSON schema
//
// Intervals use timex.Duration, so they may be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.ivao.aero/v2",
//	  "database_path": "crewcenter.db",
//	  "auth_mode": "demo",
//	  "language": "en",
//	  "log_level": "warn",
//	  "dashboard_interval": "30s",
//	  "live_map_interval": "10s"
//	}
package config
