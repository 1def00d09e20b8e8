package config

import (
	"flag"
	"os"

	"github.com/levantva/crewcenter/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags listed
// here are looked at; others are left to their owners.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-d", "-auth", "-lang", "-log", "-dash", "-map"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "IVAO API base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local store")
	fs.StringVar(&cfg.AuthMode, "auth", cfg.AuthMode, "login policy: demo or strict")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "initial language: en or ar")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level")
	fs.DurationVar(&cfg.DashboardInterval, "dash", cfg.DashboardInterval, "dashboard refresh interval")
	fs.DurationVar(&cfg.LiveMapInterval, "map", cfg.LiveMapInterval, "live map refresh interval")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
