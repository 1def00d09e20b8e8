package config

import (
	"flag"
	"os"

	"github.com/levantva/crewcenter/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string       HTTP bind address (e.g., ":8080")
//	-g string       gRPC health bind address (e.g., ":50051")
//	-api string     IVAO API base URL
//	-d string       SQLite file path
//	-auth string    demo or strict
//	-lang string    default language
//	-log string     log level
//	-dash duration  dashboard poll interval
//	-map duration   live map poll interval
//	-u string       S3 user
//	-p string       S3 password
//	-b string       S3 bucket with the events catalogue
//	-k string       S3 object key
//	-r string       S3 region
//	-e string       S3 base endpoint (e.g., "http://127.0.0.1:9000/")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-g", "-api", "-d", "-auth", "-lang", "-log", "-dash", "-map",
		"-u", "-p", "-b", "-k", "-r", "-e",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.APIBaseURL, "api", config.APIBaseURL, "IVAO API base URL")
	fs.StringVar(&config.DatabasePath, "d", config.DatabasePath, "SQLite file path")
	fs.StringVar(&config.AuthMode, "auth", config.AuthMode, "login policy: demo or strict")
	fs.StringVar(&config.Language, "lang", config.Language, "default language")
	fs.StringVar(&config.LogLevel, "log", config.LogLevel, "log level")
	fs.DurationVar(&config.DashboardInterval, "dash", config.DashboardInterval, "dashboard poll interval")
	fs.DurationVar(&config.LiveMapInterval, "map", config.LiveMapInterval, "live map poll interval")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Key, "k", config.S3Key, "S3 object key")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
