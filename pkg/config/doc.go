// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing. Each Load call is independent:
// nothing is cached, so tests can feed a fixed environment through
// WithEnvironment without touching the process.
//
//	var cfg takaful.Config
//	if err := config.Load(&cfg, config.WithOptionalEnvFiles(".env")); err != nil {
//	    log.Fatal(err)
//	}
package config
