// Package config loads typed configuration from environment variables.
//
// Configuration structs declare their variables with `env` and `envDefault`
// tags understood by github.com/caarlos0/env. Load parses a struct once per
// type and caches the result; MustLoad panics instead of returning an error
// and is meant for main. Optional .env files are read with
// github.com/joho/godotenv: Load reads ./.env on first use, LoadEnv reads
// explicit paths. Values already present in the environment are never
// overridden by files.
//
//	var cfg struct {
//		Locales []string `env:"LOCALES" envDefault:"en,fr"`
//	}
//	config.MustLoad(&cfg)
//
// ResetCache clears the cache between tests.
package config
