package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"campaigns-api/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is only
	// attached to log lines.
	Env string `env:"ENV" envDefault:"prod"`

	// Seed inserts demo campaigns on startup when the store is empty.
	Seed bool `env:"SEED" envDefault:"false"`

	HTTP configs.HTTP     `envPrefix:"HTTP_"`
	Log  configs.Logger   `envPrefix:"LOG_"`
	Psql configs.Postgres `envPrefix:"PSQL_"`
	Auth configs.Auth     `envPrefix:"AUTH_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory is loaded first when present;
// variables already set in the environment win.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
