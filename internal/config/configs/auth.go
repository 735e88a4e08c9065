package configs

import "time"

// Auth configures token signing. SigningKey has no default and must be set
// for the server to start. The bootstrap account is provisioned on
// startup when both of its fields are set.
type Auth struct {
	SigningKey string        `env:"SIGNING_KEY"`
	AccessTTL  time.Duration `env:"ACCESS_TTL" envDefault:"5m"`
	RefreshTTL time.Duration `env:"REFRESH_TTL" envDefault:"24h"`

	BootstrapUsername string `env:"BOOTSTRAP_USERNAME"`
	BootstrapPassword string `env:"BOOTSTRAP_PASSWORD"`
}
