package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting the server reads. Values come from the
// environment, optionally seeded from a .env file in the working directory.
type Config struct {
	Addr          string   `env:"ADDR" envDefault:":8080"`
	DatabaseDSN   string   `env:"DATABASE_DSN" envDefault:"host=localhost user=postgres password=password dbname=hirehub port=5432 sslmode=disable"`
	SessionSecret string   `env:"SESSION_SECRET" envDefault:"dev-only-insecure-secret"`
	UploadDir     string   `env:"UPLOAD_DIR" envDefault:"uploads"`
	AllowOrigins  []string `env:"ALLOW_ORIGINS" envDefault:"*"`
}

// Load reads the .env file if one exists and parses the environment.
// A missing .env is fine; deployments set real environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
