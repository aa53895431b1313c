package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Flowy"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"flowy"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	Rates struct {
		// Base is the reference currency every fetched rate is expressed against.
		Base    string        `envconfig:"RATES_BASE" default:"EUR"`
		URL     string        `envconfig:"RATES_URL" default:"https://api.frankfurter.dev/v1/latest"`
		Timeout time.Duration `envconfig:"RATES_TIMEOUT" default:"10s"`
	}

	TUI struct {
		// UserID is the owner the TUI acts as; the TUI talks to the
		// database directly and skips token auth.
		UserID   string `envconfig:"TUI_USER_ID"`
		FamilyID string `envconfig:"TUI_FAMILY_ID"`
	}

	Scheduler struct {
		Interval time.Duration `envconfig:"SCHEDULER_INTERVAL" default:"1h"`
		// MaxCatchUp bounds how many periods a fallen-behind schedule
		// is advanced within one scheduler pass.
		MaxCatchUp int `envconfig:"SCHEDULER_MAX_CATCHUP" default:"12"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
