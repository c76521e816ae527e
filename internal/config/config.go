package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Neurokami/proyecto-infra/internal/validate"
)

type Config struct {
	ServerAddr string   `yaml:"server_addr" validate:"required"`
	Database   Database `yaml:"database"`
	Session    Session  `yaml:"session"`
}

type Database struct {
	// ConnStr, when set, is used verbatim and wins over the discrete
	// fields below.
	ConnStr string `yaml:"conn_str"`

	Host string `yaml:"host" validate:"required"`
	Port string `yaml:"port" validate:"required"`
	Name string `yaml:"name" validate:"required"`
	User string `yaml:"user" validate:"required"`
	Pass string `yaml:"pass"`
}

type Session struct {
	TokenSecret       string `yaml:"token_secret" validate:"required"`
	TokenExpiryInSecs int64  `yaml:"token_expiry_in_secs" validate:"gt=0"`
}

// Load builds the process configuration: defaults, then the optional YAML
// file at path, then environment variables on top. Path may be empty.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ServerAddr: "8080",
		Database: Database{
			Host: "localhost",
			Port: "5432",
			Name: "market",
			User: "user",
			Pass: "userpass",
		},
		Session: Session{
			TokenSecret:       "dev-session-secret",
			TokenExpiryInSecs: 86400,
		},
	}

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}

		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}

	overlayEnv(cfg)

	if err := validate.StructFields(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func overlayEnv(cfg *Config) {
	setFromEnv(&cfg.ServerAddr, "SERVER_ADDR")
	setFromEnv(&cfg.Database.ConnStr, "POSTGRES_CONN_STR")
	setFromEnv(&cfg.Database.Host, "DB_HOST")
	setFromEnv(&cfg.Database.Port, "DB_PORT")
	setFromEnv(&cfg.Database.Name, "DB_NAME")
	setFromEnv(&cfg.Database.User, "DB_USER")
	setFromEnv(&cfg.Database.Pass, "DB_PASS")
	setFromEnv(&cfg.Session.TokenSecret, "SESSION_TOKEN_SECRET")

	if v := os.Getenv("SESSION_TOKEN_EXPIRY_SECS"); v != "" {
		var secs int64
		if _, err := fmt.Sscanf(v, "%d", &secs); err == nil && secs > 0 {
			cfg.Session.TokenExpiryInSecs = secs
		}
	}
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DSN returns the lib/pq connection string for the configured database.
func (c *Config) DSN() string {
	if c.Database.ConnStr != "" {
		return c.Database.ConnStr
	}

	return fmt.Sprintf(
		"host=%s port=%s dbname=%s user=%s password=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.User,
		c.Database.Pass,
	)
}
