package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Transport modes accepted by the server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Admin  AdminConfig  `yaml:"admin"`
	Auth   AuthConfig   `yaml:"auth"`
}

type ServerConfig struct {
	Host      string `yaml:"host" env:"CURRICULUM_SERVER_HOST"`
	Port      int    `yaml:"port" env:"CURRICULUM_SERVER_PORT"`
	Transport string `yaml:"transport" env:"CURRICULUM_TRANSPORT"`
}

type DBConfig struct {
	Path string `yaml:"path" env:"CURRICULUM_DB_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"CURRICULUM_LOG_LEVEL"`
}

// AdminConfig names the bootstrap admin account created by the seeder.
type AdminConfig struct {
	Email    string `yaml:"email" env:"CURRICULUM_ADMIN_EMAIL"`
	Password string `yaml:"password" env:"CURRICULUM_ADMIN_PASSWORD"`
}

// AuthConfig controls basic auth on the HTTP transport. Stdio is never
// authenticated.
type AuthConfig struct {
	Enabled bool `yaml:"enabled" env:"CURRICULUM_AUTH_ENABLED"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			Transport: TransportStdio,
		},
		DB: DBConfig{
			Path: "curriculum.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Admin: AdminConfig{
			Email: "admin@example.com",
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CURRICULUM_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late at startup.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Server.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("invalid transport %q (want %s or %s)", c.Server.Transport, TransportStdio, TransportHTTP)
	}
	if c.DB.Path == "" {
		return fmt.Errorf("db path is required")
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
