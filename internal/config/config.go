package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Auth      AuthConfig      `yaml:"auth"`
	Transport TransportConfig `yaml:"transport"`
	Fixtures  FixturesConfig  `yaml:"fixtures"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	// Path is the SQLite data source. The default ":memory:" keeps all
	// state process-local so it resets on restart.
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type AuthConfig struct {
	// Token, when set, is required as a bearer token on the HTTP API.
	Token string `yaml:"token"`
}

type TransportConfig struct {
	// Mode selects "http" (JSON-RPC + MCP over HTTP) or "stdio"
	// (MCP over stdin/stdout).
	Mode string `yaml:"mode"`
}

type FixturesConfig struct {
	// Seed controls whether the bundled fixtures are loaded at startup.
	Seed bool `yaml:"seed"`
}

// Load reads configuration from an optional .env file, an optional
// YAML file, and environment variables, in increasing precedence.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: ":memory:",
		},
		Log: LogConfig{
			Level: "info",
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Fixtures: FixturesConfig{
			Seed: true,
		},
	}

	if path := os.Getenv("RECRUITFLOW_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("RECRUITFLOW_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("RECRUITFLOW_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RECRUITFLOW_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("RECRUITFLOW_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("RECRUITFLOW_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if token := os.Getenv("RECRUITFLOW_AUTH_TOKEN"); token != "" {
		cfg.Auth.Token = token
	}
	if mode := os.Getenv("RECRUITFLOW_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if seedStr := os.Getenv("RECRUITFLOW_FIXTURES_SEED"); seedStr != "" {
		seed, err := strconv.ParseBool(seedStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RECRUITFLOW_FIXTURES_SEED: %w", err)
		}
		cfg.Fixtures.Seed = seed
	}

	return cfg, nil
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
