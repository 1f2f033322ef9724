package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage drivers accepted by DATABASE_DRIVER
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongodb"
	DriverMemory   = "memory"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Host            string        `yaml:"host" env:"SERVER_HOST"`
		Port            string        `yaml:"port" env:"SERVER_PORT"`
		Mode            string        `yaml:"mode" env:"SERVER_MODE"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
		MaxUploadMB     int64         `yaml:"max_upload_mb" env:"SERVER_MAX_UPLOAD_MB"`
	} `yaml:"server"`

	Client struct {
		Host string `yaml:"host" env:"CLIENT_HOST"`
		Port string `yaml:"port" env:"CLIENT_PORT"`
	} `yaml:"client"`

	Database struct {
		Driver          string `yaml:"driver" env:"DATABASE_DRIVER"`
		URL             string `yaml:"url" env:"DATABASE_URL,MONGODB_URI"`
		Host            string `yaml:"host" env:"DATABASE_HOST"`
		Port            string `yaml:"port" env:"DATABASE_PORT"`
		User            string `yaml:"user" env:"DATABASE_USER"`
		Password        string `yaml:"password" env:"DATABASE_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DATABASE_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DATABASE_SSLMODE"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME"`
		Seed            bool   `yaml:"seed" env:"DATABASE_SEED"`
	} `yaml:"database"`

	Storage struct {
		PublicPath string `yaml:"public_path" env:"PUBLIC_PATH"`
		PublicURL  string `yaml:"public_url" env:"PUBLIC_URL"`
	} `yaml:"storage"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file, an optional .env file and
// environment variables, in increasing order of precedence
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Variables already present in the environment win over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Host = "0.0.0.0"
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.ShutdownTimeout = 10 * time.Second
	config.Server.MaxUploadMB = 8

	// Client defaults
	config.Client.Host = "localhost"
	config.Client.Port = "5173"

	// Database defaults
	config.Database.Driver = DriverPostgres
	config.Database.Host = "localhost"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "airport"
	config.Database.SSLMode = "disable"
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.Seed = true

	// Storage defaults
	config.Storage.PublicPath = "./public"
	config.Storage.PublicURL = "/public"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Database.Driver {
	case DriverPostgres, DriverMongo:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required for driver %s", config.Database.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown database driver %q, expected %s, %s or %s",
			config.Database.Driver, DriverPostgres, DriverMongo, DriverMemory)
	}

	if config.Database.ConnMaxLifetime != "" {
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database connection lifetime format: %w", err)
		}
	}

	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if strings.TrimSpace(config.Storage.PublicPath) == "" {
		return fmt.Errorf("public path is required")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	port := c.Database.Port
	if port == "" {
		port = "5432"
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		net.JoinHostPort(c.Database.Host, port),
		c.Database.DBName,
		sslMode,
	)
}

// GetMongoURI returns the mongodb connection string. Credentials are left
// out when no user is configured.
func (c *Config) GetMongoURI() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	port := c.Database.Port
	if port == "" {
		port = "27017"
	}
	host := net.JoinHostPort(c.Database.Host, port)
	if c.Database.User == "" {
		return fmt.Sprintf("mongodb://%s", host)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s", c.Database.User, c.Database.Password, host)
}

// ServerAddress returns the address the HTTP server listens on
func (c *Config) ServerAddress() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

// ClientOrigin returns the only origin allowed by CORS
func (c *Config) ClientOrigin() string {
	return fmt.Sprintf("http://%s", net.JoinHostPort(c.Client.Host, c.Client.Port))
}

// ConnMaxLifetime returns the parsed pool connection lifetime
func (c *Config) ConnMaxLifetime() time.Duration {
	d, err := time.ParseDuration(c.Database.ConnMaxLifetime)
	if err != nil {
		return 0
	}
	return d
}
