package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration options for the todo API server
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port               string `env:"PORT"`
	GinMode            string `env:"GIN_MODE"`
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path         string        `env:"DB_PATH"`
	QueryTimeout time.Duration `env:"DB_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `env:"DB_WRITE_TIMEOUT"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenLifetime time.Duration `env:"TOKEN_LIFETIME"`
	BcryptCost    int           `env:"BCRYPT_COST"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               "3000",
			GinMode:            "debug",
			CORSAllowedOrigins: "*",
		},
		Database: DatabaseConfig{
			Path:         "todo.db",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret:     "",
			TokenLifetime: time.Hour,
			BcryptCost:    10,
		},
	}
}

// LoadFromEnvironment overrides configuration values from environment variables
func (c *Config) LoadFromEnvironment() error {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.GinMode = getEnv("GIN_MODE", c.Server.GinMode)
	c.Server.CORSAllowedOrigins = getEnv("CORS_ALLOWED_ORIGINS", c.Server.CORSAllowedOrigins)

	c.Database.Path = getEnv("DB_PATH", c.Database.Path)
	c.Database.QueryTimeout = getEnvAsDuration("DB_QUERY_TIMEOUT", c.Database.QueryTimeout)
	c.Database.WriteTimeout = getEnvAsDuration("DB_WRITE_TIMEOUT", c.Database.WriteTimeout)

	c.Auth.JWTSecret = getEnv("JWT_SECRET", c.Auth.JWTSecret)
	c.Auth.TokenLifetime = getEnvAsDuration("TOKEN_LIFETIME", c.Auth.TokenLifetime)
	c.Auth.BcryptCost = getEnvAsInt("BCRYPT_COST", c.Auth.BcryptCost)

	return nil
}

// Validate checks that the configuration is usable. The signing secret is
// required: starting without one would issue tokens nobody can verify.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.TokenLifetime <= 0 {
		return fmt.Errorf("TOKEN_LIFETIME must be positive")
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}
	return nil
}

// getEnv returns the environment variable value or the default if unset
func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt returns the environment variable parsed as an int or the default
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns the environment variable parsed as a duration or the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
