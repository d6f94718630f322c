package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Env             string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	MaxFormBytes    int64
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level zerolog.Level
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:8080,http://localhost:5000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "30s")
	viper.SetDefault("MAX_FORM_BYTES", 1<<20)

	// Environment variables override .env file values
	viper.AutomaticEnv()

	viper.BindEnv("PORT")
	viper.BindEnv("ENVIRONMENT")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("LOG_LEVEL")
	viper.BindEnv("SHUTDOWN_TIMEOUT")
	viper.BindEnv("MAX_FORM_BYTES")

	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev" // matches .env.dev
	}

	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read .env.%s: %w", env, err)
		}
	}

	var config Config
	config.Server.Port = viper.GetString("PORT")
	config.Server.Env = env
	config.Server.AllowedOrigins = splitOrigins(viper.GetString("ALLOWED_ORIGINS"))
	config.Server.ShutdownTimeout = viper.GetDuration("SHUTDOWN_TIMEOUT")
	config.Server.MaxFormBytes = viper.GetInt64("MAX_FORM_BYTES")

	level, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("LOG_LEVEL")))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	config.Logging.Level = level

	if config.Server.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %q", viper.GetString("SHUTDOWN_TIMEOUT"))
	}
	if config.Server.MaxFormBytes <= 0 {
		return nil, fmt.Errorf("MAX_FORM_BYTES must be positive, got %q", viper.GetString("MAX_FORM_BYTES"))
	}

	return &config, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// IsDev reports whether the service runs in the local development environment
func (c *Config) IsDev() bool {
	return c.Server.Env == "dev"
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
