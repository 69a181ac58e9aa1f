// Package config loads server settings from an optional YAML file, a .env
// file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"` // development, staging, production
	LogLevel    string `yaml:"log_level"`
	StaticDir   string `yaml:"static_dir"`

	// CarouselInterval is how long each home page slide stays on screen
	CarouselInterval time.Duration `yaml:"carousel_interval"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
}

// ConfigFileEnv names the environment variable pointing at the YAML file
const ConfigFileEnv = "JALDRISHTI_CONFIG"

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Port:             "8080",
		Environment:      "development",
		LogLevel:         "info",
		StaticDir:        "web/static",
		CarouselInterval: 3000 * time.Millisecond,
		ShutdownTimeout:  10 * time.Second,
	}
}

// Load reads configuration. A missing .env file is not an error; a missing
// YAML file is only an error when it was asked for explicitly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.StaticDir = getEnv("STATIC_DIR", c.StaticDir)

	var err error
	if c.CarouselInterval, err = getDurationEnv("CAROUSEL_INTERVAL", c.CarouselInterval); err != nil {
		return err
	}
	if c.ShutdownTimeout, err = getDurationEnv("SHUTDOWN_TIMEOUT", c.ShutdownTimeout); err != nil {
		return err
	}
	return nil
}

// Validate rejects settings the server cannot run with
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("port must be numeric, got %q", c.Port)
	}
	if c.CarouselInterval <= 0 {
		return fmt.Errorf("carousel interval must be positive, got %s", c.CarouselInterval)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
