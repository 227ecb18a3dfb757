package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gatherhq/gather/internal/errors"
)

// DefaultAPIURL is the local-development fallback for the backend base URL.
const DefaultAPIURL = "http://localhost:8000/api"

// Config holds the client configuration.
//
// Resolution order (highest to lowest precedence):
// 1. Environment variables (GATHER_API_URL, GATHER_GOOGLE_CLIENT_ID, ...)
// 2. Config file (~/.gather/config.yaml)
// 3. Built-in defaults
type Config struct {
	// APIURL is the backend base URL, including the /api prefix.
	APIURL string `yaml:"api_url"`

	// GoogleClientID and GoogleClientSecret drive the interactive
	// Google OAuth flow for 'gather auth google'.
	GoogleClientID     string `yaml:"google_client_id"`
	GoogleClientSecret string `yaml:"google_client_secret"`

	// LogLevel and LogFormat configure the structured logger.
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultDir returns the per-user configuration directory (~/.gather).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gather"
	}
	return filepath.Join(home, ".gather")
}

// Load resolves configuration from the default locations.
// A .env file in the working directory is applied first, best-effort.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(filepath.Join(DefaultDir(), "config.yaml"))
}

// LoadFrom resolves configuration, reading the config file at path if it
// exists. Environment variables override file values.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		APIURL:    DefaultAPIURL,
		LogLevel:  "info",
		LogFormat: "text",
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("invalid config file %s", path), err)
		}
	case os.IsNotExist(err):
		// No config file is fine, defaults and env apply.
	default:
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("could not read config file %s", path), err)
	}

	applyEnv(cfg)

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GATHER_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("GATHER_GOOGLE_CLIENT_ID"); v != "" {
		cfg.GoogleClientID = v
	}
	if v := os.Getenv("GATHER_GOOGLE_CLIENT_SECRET"); v != "" {
		cfg.GoogleClientSecret = v
	}
	if v := os.Getenv("GATHER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GATHER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
