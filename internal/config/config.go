// Package config loads the service configuration from environment variables.
package config

import (
	"errors"
	"os"
	"strings"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	AllowedOrigins []string
	Storage        StorageConfig
}

// StorageConfig configures the S3-compatible image store.
type StorageConfig struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
	UsePathStyle  bool
}

// Default allowed origins for development.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// Load reads the configuration from the environment. DATABASE_URL and
// JWT_SECRET are required; everything else has a development default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Storage: StorageConfig{
			Endpoint:      os.Getenv("STORAGE_ENDPOINT"),
			Region:        os.Getenv("STORAGE_REGION"),
			Bucket:        os.Getenv("STORAGE_BUCKET"),
			AccessKey:     os.Getenv("STORAGE_ACCESS_KEY"),
			SecretKey:     os.Getenv("STORAGE_SECRET_KEY"),
			PublicBaseURL: os.Getenv("STORAGE_PUBLIC_BASE_URL"),
			UsePathStyle:  os.Getenv("STORAGE_USE_PATH_STYLE") != "false",
		},
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is not set")
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}

	if cfg.Storage.Bucket == "" {
		cfg.Storage.Bucket = "vehicle-images"
	}

	cfg.AllowedOrigins = append(cfg.AllowedOrigins, defaultOrigins...)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, clientURL)
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	return cfg, nil
}
