// Package config provides configuration loading for foliod.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (SERVER_PORT, CATALOG_ROOT, ...)
//  2. YAML config file
//  3. Hardcoded defaults
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/fernworks/foliod/internal/logging"
)

// Config holds the complete foliod configuration.
type Config struct {
	Server  ServerConfig   `koanf:"server"`
	Catalog CatalogConfig  `koanf:"catalog"`
	Upload  UploadConfig   `koanf:"upload"`
	Logging logging.Config `koanf:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string   `koanf:"host"`
	Port            int      `koanf:"port"`
	ShutdownTimeout Duration `koanf:"shutdown_timeout"`
}

// CatalogConfig holds the project catalog location and category mappings.
type CatalogConfig struct {
	Root       string           `koanf:"root"`
	Categories []CategoryConfig `koanf:"categories"`
}

// CategoryConfig pairs a display label with its folder under the catalog root.
// Configuration order is display order.
type CategoryConfig struct {
	Label  string `koanf:"label"`
	Folder string `koanf:"folder"`
}

// UploadConfig holds upload handler limits.
type UploadConfig struct {
	MaxSizeBytes int64 `koanf:"max_size_bytes"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout.Duration() <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	if c.Catalog.Root == "" {
		return errors.New("catalog root cannot be empty")
	}
	for i, cat := range c.Catalog.Categories {
		if cat.Folder == "" {
			return fmt.Errorf("category %d: folder cannot be empty", i)
		}
	}
	if c.Upload.MaxSizeBytes <= 0 {
		return errors.New("upload max size must be positive")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = Duration(10 * time.Second)
	}
	if cfg.Catalog.Root == "" {
		cfg.Catalog.Root = "projects"
	}
	if cfg.Upload.MaxSizeBytes == 0 {
		cfg.Upload.MaxSizeBytes = 50 << 20
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
