package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Images   ImagesConfig   `yaml:"images"`
	Search   SearchConfig   `yaml:"search"`
	Cleanup  CleanupConfig  `yaml:"cleanup"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port         string   `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Type   string       `yaml:"type"`
	MySQL  MySQLConfig  `yaml:"mysql"`
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// MySQLConfig contains MySQL connection settings
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// SQLiteConfig contains SQLite settings
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// ImagesConfig contains image upload and storage settings
type ImagesConfig struct {
	UploadPath        string   `yaml:"upload_path"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
	MaxFileSizeMB     int      `yaml:"max_file_size_mb"`
	BasePath          string   `yaml:"base_path"`
}

// SearchConfig contains search engine settings
type SearchConfig struct {
	Meilisearch MeilisearchConfig `yaml:"meilisearch"`
}

// MeilisearchConfig contains Meilisearch connection settings
type MeilisearchConfig struct {
	Host   string `yaml:"host"`
	APIKey string `yaml:"api_key"`
}

// CleanupConfig contains orphan image cleanup settings
type CleanupConfig struct {
	Enabled          bool   `yaml:"enabled"`
	DailyRunTime     string `yaml:"daily_run_time"`
	DryRun           bool   `yaml:"dry_run"`
	MaxDeletionCount int    `yaml:"max_deletion_count"`
	GraceMinutes     int    `yaml:"grace_minutes"`
}

// MaxFileSizeBytes returns the upload size limit in bytes
func (c *ImagesConfig) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// GracePeriod returns the cleanup grace period as a duration
func (c *CleanupConfig) GracePeriod() time.Duration {
	return time.Duration(c.GraceMinutes) * time.Minute
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			AllowOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Type: "sqlite",
			SQLite: SQLiteConfig{
				Path: "portfolio.db",
			},
		},
		Images: ImagesConfig{
			UploadPath:        "wwwroot/images",
			AllowedExtensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp"},
			MaxFileSizeMB:     5,
			BasePath:          "/images",
		},
		Cleanup: CleanupConfig{
			Enabled:          false,
			DailyRunTime:     "03:00",
			DryRun:           true,
			MaxDeletionCount: 1000,
			GraceMinutes:     60,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filepath string) (*Config, error) {
	// Start with default config
	config := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
