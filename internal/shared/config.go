package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Library  LibraryConfig  `toml:"library"`
	Database DatabaseConfig `toml:"database"`
	Index    IndexConfig    `toml:"index"`
	Deletion DeletionConfig `toml:"deletion"`
}

// LibraryConfig contains catalog and query defaults.
type LibraryConfig struct {
	Root               string   `toml:"root"`
	UnsupportedFormats []string `toml:"unsupported_formats"`
	DefaultSort        string   `toml:"default_sort"`
	ScanLimit          int      `toml:"scan_limit"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// IndexConfig selects and configures the media index backend.
//
// Backend is either "filesystem" (walk Library.Root directly) or "remote"
// (query a media index daemon over HTTP).
type IndexConfig struct {
	Backend     string  `toml:"backend"`
	RemoteURL   string  `toml:"remote_url"`
	RequestRate float64 `toml:"request_rate"`
}

// DeletionConfig contains deletion workflow settings.
//
// Tier overrides the capability tier reported by the media index backend.
// Valid values: "auto", "batch", "per-item", "direct".
type DeletionConfig struct {
	Tier string `toml:"tier"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, ErrInvalidInput)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
