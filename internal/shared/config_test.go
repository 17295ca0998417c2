package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./ember.db" {
			t.Errorf("expected database path ./ember.db, got %s", config.Database.Path)
		}

		if config.Index.Backend != "filesystem" {
			t.Errorf("expected filesystem index backend, got %s", config.Index.Backend)
		}

		if config.Deletion.Tier != "auto" {
			t.Errorf("expected deletion tier auto, got %s", config.Deletion.Tier)
		}

		if len(config.Library.UnsupportedFormats) != 1 || config.Library.UnsupportedFormats[0] != "dsf" {
			t.Errorf("expected unsupported formats [dsf], got %v", config.Library.UnsupportedFormats)
		}

		if config.Library.DefaultSort != "title-asc" {
			t.Errorf("expected default sort title-asc, got %s", config.Library.DefaultSort)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[library]
root = "/srv/music"
unsupported_formats = ["dsf", "dff"]
default_sort = "newest"
scan_limit = 500

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[index]
backend = "remote"
remote_url = "http://localhost:9090"
request_rate = 2.5

[deletion]
tier = "per-item"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Library.Root != "/srv/music" {
			t.Errorf("expected library root /srv/music, got %s", config.Library.Root)
		}
		if len(config.Library.UnsupportedFormats) != 2 {
			t.Errorf("expected 2 unsupported formats, got %v", config.Library.UnsupportedFormats)
		}
		if config.Index.Backend != "remote" {
			t.Errorf("expected remote backend, got %s", config.Index.Backend)
		}
		if config.Index.RequestRate != 2.5 {
			t.Errorf("expected request rate 2.5, got %f", config.Index.RequestRate)
		}
		if config.Deletion.Tier != "per-item" {
			t.Errorf("expected deletion tier per-item, got %s", config.Deletion.Tier)
		}
	})

	t.Run("LoadConfig with missing file", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
