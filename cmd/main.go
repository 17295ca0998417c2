package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/emberfm/ember/internal/mediaindex"
	"github.com/emberfm/ember/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var index mediaindex.Service
	switch config.Index.Backend {
	case "remote":
		index = mediaindex.NewRemote(config.Index.RemoteURL, nil, config.Index.RequestRate)
	default:
		index = mediaindex.NewFilesystem(expandHome(config.Library.Root), logger)
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Index:  index,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "ember",
		Usage:    "Scan, query, and manage a local music library",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}

// expandHome resolves a leading ~/ against the current user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
