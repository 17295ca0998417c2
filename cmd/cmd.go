// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// scanCommand runs the ingest pipeline against the media index.
func scanCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "Scan the media index and print the validated catalog",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of tracks to admit (0 = no cap)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Scan,
	}
}

// tracksCommand queries the scanned catalog.
func tracksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tracks",
		Aliases: []string{"t"},
		Usage:   "Query the track catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List tracks with optional search, sort, and playlist scope",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"q"},
						Usage:   "Free-text search query",
					},
					&cli.StringFlag{
						Name:  "scope",
						Usage: "Search scope (title, artist, album, all)",
						Value: "title",
					},
					&cli.StringFlag{
						Name:    "sort",
						Aliases: []string{"s"},
						Usage:   "Sort order (title-asc, title-desc, newest, oldest)",
					},
					&cli.StringFlag{
						Name:    "playlist",
						Aliases: []string{"p"},
						Usage:   "Scope the listing to a playlist",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of tracks to scan (0 = no cap)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.TracksList,
			},
			{
				Name:  "show",
				Usage: "Show one track by ID",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:     "id",
						Usage:    "Track ID",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.TracksShow,
			},
		},
	}
}

// playlistsCommand manages stored playlists.
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"pl"},
		Usage:   "Manage playlists",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create an empty playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Action: r.PlaylistCreate,
			},
			{
				Name:  "list",
				Usage: "List all playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.PlaylistList,
			},
			{
				Name:  "show",
				Usage: "Show a playlist's tracks",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.PlaylistShow,
			},
			{
				Name:  "rename",
				Usage: "Rename a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
					&cli.StringArg{Name: "new-title"},
				},
				Action: r.PlaylistRename,
			},
			{
				Name:  "delete",
				Usage: "Delete a playlist (tracks are not touched)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Action: r.PlaylistDelete,
			},
			{
				Name:  "add",
				Usage: "Add a track to a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:     "id",
						Usage:    "Track ID to add",
						Required: true,
					},
				},
				Action: r.PlaylistAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a track from a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:     "id",
						Usage:    "Track ID to remove",
						Required: true,
					},
				},
				Action: r.PlaylistRemove,
			},
		},
	}
}

// deleteCommand removes a track from the underlying media store.
func deleteCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a track from the media store",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "id",
				Usage:    "Track ID to delete",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Grant consent without prompting",
			},
		},
		Action: r.Delete,
	}
}

// positionCommand manages stored playback positions.
func positionCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "position",
		Usage: "Manage playback positions",
		Commands: []*cli.Command{
			{
				Name:  "save",
				Usage: "Save a playback position for a track",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:     "id",
						Usage:    "Track ID",
						Required: true,
					},
					&cli.Int64Flag{
						Name:     "millis",
						Usage:    "Position in milliseconds",
						Required: true,
					},
				},
				Action: r.PositionSave,
			},
			{
				Name:  "clear",
				Usage: "Clear a track's saved position",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:     "id",
						Usage:    "Track ID",
						Required: true,
					},
				},
				Action: r.PositionClear,
			},
		},
	}
}

// exportCommand writes a track listing to disk.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export a track listing to CSV, Markdown, text, or JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "playlist",
				Aliases: []string{"p"},
				Usage:   "Export a playlist instead of the full library",
			},
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"q"},
				Usage:   "Filter the listing with a search query",
			},
			&cli.StringFlag{
				Name:  "scope",
				Usage: "Search scope (title, artist, album, all)",
				Value: "title",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format (csv, markdown, text, json)",
				Value:   "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path",
			},
		},
		Action: r.Export,
	}
}

// tuiCommand returns the top-level TUI command for interactive library browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for library browsing",
		Action:  r.TUI,
	}
}
