package main

import (
	"context"
	"fmt"

	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/query"
	"github.com/emberfm/ember/internal/repositories"
	"github.com/emberfm/ember/internal/shared"
	"github.com/urfave/cli/v3"
)

// Scan runs the ingest pipeline and prints the validated catalog.
func (r *Runner) Scan(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		r.logger.Warn("database unavailable, scanning without playback positions", "error", err)
		db = nil
	} else {
		defer db.Close()
	}

	catalog := r.scanCatalog(ctx, db, cmd.Int("limit"))

	if cmd.Bool("json") {
		return r.writeJSON(catalog, cmd.Bool("pretty"))
	}

	r.writePlain("Scanned %d tracks (backend: %s)\n\n", len(catalog), r.index.Name())
	for i, track := range catalog {
		r.writeTrackLine(i, track)
	}
	return nil
}

// TracksList queries the catalog with optional search, sort, and playlist
// scope.
func (r *Runner) TracksList(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	playlists := repositories.NewPlaylistRepository(db)
	engine := query.NewEngine(playlists, r.defaultSort())
	engine.SetCatalog(r.scanCatalog(ctx, db, cmd.Int("limit")))

	if search := cmd.String("search"); search != "" {
		scope, err := library.ParseFilterScope(cmd.String("scope"))
		if err != nil {
			return err
		}
		engine.SetFilterScope(scope)
		engine.SetSearchText(search)
	}

	if sort := cmd.String("sort"); sort != "" {
		option, err := library.ParseSortOption(sort)
		if err != nil {
			return err
		}
		engine.SetSortOption(option)
	}

	if playlist := cmd.String("playlist"); playlist != "" {
		if _, err := playlists.GetByTitle(playlist); err != nil {
			return err
		}
		engine.SetActivePlaylist(playlist)
	}

	tracks := engine.VisibleTracks()
	if cmd.Bool("json") {
		return r.writeJSON(tracks, true)
	}

	if len(tracks) == 0 {
		r.writePlain("No tracks found\n")
		return nil
	}
	for i, track := range tracks {
		r.writeTrackLine(i, track)
	}
	return nil
}

// TracksShow prints one track by ID.
func (r *Runner) TracksShow(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		r.logger.Warn("database unavailable, showing track without playback position", "error", err)
		db = nil
	} else {
		defer db.Close()
	}

	catalog := r.scanCatalog(ctx, db, 0)
	track, ok := catalog.ByID(cmd.Int64("id"))
	if !ok {
		return fmt.Errorf("%w: id %d", shared.ErrTrackNotFound, cmd.Int64("id"))
	}

	if cmd.Bool("json") {
		return r.writeJSON(track, true)
	}

	r.writePlain("Title:    %s\n", track.Title)
	r.writePlain("Artist:   %s\n", track.Artist)
	r.writePlain("Album:    %s\n", track.Album)
	r.writePlain("Format:   %s\n", track.Format)
	r.writePlain("Duration: %s\n", shared.FormatDuration(track.DurationMillis))
	r.writePlain("Locator:  %s\n", track.Locator)
	if track.PlaybackPositionMillis != nil {
		r.writePlain("Position: %s\n", shared.FormatDuration(*track.PlaybackPositionMillis))
	}
	return nil
}
