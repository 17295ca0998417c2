package main

import (
	"context"
	"fmt"

	"github.com/emberfm/ember/internal/query"
	"github.com/emberfm/ember/internal/repositories"
	"github.com/emberfm/ember/internal/shared"
	"github.com/urfave/cli/v3"
)

// PlaylistCreate creates an empty playlist.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: playlist title", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.NewPlaylistRepository(db).Create(title); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	r.writePlain("Created playlist %q\n", title)
	return nil
}

// PlaylistList lists all stored playlists.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	playlists, err := repositories.NewPlaylistRepository(db).List()
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, true)
	}

	if len(playlists) == 0 {
		r.writePlain("No playlists\n")
		return nil
	}
	for _, pl := range playlists {
		r.writePlain("%s (%d tracks)\n", pl.Title, len(pl.TrackIDs))
	}
	return nil
}

// PlaylistShow resolves a playlist's members against the current catalog and
// prints them alphabetically.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: playlist title", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	playlists := repositories.NewPlaylistRepository(db)
	if _, err := playlists.GetByTitle(title); err != nil {
		return err
	}

	catalog := r.scanCatalog(ctx, db, 0)
	tracks := query.TracksInPlaylist(playlists, catalog, title)

	if cmd.Bool("json") {
		return r.writeJSON(tracks, true)
	}

	r.writePlain("%s (%d tracks)\n\n", title, len(tracks))
	for i, track := range tracks {
		r.writeTrackLine(i, track)
	}
	return nil
}

// PlaylistRename renames a playlist.
func (r *Runner) PlaylistRename(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	newTitle := cmd.StringArg("new-title")
	if title == "" || newTitle == "" {
		return fmt.Errorf("%w: playlist titles", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.NewPlaylistRepository(db).Rename(title, newTitle); err != nil {
		return fmt.Errorf("failed to rename playlist: %w", err)
	}

	r.writePlain("Renamed %q to %q\n", title, newTitle)
	return nil
}

// PlaylistDelete deletes a playlist. Member tracks are untouched.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: playlist title", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.NewPlaylistRepository(db).Delete(title); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	r.writePlain("Deleted playlist %q\n", title)
	return nil
}

// PlaylistAdd adds a catalog track to a playlist.
func (r *Runner) PlaylistAdd(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: playlist title", shared.ErrMissingArgument)
	}
	trackID := cmd.Int64("id")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	catalog := r.scanCatalog(ctx, db, 0)
	track, ok := catalog.ByID(trackID)
	if !ok {
		return fmt.Errorf("%w: id %d", shared.ErrTrackNotFound, trackID)
	}

	if err := repositories.NewPlaylistRepository(db).AddTrack(title, trackID); err != nil {
		return fmt.Errorf("failed to add track: %w", err)
	}

	r.writePlain("Added %q to %q\n", track.Title, title)
	return nil
}

// PlaylistRemove removes a track from a playlist.
func (r *Runner) PlaylistRemove(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: playlist title", shared.ErrMissingArgument)
	}
	trackID := cmd.Int64("id")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.NewPlaylistRepository(db).RemoveTrack(title, trackID); err != nil {
		return fmt.Errorf("failed to remove track: %w", err)
	}

	r.writePlain("Removed track %d from %q\n", trackID, title)
	return nil
}
