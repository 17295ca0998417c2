package main

import (
	"context"
	"fmt"

	"github.com/emberfm/ember/internal/formatter"
	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/query"
	"github.com/emberfm/ember/internal/repositories"
	"github.com/urfave/cli/v3"
)

// Export writes the current library view (optionally scoped to a playlist
// or filtered by a search) to a file.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	playlists := repositories.NewPlaylistRepository(db)
	engine := query.NewEngine(playlists, r.defaultSort())
	engine.SetCatalog(r.scanCatalog(ctx, db, 0))

	name := "Library"
	source := "catalog"
	if playlist := cmd.String("playlist"); playlist != "" {
		if _, err := playlists.GetByTitle(playlist); err != nil {
			return err
		}
		engine.SetActivePlaylist(playlist)
		name = playlist
		source = "playlist"
	}

	if search := cmd.String("search"); search != "" {
		scope, err := library.ParseFilterScope(cmd.String("scope"))
		if err != nil {
			return err
		}
		engine.SetFilterScope(scope)
		engine.SetSearchText(search)
	}

	listing := &formatter.Listing{
		Name:   name,
		Source: source,
		Tracks: engine.VisibleTracks(),
	}

	path, err := formatter.Write(listing, cmd.String("format"), cmd.String("output"))
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.writePlain("Exported %d tracks to %s\n", len(listing.Tracks), path)
	return nil
}
