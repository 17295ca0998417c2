package main

import (
	"context"

	"github.com/emberfm/ember/internal/repositories"
	"github.com/emberfm/ember/internal/shared"
	"github.com/urfave/cli/v3"
)

// PositionSave stores a playback position for a track.
func (r *Runner) PositionSave(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	trackID := cmd.Int64("id")
	millis := cmd.Int64("millis")

	if err := repositories.NewPositionRepository(db).Save(trackID, millis); err != nil {
		return err
	}

	r.writePlain("Saved position %s for track %d\n", shared.FormatDuration(millis), trackID)
	return nil
}

// PositionClear removes a track's saved playback position.
func (r *Runner) PositionClear(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	trackID := cmd.Int64("id")
	if err := repositories.NewPositionRepository(db).Clear(trackID); err != nil {
		return err
	}

	r.writePlain("Cleared position for track %d\n", trackID)
	return nil
}
