package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/emberfm/ember/internal/deletion"
	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/repositories"
	"github.com/emberfm/ember/internal/shared"
	"github.com/urfave/cli/v3"
)

// Delete removes a track from the media store through the tiered deletion
// workflow, prompting for consent when the backend requires it.
func (r *Runner) Delete(ctx context.Context, cmd *cli.Command) error {
	trackID := cmd.Int64("id")

	db, err := r.openDatabase()
	if err != nil {
		r.logger.Warn("database unavailable, playlist membership will not be cleaned up", "error", err)
		db = nil
	} else {
		defer db.Close()
	}

	catalog := r.scanCatalog(ctx, db, 0)
	track, ok := catalog.ByID(trackID)
	if !ok {
		return fmt.Errorf("%w: id %d", shared.ErrTrackNotFound, trackID)
	}

	tier, err := r.tier()
	if err != nil {
		return err
	}

	workflow := deletion.NewWorkflow(r.index, r.logger)
	outcome := workflow.Request(ctx, track, tier)

	if outcome.Kind == deletion.OutcomePendingConsent {
		granted := cmd.Bool("yes")
		if !granted {
			granted, err = r.promptConsent(track, outcome.Consent)
			if err != nil {
				cancelled := workflow.Cancel(outcome.Consent.ID)
				return cancelled.Reason
			}
		}
		outcome = workflow.Resume(ctx, outcome.Consent.ID, granted)
	}

	switch outcome.Kind {
	case deletion.OutcomeDeleted:
		r.cleanupDeletedTrack(db, trackID)
		r.writePlain("Deleted %q\n", track.Title)
		return nil
	default:
		return fmt.Errorf("delete failed: %w", outcome.Reason)
	}
}

// promptConsent asks the user to approve a parked deletion. An input read
// failure counts as dismissal, not denial.
func (r *Runner) promptConsent(track library.Track, consent *deletion.ConsentHandle) (bool, error) {
	reason := consent.Reason
	if reason == "" {
		reason = "the media store requires approval for this deletion"
	}
	r.writePlain("%s\n", reason)
	r.writePlain("Delete %q (%d item(s))? [y/N]: ", track.Title, len(consent.Locators))

	line, err := bufio.NewReader(r.input).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("%w: consent prompt aborted", shared.ErrConsentDismissed)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// cleanupDeletedTrack drops playlist membership and the stored playback
// position for a deleted track. Failures are logged, not fatal, since the
// media store delete already happened.
func (r *Runner) cleanupDeletedTrack(db *sql.DB, trackID int64) {
	if db == nil {
		return
	}
	if err := repositories.NewPlaylistRepository(db).RemoveTrackEverywhere(trackID); err != nil {
		r.logger.Warn("failed to remove deleted track from playlists", "track", trackID, "err", err)
	}
	if err := repositories.NewPositionRepository(db).Clear(trackID); err != nil {
		r.logger.Warn("failed to clear playback position", "track", trackID, "err", err)
	}
}
