package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PositionRepository is the settings store for saved playback positions,
// keyed by media index track identifier.
type PositionRepository struct {
	db *sql.DB
}

// NewPositionRepository creates a new PositionRepository with the given database connection
func NewPositionRepository(db *sql.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// Read returns the saved playback position in milliseconds, or nil if no
// position has been saved for the track.
func (r *PositionRepository) Read(trackID int64) (*int64, error) {
	var millis int64
	err := r.db.QueryRow(
		"SELECT position_millis FROM playback_positions WHERE track_id = ?",
		trackID,
	).Scan(&millis)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read playback position: %w", err)
	}
	return &millis, nil
}

// Save stores or replaces the playback position for a track.
func (r *PositionRepository) Save(trackID, positionMillis int64) error {
	if positionMillis < 0 {
		positionMillis = 0
	}
	_, err := r.db.Exec(`
		INSERT INTO playback_positions (track_id, position_millis, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(track_id) DO UPDATE SET position_millis = excluded.position_millis, updated_at = excluded.updated_at
	`, trackID, positionMillis, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save playback position: %w", err)
	}
	return nil
}

// Clear removes any saved position for a track. Clearing an absent position
// is a no-op.
func (r *PositionRepository) Clear(trackID int64) error {
	_, err := r.db.Exec("DELETE FROM playback_positions WHERE track_id = ?", trackID)
	if err != nil {
		return fmt.Errorf("failed to clear playback position: %w", err)
	}
	return nil
}
