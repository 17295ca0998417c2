package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/shared"
)

// PlaylistRepository is the playlist store: ordered sets of track
// identifiers under unique, caller-assigned titles.
//
// The resolver only ever calls [PlaylistRepository.GetByTitle]; the rest of
// the surface backs the playlist management commands.
type PlaylistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository creates a new PlaylistRepository with the given database connection
func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create inserts an empty playlist with the given title.
func (r *PlaylistRepository) Create(title string) error {
	if title == "" {
		return fmt.Errorf("%w: playlist title is required", shared.ErrInvalidInput)
	}

	now := time.Now()
	_, err := r.db.Exec(
		"INSERT INTO playlists (id, title, created_at, updated_at) VALUES (?, ?, ?, ?)",
		shared.GenerateID(), title, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create playlist %q: %w", title, err)
	}
	return nil
}

// GetByTitle retrieves a playlist and its ordered track identifiers.
// Returns an error wrapping [shared.ErrPlaylistNotFound] when absent.
func (r *PlaylistRepository) GetByTitle(title string) (*library.Playlist, error) {
	var id string
	err := r.db.QueryRow("SELECT id FROM playlists WHERE title = ?", title).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", shared.ErrPlaylistNotFound, title)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up playlist %q: %w", title, err)
	}

	rows, err := r.db.Query(
		"SELECT track_id FROM playlist_tracks WHERE playlist_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load playlist tracks: %w", err)
	}
	defer rows.Close()

	playlist := &library.Playlist{Title: title}
	for rows.Next() {
		var trackID int64
		if err := rows.Scan(&trackID); err != nil {
			return nil, fmt.Errorf("failed to scan track id: %w", err)
		}
		playlist.TrackIDs = append(playlist.TrackIDs, trackID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playlist tracks: %w", err)
	}

	return playlist, nil
}

// List returns all playlists ordered by title.
func (r *PlaylistRepository) List() ([]library.Playlist, error) {
	rows, err := r.db.Query("SELECT title FROM playlists ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to scan playlist title: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playlists: %w", err)
	}

	playlists := make([]library.Playlist, 0, len(titles))
	for _, title := range titles {
		p, err := r.GetByTitle(title)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, *p)
	}

	return playlists, nil
}

// Rename changes a playlist's title.
func (r *PlaylistRepository) Rename(oldTitle, newTitle string) error {
	if newTitle == "" {
		return fmt.Errorf("%w: playlist title is required", shared.ErrInvalidInput)
	}

	result, err := r.db.Exec(
		"UPDATE playlists SET title = ?, updated_at = ? WHERE title = ?",
		newTitle, time.Now(), oldTitle,
	)
	if err != nil {
		return fmt.Errorf("failed to rename playlist: %w", err)
	}
	return requireRow(result, oldTitle)
}

// Delete removes a playlist and its memberships.
func (r *PlaylistRepository) Delete(title string) error {
	result, err := r.db.Exec("DELETE FROM playlists WHERE title = ?", title)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	return requireRow(result, title)
}

// AddTrack appends a track identifier to the playlist. Adding an already
// present identifier is a no-op.
func (r *PlaylistRepository) AddTrack(title string, trackID int64) error {
	id, err := r.playlistID(title)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT OR IGNORE INTO playlist_tracks (playlist_id, track_id, position)
		VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM playlist_tracks WHERE playlist_id = ?))
	`, id, trackID, id)
	if err != nil {
		return fmt.Errorf("failed to add track to playlist: %w", err)
	}
	return nil
}

// RemoveTrack removes a track identifier from the playlist.
func (r *PlaylistRepository) RemoveTrack(title string, trackID int64) error {
	id, err := r.playlistID(title)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		"DELETE FROM playlist_tracks WHERE playlist_id = ? AND track_id = ?",
		id, trackID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove track from playlist: %w", err)
	}
	return nil
}

// RemoveTrackEverywhere removes a track identifier from every playlist.
// Called after a successful deletion so playlists do not keep dangling ids.
func (r *PlaylistRepository) RemoveTrackEverywhere(trackID int64) error {
	_, err := r.db.Exec("DELETE FROM playlist_tracks WHERE track_id = ?", trackID)
	if err != nil {
		return fmt.Errorf("failed to remove track from playlists: %w", err)
	}
	return nil
}

func (r *PlaylistRepository) playlistID(title string) (string, error) {
	var id string
	err := r.db.QueryRow("SELECT id FROM playlists WHERE title = ?", title).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %q", shared.ErrPlaylistNotFound, title)
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up playlist %q: %w", title, err)
	}
	return id, nil
}

func requireRow(result sql.Result, title string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %q", shared.ErrPlaylistNotFound, title)
	}
	return nil
}
