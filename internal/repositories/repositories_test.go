package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/emberfm/ember/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestPlaylistRepository(t *testing.T) {
	t.Run("Create and GetByTitle", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		if err := repo.Create("Favorites"); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		playlist, err := repo.GetByTitle("Favorites")
		if err != nil {
			t.Fatalf("failed to get playlist: %v", err)
		}
		if playlist.Title != "Favorites" {
			t.Errorf("expected title Favorites, got %s", playlist.Title)
		}
		if len(playlist.TrackIDs) != 0 {
			t.Errorf("expected empty playlist, got %v", playlist.TrackIDs)
		}
	})

	t.Run("Create rejects duplicate title", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		if err := repo.Create("Favorites"); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if err := repo.Create("Favorites"); err == nil {
			t.Error("expected error for duplicate title")
		}
	})

	t.Run("Create rejects empty title", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		if err := repo.Create(""); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("GetByTitle missing playlist", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		_, err := repo.GetByTitle("Nope")
		if !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("AddTrack keeps order and ignores duplicates", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		if err := repo.Create("Road Trip"); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		for _, id := range []int64{5, 2, 9, 2} {
			if err := repo.AddTrack("Road Trip", id); err != nil {
				t.Fatalf("failed to add track %d: %v", id, err)
			}
		}

		playlist, err := repo.GetByTitle("Road Trip")
		if err != nil {
			t.Fatalf("failed to get playlist: %v", err)
		}

		want := []int64{5, 2, 9}
		if len(playlist.TrackIDs) != len(want) {
			t.Fatalf("expected %v, got %v", want, playlist.TrackIDs)
		}
		for i := range want {
			if playlist.TrackIDs[i] != want[i] {
				t.Errorf("expected %v, got %v", want, playlist.TrackIDs)
				break
			}
		}
	})

	t.Run("AddTrack to missing playlist", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		if err := repo.AddTrack("Nope", 1); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("RemoveTrack", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		if err := repo.Create("Favorites"); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		repo.AddTrack("Favorites", 1)
		repo.AddTrack("Favorites", 2)

		if err := repo.RemoveTrack("Favorites", 1); err != nil {
			t.Fatalf("failed to remove track: %v", err)
		}

		playlist, _ := repo.GetByTitle("Favorites")
		if len(playlist.TrackIDs) != 1 || playlist.TrackIDs[0] != 2 {
			t.Errorf("expected [2], got %v", playlist.TrackIDs)
		}
	})

	t.Run("RemoveTrackEverywhere", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		repo.Create("A")
		repo.Create("B")
		repo.AddTrack("A", 7)
		repo.AddTrack("B", 7)
		repo.AddTrack("B", 8)

		if err := repo.RemoveTrackEverywhere(7); err != nil {
			t.Fatalf("failed to remove track everywhere: %v", err)
		}

		a, _ := repo.GetByTitle("A")
		b, _ := repo.GetByTitle("B")
		if len(a.TrackIDs) != 0 {
			t.Errorf("expected A empty, got %v", a.TrackIDs)
		}
		if len(b.TrackIDs) != 1 || b.TrackIDs[0] != 8 {
			t.Errorf("expected B [8], got %v", b.TrackIDs)
		}
	})

	t.Run("Rename and Delete", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		repo.Create("Old")

		if err := repo.Rename("Old", "New"); err != nil {
			t.Fatalf("failed to rename playlist: %v", err)
		}
		if _, err := repo.GetByTitle("New"); err != nil {
			t.Errorf("renamed playlist should exist: %v", err)
		}

		if err := repo.Delete("New"); err != nil {
			t.Fatalf("failed to delete playlist: %v", err)
		}
		if _, err := repo.GetByTitle("New"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("deleted playlist should be gone, got %v", err)
		}

		if err := repo.Delete("New"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound for double delete, got %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		repo.Create("Zebra")
		repo.Create("Alpha")

		playlists, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list playlists: %v", err)
		}
		if len(playlists) != 2 || playlists[0].Title != "Alpha" || playlists[1].Title != "Zebra" {
			t.Errorf("expected [Alpha Zebra], got %v", playlists)
		}
	})
}

func TestPositionRepository(t *testing.T) {
	t.Run("Read returns nil when absent", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPositionRepository(db)
		pos, err := repo.Read(42)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if pos != nil {
			t.Errorf("expected nil position, got %v", *pos)
		}
	})

	t.Run("Save and Read", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPositionRepository(db)
		if err := repo.Save(42, 90_000); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		pos, err := repo.Read(42)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if pos == nil || *pos != 90_000 {
			t.Errorf("expected 90000, got %v", pos)
		}
	})

	t.Run("Save replaces existing position", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPositionRepository(db)
		repo.Save(42, 90_000)
		if err := repo.Save(42, 120_000); err != nil {
			t.Fatalf("second save failed: %v", err)
		}

		pos, _ := repo.Read(42)
		if pos == nil || *pos != 120_000 {
			t.Errorf("expected 120000, got %v", pos)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPositionRepository(db)
		repo.Save(42, 90_000)

		if err := repo.Clear(42); err != nil {
			t.Fatalf("clear failed: %v", err)
		}
		pos, _ := repo.Read(42)
		if pos != nil {
			t.Errorf("expected nil after clear, got %v", *pos)
		}

		if err := repo.Clear(42); err != nil {
			t.Errorf("clearing absent position should be a no-op: %v", err)
		}
	})

	t.Run("negative positions clamp to zero", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPositionRepository(db)
		repo.Save(42, -5)

		pos, _ := repo.Read(42)
		if pos == nil || *pos != 0 {
			t.Errorf("expected 0, got %v", pos)
		}
	})
}
