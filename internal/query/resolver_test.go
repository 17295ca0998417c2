package query

import (
	"errors"
	"testing"

	"github.com/emberfm/ember/internal/library"
	tu "github.com/emberfm/ember/internal/testing"
)

func testCatalog() library.Catalog {
	return library.Catalog{
		{ID: 1, Title: "Apple", DateAdded: 100},
		{ID: 2, Title: "banana", DateAdded: 50},
		{ID: 3, Title: "Cherry", DateAdded: 75},
	}
}

func TestTracksInPlaylist(t *testing.T) {
	store := &tu.FakePlaylists{Playlists: map[string]library.Playlist{
		"Favorites": {Title: "Favorites", TrackIDs: []int64{2}},
		"Fruit":     {Title: "Fruit", TrackIDs: []int64{3, 1, 99}},
	}}

	t.Run("filters catalog to members", func(t *testing.T) {
		got := TracksInPlaylist(store, testCatalog(), "Favorites")
		if len(got) != 1 || got[0].ID != 2 {
			t.Errorf("expected [banana], got %v", got)
		}
	})

	t.Run("result is sorted title-ascending", func(t *testing.T) {
		got := TracksInPlaylist(store, testCatalog(), "Fruit")
		if len(got) != 2 {
			t.Fatalf("expected 2 tracks, got %d", len(got))
		}
		if got[0].Title != "Apple" || got[1].Title != "Cherry" {
			t.Errorf("expected [Apple Cherry], got [%s %s]", got[0].Title, got[1].Title)
		}
	})

	t.Run("ids missing from catalog are skipped", func(t *testing.T) {
		got := TracksInPlaylist(store, testCatalog(), "Fruit")
		for _, track := range got {
			if track.ID == 99 {
				t.Error("track 99 is not in the catalog and must not appear")
			}
		}
	})

	t.Run("unknown playlist yields empty sequence", func(t *testing.T) {
		got := TracksInPlaylist(store, testCatalog(), "Ghost")
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil sequence, got %v", got)
		}
	})

	t.Run("store failure degrades to empty sequence", func(t *testing.T) {
		broken := &tu.FakePlaylists{Err: errors.New("database locked")}
		got := TracksInPlaylist(broken, testCatalog(), "Favorites")
		if len(got) != 0 {
			t.Errorf("expected empty sequence, got %v", got)
		}
	})
}
