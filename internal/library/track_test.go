package library

import "testing"

func TestTrackMatches(t *testing.T) {
	track := Track{
		ID:     1,
		Title:  "Midnight City",
		Artist: "M83",
		Album:  "Hurry Up, We're Dreaming",
	}

	t.Run("empty query matches everything", func(t *testing.T) {
		if !track.Matches(ScopeTitle, "") {
			t.Error("empty query should match")
		}
	})

	t.Run("title scope", func(t *testing.T) {
		if !track.Matches(ScopeTitle, "midnight") {
			t.Error("expected case-insensitive title match")
		}
		if track.Matches(ScopeTitle, "m83") {
			t.Error("title scope should not match artist")
		}
	})

	t.Run("artist scope", func(t *testing.T) {
		if !track.Matches(ScopeArtist, "m83") {
			t.Error("expected artist match")
		}
		if track.Matches(ScopeArtist, "midnight") {
			t.Error("artist scope should not match title")
		}
	})

	t.Run("album scope", func(t *testing.T) {
		if !track.Matches(ScopeAlbum, "dreaming") {
			t.Error("expected album match")
		}
	})

	t.Run("all scope matches any attribute", func(t *testing.T) {
		for _, q := range []string{"midnight", "m83", "hurry"} {
			if !track.Matches(ScopeAll, q) {
				t.Errorf("expected all-scope match for %q", q)
			}
		}
		if track.Matches(ScopeAll, "nope") {
			t.Error("all scope should not match absent text")
		}
	})
}

func TestCatalogByID(t *testing.T) {
	catalog := Catalog{
		{ID: 1, Title: "Apple"},
		{ID: 2, Title: "banana"},
	}

	if got, ok := catalog.ByID(2); !ok || got.Title != "banana" {
		t.Errorf("ByID(2) = %v, %v", got, ok)
	}
	if _, ok := catalog.ByID(99); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestPlaylistContains(t *testing.T) {
	p := Playlist{Title: "Favorites", TrackIDs: []int64{2, 5}}

	if !p.Contains(5) {
		t.Error("expected playlist to contain 5")
	}
	if p.Contains(1) {
		t.Error("expected playlist to not contain 1")
	}
}
