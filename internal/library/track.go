package library

import "strings"

// Track represents one validated audio record in the catalog.
//
// The ID is the media index service's stable identifier and the only notion
// of track identity in the system. Text fields have leading whitespace
// stripped and are never absent, only empty. Format is the normalized
// lowercase file extension and may be empty when the extension could not be
// resolved. PlaybackPositionMillis is nil unless a prior session saved one.
type Track struct {
	ID                     int64
	Title                  string
	Artist                 string
	Album                  string
	Locator                string
	DurationMillis         int64
	Format                 string
	DateAdded              int64
	PlaybackPositionMillis *int64
}

// Playlist represents an ordered set of track identifiers under a unique,
// caller-assigned title. Playlists are owned by the playlist store; the
// library only reads them.
type Playlist struct {
	Title    string
	TrackIDs []int64
}

// Catalog is the ordered sequence of tracks produced by one scan pass.
//
// A nil Catalog means no scan has run yet; an empty non-nil Catalog means a
// scan ran and admitted nothing. Consumers treat a Catalog as read-only.
type Catalog []Track

// ByID returns the track with the given identifier, or false if absent.
func (c Catalog) ByID(id int64) (Track, bool) {
	for _, t := range c {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}

// Contains reports whether the playlist references the given track identifier.
func (p Playlist) Contains(id int64) bool {
	for _, tid := range p.TrackIDs {
		if tid == id {
			return true
		}
	}
	return false
}

// Matches reports whether the track's scoped attribute(s) contain query as a
// case-insensitive substring. An empty query matches everything.
func (t Track) Matches(scope FilterScope, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)

	switch scope {
	case ScopeTitle:
		return strings.Contains(strings.ToLower(t.Title), q)
	case ScopeArtist:
		return strings.Contains(strings.ToLower(t.Artist), q)
	case ScopeAlbum:
		return strings.Contains(strings.ToLower(t.Album), q)
	case ScopeAll:
		return strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Artist), q) ||
			strings.Contains(strings.ToLower(t.Album), q)
	}
	return false
}
