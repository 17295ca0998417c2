package query

import "github.com/emberfm/ember/internal/library"

// PlaylistStore is the slice of the playlist store the resolver needs.
type PlaylistStore interface {
	// GetByTitle returns the playlist or an error wrapping
	// shared.ErrPlaylistNotFound when absent.
	GetByTitle(title string) (*library.Playlist, error)
}

// TracksInPlaylist filters the catalog down to the members of the named
// playlist, sorted title-ascending.
//
// A missing playlist yields an empty sequence rather than an error: a stale
// playlist reference is a normal transient state, indistinguishable here
// from a playlist whose members all left the catalog. The playlist view is
// always alphabetical regardless of the caller's global sort preference.
func TracksInPlaylist(store PlaylistStore, catalog library.Catalog, title string) []library.Track {
	if store == nil {
		return []library.Track{}
	}

	playlist, err := store.GetByTitle(title)
	if err != nil {
		return []library.Track{}
	}

	members := make([]library.Track, 0, len(playlist.TrackIDs))
	for _, track := range catalog {
		if playlist.Contains(track.ID) {
			members = append(members, track)
		}
	}

	return library.Sorted(members, library.TitleAscending)
}
