package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/emberfm/ember/internal/deletion"
	"github.com/emberfm/ember/internal/library"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgCatalogLoaded MsgKind = iota
	MsgPlaylistsFetched
	MsgDeleteResolved
)

// catalogLoadedMsg is the constructor for [MsgCatalogLoaded]
func catalogLoadedMsg(catalog library.Catalog) Msg {
	return Msg{kind: MsgCatalogLoaded, data: catalog}
}

// playlistsFetchedMsg is the constructor for [MsgPlaylistsFetched]
func playlistsFetchedMsg(playlists []library.Playlist, err error) Msg {
	return Msg{
		kind: MsgPlaylistsFetched,
		data: struct {
			playlists []library.Playlist
			err       error
		}{playlists, err},
	}
}

// deleteResolvedMsg is the constructor for [MsgDeleteResolved]
func deleteResolvedMsg(track library.Track, outcome deletion.Outcome) Msg {
	return Msg{
		kind: MsgDeleteResolved,
		data: struct {
			track   library.Track
			outcome deletion.Outcome
		}{track, outcome},
	}
}
