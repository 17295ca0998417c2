package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/shared"
)

var (
	_ list.Item = trackItem{}
	_ list.Item = playlistItem{}
)

// trackItem wraps [library.Track] to implement [list.Item].
type trackItem struct {
	track library.Track
}

func (i trackItem) FilterValue() string { return i.track.Title }
func (i trackItem) Title() string       { return i.track.Title }
func (i trackItem) Description() string {
	desc := i.track.Artist
	if desc == "" {
		desc = "Unknown Artist"
	}
	if i.track.Album != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.Album)
	}
	if i.track.DurationMillis > 0 {
		desc = fmt.Sprintf("%s • %s", desc, shared.FormatDuration(i.track.DurationMillis))
	}
	return desc
}

// playlistItem wraps [library.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist library.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Title }
func (i playlistItem) Title() string       { return i.playlist.Title }
func (i playlistItem) Description() string {
	return fmt.Sprintf("%d tracks", len(i.playlist.TrackIDs))
}
