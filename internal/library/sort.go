package library

import (
	"fmt"
	"sort"
	"strings"
)

// SortOption enumerates the catalog sort orders.
type SortOption int

const (
	TitleAscending SortOption = iota
	TitleDescending
	DateAddedDescending // new to old
	DateAddedAscending  // old to new
)

// String returns the configuration token for the sort option.
func (s SortOption) String() string {
	switch s {
	case TitleAscending:
		return "title-asc"
	case TitleDescending:
		return "title-desc"
	case DateAddedDescending:
		return "newest"
	case DateAddedAscending:
		return "oldest"
	}
	return "unknown"
}

// ParseSortOption maps a configuration token to a [SortOption].
func ParseSortOption(s string) (SortOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title-asc", "a-z", "":
		return TitleAscending, nil
	case "title-desc", "z-a":
		return TitleDescending, nil
	case "newest", "new-to-old":
		return DateAddedDescending, nil
	case "oldest", "old-to-new":
		return DateAddedAscending, nil
	}
	return TitleAscending, fmt.Errorf("unknown sort option %q", s)
}

// FilterScope enumerates which track attribute free-text search matches.
type FilterScope int

const (
	ScopeTitle FilterScope = iota
	ScopeArtist
	ScopeAlbum
	ScopeAll
)

// String returns the display name for the filter scope.
func (f FilterScope) String() string {
	switch f {
	case ScopeTitle:
		return "title"
	case ScopeArtist:
		return "artist"
	case ScopeAlbum:
		return "album"
	case ScopeAll:
		return "all"
	}
	return "unknown"
}

// Next cycles to the following scope, wrapping after [ScopeAll].
func (f FilterScope) Next() FilterScope {
	switch f {
	case ScopeTitle:
		return ScopeArtist
	case ScopeArtist:
		return ScopeAlbum
	case ScopeAlbum:
		return ScopeAll
	default:
		return ScopeTitle
	}
}

// ParseFilterScope maps a configuration token to a [FilterScope].
func ParseFilterScope(s string) (FilterScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title", "":
		return ScopeTitle, nil
	case "artist":
		return ScopeArtist, nil
	case "album":
		return ScopeAlbum, nil
	case "all":
		return ScopeAll, nil
	}
	return ScopeTitle, fmt.Errorf("unknown filter scope %q", s)
}

// Sorted returns a new slice holding tracks ordered by the given option.
//
// Title comparisons are case-insensitive; date comparisons are numeric on
// DateAdded. The sort is stable, so tracks with equal keys keep their
// relative input order across refreshes.
func Sorted(tracks []Track, option SortOption) []Track {
	out := make([]Track, len(tracks))
	copy(out, tracks)

	switch option {
	case TitleAscending:
		sort.SliceStable(out, func(i, j int) bool {
			return lessTitle(out[i], out[j])
		})
	case TitleDescending:
		sort.SliceStable(out, func(i, j int) bool {
			return lessTitle(out[j], out[i])
		})
	case DateAddedDescending:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DateAdded > out[j].DateAdded
		})
	case DateAddedAscending:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DateAdded < out[j].DateAdded
		})
	}

	return out
}

func lessTitle(a, b Track) bool {
	return strings.ToLower(a.Title) < strings.ToLower(b.Title)
}
