package query

import "github.com/emberfm/ember/internal/library"

// Engine holds the view state over the current catalog snapshot and serves
// the visible track list.
//
// Catalog snapshots are immutable; SetCatalog installs a replacement
// wholesale so readers see either the old or the new catalog, never a mix.
// A nil catalog means no scan has run yet and VisibleTracks returns nil;
// after a scan that admitted nothing the catalog is empty but non-nil.
type Engine struct {
	store       PlaylistStore
	catalog     library.Catalog
	searchText  string
	scope       library.FilterScope
	sort        library.SortOption
	defaultSort library.SortOption
	playlist    string
	visible     []library.Track
}

// NewEngine creates an Engine with no catalog, empty search text, title
// scope, and the given default sort.
func NewEngine(store PlaylistStore, defaultSort library.SortOption) *Engine {
	return &Engine{
		store:       store,
		scope:       library.ScopeTitle,
		sort:        defaultSort,
		defaultSort: defaultSort,
	}
}

// VisibleTracks returns the track list last published by a mutator. The
// returned slice is owned by the engine; callers must not modify it.
func (e *Engine) VisibleTracks() []library.Track {
	return e.visible
}

// HasScanned reports whether a catalog snapshot has ever been installed.
// Distinguishes "scan not yet run" from "scanned, found zero".
func (e *Engine) HasScanned() bool {
	return e.catalog != nil
}

// Catalog returns the current snapshot.
func (e *Engine) Catalog() library.Catalog { return e.catalog }

// SearchText returns the current free-text query.
func (e *Engine) SearchText() string { return e.searchText }

// FilterScope returns the current search scope.
func (e *Engine) FilterScope() library.FilterScope { return e.scope }

// SortOption returns the current sort order.
func (e *Engine) SortOption() library.SortOption { return e.sort }

// ActivePlaylist returns the active playlist title, "" when browsing the
// full catalog.
func (e *Engine) ActivePlaylist() string { return e.playlist }

// SetCatalog installs a fresh scan snapshot and republishes the visible list.
func (e *Engine) SetCatalog(catalog library.Catalog) {
	e.catalog = catalog
	e.recompute()
}

// SetSearchText replaces the free-text query.
func (e *Engine) SetSearchText(text string) {
	e.searchText = text
	e.recompute()
}

// SetFilterScope replaces the search scope.
func (e *Engine) SetFilterScope(scope library.FilterScope) {
	e.scope = scope
	e.recompute()
}

// CycleFilterScope advances to the next scope and returns it.
func (e *Engine) CycleFilterScope() library.FilterScope {
	e.scope = e.scope.Next()
	e.recompute()
	return e.scope
}

// SetSortOption replaces the sort order.
func (e *Engine) SetSortOption(option library.SortOption) {
	e.sort = option
	e.recompute()
}

// SetActivePlaylist scopes the view to the named playlist. An empty title
// restores the full catalog view.
func (e *Engine) SetActivePlaylist(title string) {
	e.playlist = title
	e.recompute()
}

// Reset clears search text and active playlist and restores the default
// sort, returning the view to the full catalog.
func (e *Engine) Reset() {
	e.searchText = ""
	e.playlist = ""
	e.sort = e.defaultSort
	e.recompute()
}

// recompute rebuilds the visible list: playlist membership first, then
// scoped search filtering, then sorting. Playlist views stay alphabetical
// regardless of the global sort option.
func (e *Engine) recompute() {
	if e.catalog == nil {
		e.visible = nil
		return
	}

	var base []library.Track
	inPlaylist := e.playlist != ""
	if inPlaylist {
		base = TracksInPlaylist(e.store, e.catalog, e.playlist)
	} else {
		base = e.catalog
	}

	filtered := base
	if e.searchText != "" {
		filtered = make([]library.Track, 0, len(base))
		for _, track := range base {
			if track.Matches(e.scope, e.searchText) {
				filtered = append(filtered, track)
			}
		}
	}

	if inPlaylist {
		// Already title-ascending from the resolver.
		e.visible = filtered
		return
	}
	e.visible = library.Sorted(filtered, e.sort)
}
