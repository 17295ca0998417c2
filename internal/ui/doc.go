// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing the library:
//  1. [LibraryView] : Browse, search, and sort the scanned catalog
//  2. [PlaylistListView] : Pick a playlist to scope the library view
//  3. [ConfirmDeleteView] : Confirm removal of the selected track
//  4. [ConsentView] : Resolve a deletion parked behind a consent handle
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// The catalog is scanned once at Init through a tea.Cmd so startup never blocks rendering; all later view changes are
// synchronous recomputes against the query engine.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
