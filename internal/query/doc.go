// Package query implements the filter/sort engine over the catalog and the
// playlist membership resolver.
//
// The [Engine] owns all view state (search text, filter scope, sort option,
// active playlist) and recomputes its visible track list synchronously on
// every mutation, so a caller never observes a partially-applied
// filter/sort combination. It is single-writer by contract: all mutators
// and reads happen from one sequencing context (the CLI action or the TUI
// event loop) and the engine provides no internal locking.
package query
