// Package library defines the catalog record model shared by the scanner,
// query engine, and deletion workflow.
//
// The package contains value types only:
//   - [Track] : one validated catalog record, immutable once produced by a scan
//   - [Catalog] : the full ordered track sequence from one scan pass
//   - [Playlist] : a caller-titled ordered set of track identifiers
//   - [SortOption] / [FilterScope] : enumerations driving the query engine
//
// A fresh scan replaces the previous [Catalog] wholesale; nothing in this
// package mutates a catalog in place.
package library
