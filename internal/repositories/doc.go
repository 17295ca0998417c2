// Package repositories provides the SQLite-backed external stores the
// library core reads from: the playlist store and the playback-position
// settings store.
//
// Both stores own their persistence completely. The catalog itself is never
// persisted here; it is rebuilt from the media index on every scan.
package repositories
