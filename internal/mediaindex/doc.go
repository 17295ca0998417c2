// Package mediaindex defines the boundary to the external media index
// service and its two concrete backends.
//
// The [Service] interface is the only way the rest of the application sees
// indexed media: a query returning raw rows, a pair of delete entry points,
// and a capability report used to pick the deletion tier. [Filesystem] walks
// a local directory and reads embedded metadata; [Remote] queries a media
// index daemon over HTTP with request pacing.
//
// Backends never validate catalog semantics — trimming, format filtering,
// and playback-position merging belong to the scanner.
package mediaindex
