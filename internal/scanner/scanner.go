// Package scanner turns raw media index rows into the validated catalog.
//
// One scan pass issues a single music-only query, normalizes each row,
// drops unsupported formats, merges saved playback positions, and produces
// a fresh immutable [library.Catalog]. Scanning is I/O bound and expected to
// run on a worker goroutine; the caller installs the returned snapshot into
// the query engine from its own sequencing context.
package scanner

import (
	"context"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/mediaindex"
	"github.com/emberfm/ember/internal/shared"
)

// PositionReader is the slice of the settings store the scanner needs.
type PositionReader interface {
	// Read returns the saved playback position for a track, nil when absent.
	Read(trackID int64) (*int64, error)
}

// mimeExtensions maps common audio MIME types to their normalized extension.
// The locator's own extension is the fallback when the MIME type is unknown.
var mimeExtensions = map[string]string{
	"audio/mpeg":   "mp3",
	"audio/mp3":    "mp3",
	"audio/flac":   "flac",
	"audio/x-flac": "flac",
	"audio/mp4":    "m4a",
	"audio/ogg":    "ogg",
	"audio/opus":   "opus",
	"audio/wav":    "wav",
	"audio/x-wav":  "wav",
	"audio/wave":   "wav",
	"audio/dsd":    "dsf",
	"audio/x-dsf":  "dsf",
}

// Scanner builds catalogs from the media index service.
type Scanner struct {
	index       mediaindex.Service
	positions   PositionReader
	unsupported map[string]bool
	logger      *log.Logger
}

// NewScanner creates a Scanner.
//
// unsupportedFormats lists normalized extensions never admitted to the
// catalog. positions may be nil, in which case no playback positions are
// merged.
func NewScanner(index mediaindex.Service, positions PositionReader, unsupportedFormats []string, logger *log.Logger) *Scanner {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	unsupported := make(map[string]bool, len(unsupportedFormats))
	for _, f := range unsupportedFormats {
		unsupported[strings.ToLower(strings.TrimPrefix(f, "."))] = true
	}

	return &Scanner{
		index:       index,
		positions:   positions,
		unsupported: unsupported,
		logger:      logger,
	}
}

// Scan queries the media index and returns the validated catalog.
//
// limit caps the number of admitted tracks; zero means no cap. An
// unreachable index soft-fails to an empty (non-nil) catalog: the library
// degrades to "no tracks" rather than surfacing a scan error to every
// consumer.
func (s *Scanner) Scan(ctx context.Context, limit int) library.Catalog {
	rows, err := s.index.Query(ctx, mediaindex.QueryRequest{
		MusicOnly:   true,
		SortByTitle: true,
	})
	if err != nil {
		s.logger.Warn("media index query failed, returning empty catalog", "backend", s.index.Name(), "err", err)
		return library.Catalog{}
	}

	catalog := make(library.Catalog, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		if limit > 0 && len(catalog) == limit {
			break
		}

		format := resolveFormat(row.MIMEType, row.Locator)
		if s.unsupported[format] {
			dropped++
			continue
		}

		track := library.Track{
			ID:             row.ID,
			Title:          trimLeading(row.Title),
			Artist:         trimLeading(row.Artist),
			Album:          trimLeading(row.Album),
			Locator:        row.Locator,
			DurationMillis: row.DurationMillis,
			Format:         format,
			DateAdded:      row.DateModified,
		}

		if s.positions != nil {
			pos, err := s.positions.Read(row.ID)
			if err != nil {
				s.logger.Warn("failed to read playback position", "track", row.ID, "err", err)
			} else {
				track.PlaybackPositionMillis = pos
			}
		}

		catalog = append(catalog, track)
	}

	s.logger.Info("scan complete", "backend", s.index.Name(), "admitted", len(catalog), "dropped", dropped)
	return catalog
}

// resolveFormat derives the normalized lowercase extension from the MIME
// type, falling back to the locator path. Returns "" when unresolvable; such
// tracks are still admitted.
func resolveFormat(mimeType, locator string) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if idx := strings.Index(mt, ";"); idx >= 0 {
		mt = strings.TrimSpace(mt[:idx])
	}
	if ext, ok := mimeExtensions[mt]; ok {
		return ext
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(locator), "."))
	return ext
}

// trimLeading strips leading whitespace only, matching the catalog's text
// field invariant.
func trimLeading(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
