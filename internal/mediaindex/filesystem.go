package mediaindex

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dhowden/tag"
	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/shared"
	"github.com/tcolgate/mp3"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".m4a":  true,
	".ogg":  true,
	".opus": true,
	".wav":  true,
	".dsf":  true,
}

// Filesystem implements [Service] over a local music directory.
//
// Row identifiers are FNV-1a hashes of the file path, stable across scans as
// long as files do not move. Deletes remove files directly, so the reported
// deletion tier is [library.DirectDelete].
type Filesystem struct {
	root   string
	logger *log.Logger
}

var _ Service = (*Filesystem)(nil)

// NewFilesystem creates a filesystem-backed media index rooted at root.
func NewFilesystem(root string, logger *log.Logger) *Filesystem {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Filesystem{root: root, logger: logger}
}

func (f *Filesystem) Name() string { return "filesystem" }

func (f *Filesystem) Capabilities() Capabilities {
	return Capabilities{Deletion: library.DirectDelete}
}

// Query walks the root directory collecting audio rows. An unreadable root
// counts as an unavailable index.
func (f *Filesystem) Query(ctx context.Context, req QueryRequest) ([]Row, error) {
	if _, err := os.Stat(f.root); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrScanUnavailable, err)
	}

	var rows []Row
	err := filepath.WalkDir(f.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if req.MusicOnly && !audioExtensions[ext] {
			return nil
		}

		row, rerr := f.readRow(path, ext)
		if rerr != nil {
			f.logger.Warn("skipping unreadable file", "path", path, "err", rerr)
			return nil
		}
		rows = append(rows, row)

		if req.Limit > 0 && len(rows) >= req.Limit && !req.SortByTitle {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrScanUnavailable, err)
	}

	if req.SortByTitle {
		sort.SliceStable(rows, func(i, j int) bool {
			return strings.ToLower(rows[i].Title) < strings.ToLower(rows[j].Title)
		})
	}
	if req.Limit > 0 && len(rows) > req.Limit {
		rows = rows[:req.Limit]
	}

	return rows, nil
}

// Delete removes the file behind the locator. Permission failures map to a
// non-recoverable *PermissionError; there is no consent flow on a plain
// filesystem.
func (f *Filesystem) Delete(ctx context.Context, locator string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(locator); err != nil {
		if os.IsPermission(err) {
			return &PermissionError{Locator: locator, Err: err}
		}
		return fmt.Errorf("failed to delete %s: %w", locator, err)
	}
	return nil
}

// DeleteBatch removes each locator in order, stopping at the first failure.
func (f *Filesystem) DeleteBatch(ctx context.Context, locators []string) error {
	for _, locator := range locators {
		if err := f.Delete(ctx, locator); err != nil {
			return err
		}
	}
	return nil
}

// readRow builds a Row from one audio file, preferring embedded metadata and
// falling back to the file name for the title.
func (f *Filesystem) readRow(path, ext string) (Row, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Row{}, err
	}

	row := Row{
		ID:           pathID(path),
		Title:        strings.TrimSuffix(filepath.Base(path), ext),
		MIMEType:     mime.TypeByExtension(ext),
		Locator:      path,
		DateModified: info.ModTime().Unix(),
	}

	file, err := os.Open(path)
	if err != nil {
		return Row{}, err
	}
	defer file.Close()

	if m, err := tag.ReadFrom(file); err == nil {
		if t := m.Title(); t != "" {
			row.Title = t
		}
		row.Artist = m.Artist()
		row.Album = m.Album()
	}

	if ext == ".mp3" {
		if d, err := mp3Duration(path); err == nil {
			row.DurationMillis = d
		}
	}

	return row, nil
}

// mp3Duration sums frame durations across the file.
func mp3Duration(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d := mp3.NewDecoder(f)
	var frame mp3.Frame
	var skipped int
	var total int64

	for {
		if err := d.Decode(&frame, &skipped); err != nil {
			if err == io.EOF {
				break
			}
			return 0, err
		}
		total += frame.Duration().Milliseconds()
	}
	return total, nil
}

// pathID derives a stable 63-bit identifier from the file path.
func pathID(path string) int64 {
	h := fnv.New64a()
	h.Write([]byte(path))
	return int64(h.Sum64() & (1<<63 - 1))
}
