// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/mediaindex"
	"github.com/emberfm/ember/internal/shared"
)

// FakeIndex is a test double for [mediaindex.Service].
//
// Delete outcomes are scripted through DeleteResults, consumed one per call;
// once exhausted every delete succeeds. Deleted and BatchCalls record what
// the code under test asked for.
type FakeIndex struct {
	Rows          []mediaindex.Row
	QueryErr      error
	Tier          library.DeletionCapabilityTier
	DeleteResults []error
	Deleted       []string
	BatchCalls    [][]string
}

var _ mediaindex.Service = (*FakeIndex)(nil)

func (f *FakeIndex) Name() string { return "fake" }

func (f *FakeIndex) Capabilities() mediaindex.Capabilities {
	return mediaindex.Capabilities{Deletion: f.Tier}
}

func (f *FakeIndex) Query(ctx context.Context, req mediaindex.QueryRequest) ([]mediaindex.Row, error) {
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	rows := f.Rows
	if req.Limit > 0 && len(rows) > req.Limit {
		rows = rows[:req.Limit]
	}
	return rows, nil
}

func (f *FakeIndex) Delete(ctx context.Context, locator string) error {
	f.Deleted = append(f.Deleted, locator)
	return f.nextResult()
}

func (f *FakeIndex) DeleteBatch(ctx context.Context, locators []string) error {
	f.BatchCalls = append(f.BatchCalls, locators)
	return f.nextResult()
}

func (f *FakeIndex) nextResult() error {
	if len(f.DeleteResults) == 0 {
		return nil
	}
	err := f.DeleteResults[0]
	f.DeleteResults = f.DeleteResults[1:]
	return err
}

// UnavailableIndex returns a FakeIndex whose queries always soft-fail.
func UnavailableIndex() *FakeIndex {
	return &FakeIndex{QueryErr: fmt.Errorf("%w: connection refused", shared.ErrScanUnavailable)}
}

// FakePositions is a test double for the scanner's position reader.
type FakePositions struct {
	Positions map[int64]int64
	Err       error
}

func (f *FakePositions) Read(trackID int64) (*int64, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if millis, ok := f.Positions[trackID]; ok {
		return &millis, nil
	}
	return nil, nil
}

// FakePlaylists is a test double for the playlist store lookup.
type FakePlaylists struct {
	Playlists map[string]library.Playlist
	Err       error
}

func (f *FakePlaylists) GetByTitle(title string) (*library.Playlist, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if p, ok := f.Playlists[title]; ok {
		return &p, nil
	}
	return nil, fmt.Errorf("%w: %q", shared.ErrPlaylistNotFound, title)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
