package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/mediaindex"
	"github.com/emberfm/ember/internal/repositories"
	"github.com/emberfm/ember/internal/scanner"
	"github.com/emberfm/ember/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	index  mediaindex.Service
	logger *log.Logger
	output io.Writer
	input  io.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Index  mediaindex.Service
	Logger *log.Logger
	Output io.Writer
	Input  io.Reader
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	return &Runner{
		config: opts.Config,
		index:  opts.Index,
		logger: opts.Logger,
		output: opts.Output,
		input:  opts.Input,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, scanCommand, tracksCommand, playlistsCommand, deleteCommand, positionCommand, exportCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// tier resolves the deletion capability tier: the configured override when
// set, otherwise whatever the media index backend reports.
func (r *Runner) tier() (library.DeletionCapabilityTier, error) {
	configured := r.config.Deletion.Tier
	if configured == "" || configured == "auto" {
		return r.index.Capabilities().Deletion, nil
	}
	return library.ParseDeletionTier(configured)
}

// openDatabase opens the configured database. Callers own the returned
// handle and must close it.
func (r *Runner) openDatabase() (*sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
	return db, nil
}

// scanCatalog runs a full scan, merging stored playback positions when the
// database is reachable.
func (r *Runner) scanCatalog(ctx context.Context, db *sql.DB, limit int) library.Catalog {
	var positions scanner.PositionReader
	if db != nil {
		positions = repositories.NewPositionRepository(db)
	}
	if limit == 0 {
		limit = r.config.Library.ScanLimit
	}

	sc := scanner.NewScanner(r.index, positions, r.config.Library.UnsupportedFormats, r.logger)
	return sc.Scan(ctx, limit)
}

// defaultSort parses the configured default sort, falling back to title order.
func (r *Runner) defaultSort() library.SortOption {
	option, err := library.ParseSortOption(r.config.Library.DefaultSort)
	if err != nil {
		return library.TitleAscending
	}
	return option
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeTrackLine(i int, track library.Track) {
	duration := ""
	if track.DurationMillis > 0 {
		duration = fmt.Sprintf(" [%s]", shared.FormatDuration(track.DurationMillis))
	}
	artist := track.Artist
	if artist == "" {
		artist = "Unknown Artist"
	}
	r.writePlain("%d. %s - %s%s (id %d)\n", i+1, artist, track.Title, duration, track.ID)
}
