package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/emberfm/ember/internal/deletion"
	"github.com/emberfm/ember/internal/query"
	"github.com/emberfm/ember/internal/repositories"
	"github.com/emberfm/ember/internal/scanner"
	"github.com/emberfm/ember/internal/shared"
	"github.com/emberfm/ember/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for library browsing.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.index == nil {
		return fmt.Errorf("%w: media index not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/ember-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	playlists := repositories.NewPlaylistRepository(db)
	positions := repositories.NewPositionRepository(db)

	tier, err := r.tier()
	if err != nil {
		return err
	}

	engine := query.NewEngine(playlists, r.defaultSort())
	sc := scanner.NewScanner(r.index, positions, r.config.Library.UnsupportedFormats, fileLogger)
	workflow := deletion.NewWorkflow(r.index, fileLogger)

	model := ui.NewModel(ctx, engine, sc, r.config.Library.ScanLimit, workflow, playlists, tier)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
