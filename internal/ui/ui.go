package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/emberfm/ember/internal/deletion"
	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/query"
	"github.com/emberfm/ember/internal/scanner"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LibraryView ViewState = iota
	PlaylistListView
	ConfirmDeleteView
	ConsentView
)

// PlaylistLister lists the stored playlists for the playlist picker.
type PlaylistLister interface {
	List() ([]library.Playlist, error)
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	engine    *query.Engine
	scanner   *scanner.Scanner
	scanLimit int
	workflow  *deletion.Workflow
	playlists PlaylistLister
	tier      library.DeletionCapabilityTier

	width        int
	height       int
	trackList    list.Model
	playlistList list.Model
	searchInput  textinput.Model
	searching    bool
	pendingTrack library.Track
	consent      *deletion.ConsentHandle
	status       string
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, engine *query.Engine, sc *scanner.Scanner, scanLimit int, workflow *deletion.Workflow, playlists PlaylistLister, tier library.DeletionCapabilityTier) *Model {
	input := textinput.New()
	input.Placeholder = "search"
	input.CharLimit = 120

	trackList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	trackList.Title = "Library"
	trackList.SetFilteringEnabled(false)

	return &Model{
		ctx:         ctx,
		view:        LibraryView,
		engine:      engine,
		scanner:     sc,
		scanLimit:   scanLimit,
		workflow:    workflow,
		playlists:   playlists,
		tier:        tier,
		trackList:   trackList,
		searchInput: input,
		status:      "scanning...",
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init kicks off the initial scan so the first render never blocks on the
// media index.
func (m *Model) Init() tea.Cmd {
	return m.loadCatalog()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.trackList.SetSize(msg.Width-4, msg.Height-8)
		if m.playlistList.Width() != 0 {
			m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case Msg:
		return m.handleAppMsg(msg)

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKeys(msg)
		}
		switch m.view {
		case LibraryView:
			return m.handleLibraryKeys(msg)
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmKeys(msg)
		case ConsentView:
			return m.handleConsentKeys(msg)
		}
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case LibraryView:
		return m.renderLibrary()
	case PlaylistListView:
		return m.renderPlaylistList()
	case ConfirmDeleteView:
		return m.renderConfirmDelete()
	case ConsentView:
		return m.renderConsent()
	default:
		return ""
	}
}

func (m *Model) handleAppMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgCatalogLoaded:
		catalog := msg.data.(library.Catalog)
		m.engine.SetCatalog(catalog)
		m.refreshTrackList()
		m.status = fmt.Sprintf("%d tracks", len(catalog))
		return m, nil

	case MsgPlaylistsFetched:
		data := msg.data.(struct {
			playlists []library.Playlist
			err       error
		})
		if data.err != nil {
			m.status = styles.warn.Render(fmt.Sprintf("playlists unavailable: %v", data.err))
			return m, nil
		}
		items := make([]list.Item, len(data.playlists))
		for i, pl := range data.playlists {
			items[i] = playlistItem{playlist: pl}
		}
		m.playlistList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
		m.playlistList.Title = "Playlists"
		m.playlistList.SetFilteringEnabled(false)
		m.view = PlaylistListView
		return m, nil

	case MsgDeleteResolved:
		data := msg.data.(struct {
			track   library.Track
			outcome deletion.Outcome
		})
		switch data.outcome.Kind {
		case deletion.OutcomeDeleted:
			m.status = styles.ok.Render(fmt.Sprintf("deleted %q", data.track.Title))
			m.consent = nil
			m.view = LibraryView
			return m, m.loadCatalog()
		case deletion.OutcomePendingConsent:
			m.pendingTrack = data.track
			m.consent = data.outcome.Consent
			m.view = ConsentView
			return m, nil
		default:
			m.status = styles.warn.Render(fmt.Sprintf("delete failed: %v", data.outcome.Reason))
			m.consent = nil
			m.view = LibraryView
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.engine.SetSearchText("")
		m.refreshTrackList()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.engine.SetSearchText(m.searchInput.Value())
	m.refreshTrackList()
	return m, cmd
}

func (m *Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.searching = true
		return m, m.searchInput.Focus()
	case "f":
		scope := m.engine.CycleFilterScope()
		m.refreshTrackList()
		m.status = fmt.Sprintf("scope: %s", scope)
		return m, nil
	case "s":
		m.engine.SetSortOption(nextSort(m.engine.SortOption()))
		m.refreshTrackList()
		m.status = fmt.Sprintf("sort: %s", m.engine.SortOption())
		return m, nil
	case "p":
		return m, m.fetchPlaylists()
	case "d":
		selected := m.trackList.SelectedItem()
		if item, ok := selected.(trackItem); ok {
			m.pendingTrack = item.track
			m.view = ConfirmDeleteView
		}
		return m, nil
	case "esc":
		if m.engine.ActivePlaylist() != "" {
			m.engine.SetActivePlaylist("")
			m.refreshTrackList()
			m.status = "library"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = LibraryView
		return m, nil
	case "enter":
		selected := m.playlistList.SelectedItem()
		if item, ok := selected.(playlistItem); ok {
			m.engine.SetActivePlaylist(item.playlist.Title)
			m.refreshTrackList()
			m.status = fmt.Sprintf("playlist: %s", item.playlist.Title)
			m.view = LibraryView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.view = LibraryView
		return m, nil
	case "y":
		return m, m.requestDelete(m.pendingTrack)
	}
	return m, nil
}

func (m *Model) handleConsentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.consent == nil {
		m.view = LibraryView
		return m, nil
	}
	switch msg.String() {
	case "y":
		return m, m.resolveConsent(true)
	case "n":
		return m, m.resolveConsent(false)
	case "esc", "q":
		track := m.pendingTrack
		handleID := m.consent.ID
		return m, func() tea.Msg {
			return deleteResolvedMsg(track, m.workflow.Cancel(handleID))
		}
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case LibraryView:
		m.trackList, cmd = m.trackList.Update(msg)
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg(m.scanner.Scan(m.ctx, m.scanLimit))
	}
}

func (m *Model) fetchPlaylists() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.playlists.List()
		return playlistsFetchedMsg(playlists, err)
	}
}

func (m *Model) requestDelete(track library.Track) tea.Cmd {
	return func() tea.Msg {
		return deleteResolvedMsg(track, m.workflow.Request(m.ctx, track, m.tier))
	}
}

func (m *Model) resolveConsent(granted bool) tea.Cmd {
	track := m.pendingTrack
	handleID := m.consent.ID
	return func() tea.Msg {
		return deleteResolvedMsg(track, m.workflow.Resume(m.ctx, handleID, granted))
	}
}

func (m *Model) refreshTrackList() {
	tracks := m.engine.VisibleTracks()
	items := make([]list.Item, len(tracks))
	for i, track := range tracks {
		items[i] = trackItem{track: track}
	}
	m.trackList.SetItems(items)

	title := "Library"
	if pl := m.engine.ActivePlaylist(); pl != "" {
		title = fmt.Sprintf("Playlist: %s", pl)
	}
	m.trackList.Title = title
}

func (m *Model) renderLibrary() string {
	header := ""
	if m.searching {
		header = m.searchInput.View() + "\n"
	} else if text := m.engine.SearchText(); text != "" {
		header = styles.help.Render(fmt.Sprintf("search: %q (%s)", text, m.engine.FilterScope())) + "\n"
	}

	helpKeys := []key.Binding{m.keys.search, m.keys.scope, m.keys.sort, m.keys.playlists, m.keys.delete, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	status := styles.help.Render(m.status)
	return fmt.Sprintf("%s%s\n%s\n\n%s", header, m.trackList.View(), status, helpView)
}

func (m *Model) renderPlaylistList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.playlistList.View(), helpView)
}

func (m *Model) renderConfirmDelete() string {
	title := styles.title.Render(fmt.Sprintf("Delete '%s'?", m.pendingTrack.Title))
	info := fmt.Sprintf("\nArtist: %s\nLocation: %s\nMode: %s\n", m.pendingTrack.Artist, m.pendingTrack.Locator, m.tier)

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderConsent() string {
	title := styles.title.Render("Consent Required")
	reason := "the media index requires approval to delete this item"
	items := 1
	if m.consent != nil {
		if m.consent.Reason != "" {
			reason = m.consent.Reason
		}
		items = len(m.consent.Locators)
	}
	info := fmt.Sprintf("\n%s\n\nTrack: %s\nItems: %d\n", reason, m.pendingTrack.Title, items)

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.back}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

// nextSort cycles through the sort orders in display order.
func nextSort(s library.SortOption) library.SortOption {
	switch s {
	case library.TitleAscending:
		return library.TitleDescending
	case library.TitleDescending:
		return library.DateAddedDescending
	case library.DateAddedDescending:
		return library.DateAddedAscending
	default:
		return library.TitleAscending
	}
}
