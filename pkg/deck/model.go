package deck

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/extdeck/internal/models"
	"github.com/marcus/extdeck/internal/store"
	"github.com/marcus/extdeck/pkg/deck/keymap"
)

// MinWidth is the minimum terminal width for the card grid
const MinWidth = 40

// MinHeight is the minimum terminal height for the card grid
const MinHeight = 16

// EmptyStateMessage is shown in place of the grid when the filter matches nothing
const EmptyStateMessage = "No extensions match this filter."

// ToggleMsg asks the model to toggle the extension with the given id
type ToggleMsg struct {
	ID int
}

// FilterMsg asks the model to switch the filter
type FilterMsg struct {
	Mode models.FilterMode
}

// Model is the Bubble Tea model for the extension deck.
// All extension state lives in Store; the model only keeps view state.
type Model struct {
	Store   *store.Store
	Keymap  *keymap.Registry
	Logger  *slog.Logger
	Version string

	// Window dimensions
	Width  int
	Height int

	// View state
	Cursor     int // index into Store.Visible()
	ScrollRow  int // first grid row on screen
	HelpOpen   bool
	StatusLine string

	help viewport.Model
}

// NewModel creates a deck model over an existing store
func NewModel(s *store.Store, km *keymap.Registry, logger *slog.Logger, ver string) Model {
	if km == nil {
		km = keymap.NewRegistry()
		keymap.RegisterDefaults(km)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		Store:   s,
		Keymap:  km,
		Logger:  logger,
		Version: ver,
		help:    viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resizeHelp()
		m.ensureCursorVisible()
		return m, nil

	case ToggleMsg:
		m.toggle(msg.ID)
		return m, nil

	case FilterMsg:
		m.setFilter(msg.Mode)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	return m.renderView()
}

// compact reports whether the terminal is too small for the card grid
func (m Model) compact() bool {
	return m.Width < MinWidth || m.Height < MinHeight
}

// currentContext returns the keymap context for the current UI state.
// The compact list has no help overlay, so it always uses the main context.
func (m Model) currentContext() keymap.Context {
	if m.HelpOpen && !m.compact() {
		return keymap.ContextHelp
	}
	return keymap.ContextMain
}

// handleKey resolves a key through the registry and runs the bound command
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.Keymap.Lookup(msg, m.currentContext())
	if !ok {
		return m, nil
	}
	return m.executeCommand(cmd)
}

// visible returns the current projection
func (m Model) visible() []models.Extension {
	return m.Store.Visible()
}

// Selected returns the extension under the cursor
func (m Model) Selected() (models.Extension, bool) {
	vis := m.visible()
	if m.Cursor < 0 || m.Cursor >= len(vis) {
		return models.Extension{}, false
	}
	return vis[m.Cursor], true
}

// toggle flips an extension through the store and keeps the cursor valid.
// Under the Active or Inactive filter the toggled card leaves the view.
func (m *Model) toggle(id int) {
	if !m.Store.Toggle(id) {
		m.Logger.Debug("toggle: unknown extension", "id", id)
		return
	}
	ext, _ := m.Store.Get(id)
	m.Logger.Debug("toggle", "id", id, "title", ext.Title, "active", ext.Active)

	state := "disabled"
	if ext.Active {
		state = "enabled"
	}
	m.StatusLine = ext.Title + " " + state

	m.clampCursor()
	m.ensureCursorVisible()
}

// setFilter switches the store filter and resets the cursor to the first card
func (m *Model) setFilter(mode models.FilterMode) {
	if !mode.IsValid() {
		return
	}
	prev := m.Store.Filter()
	m.Store.SetFilter(mode)
	m.Keymap.ResetPending()
	m.Logger.Debug("set filter", "from", prev.String(), "to", mode.String())

	if prev != mode {
		m.Cursor = 0
		m.ScrollRow = 0
	}
	m.StatusLine = ""
	m.clampCursor()
}

// clampCursor keeps the cursor inside the current projection
func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// moveCursor moves by delta cards, stopping at the ends
func (m *Model) moveCursor(delta int) {
	m.Cursor += delta
	m.clampCursor()
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls the grid so the cursor's row is on screen
func (m *Model) ensureCursorVisible() {
	cols := m.columns()
	rows := m.visibleRows()
	row := m.Cursor / cols

	if row < m.ScrollRow {
		m.ScrollRow = row
	}
	if row >= m.ScrollRow+rows {
		m.ScrollRow = row - rows + 1
	}
	if m.ScrollRow < 0 {
		m.ScrollRow = 0
	}
}
