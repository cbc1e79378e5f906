package deck

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/extdeck/internal/models"
	"github.com/marcus/extdeck/internal/output"
	"github.com/marcus/extdeck/pkg/deck/keymap"
)

// executeCommand runs a keymap command against the model
func (m Model) executeCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdQuit:
		return m, tea.Quit

	case keymap.CmdToggleHelp:
		if m.compact() {
			return m, nil
		}
		m.HelpOpen = !m.HelpOpen
		if m.HelpOpen {
			m.openHelp()
		}
		return m, nil

	case keymap.CmdClose:
		m.HelpOpen = false
		m.Keymap.ResetPending()
		return m, nil

	case keymap.CmdScrollDown:
		m.help, _ = m.help.Update(tea.KeyMsg{Type: tea.KeyDown})
		return m, nil

	case keymap.CmdScrollUp:
		m.help, _ = m.help.Update(tea.KeyMsg{Type: tea.KeyUp})
		return m, nil

	// Cursor
	case keymap.CmdCursorLeft:
		m.moveCursor(-1)
		return m, nil

	case keymap.CmdCursorRight:
		m.moveCursor(1)
		return m, nil

	case keymap.CmdCursorUp:
		m.moveCursor(-m.columns())
		return m, nil

	case keymap.CmdCursorDown:
		m.moveCursor(m.columns())
		return m, nil

	case keymap.CmdCursorTop:
		m.Cursor = 0
		m.ensureCursorVisible()
		return m, nil

	case keymap.CmdCursorBottom:
		m.Cursor = len(m.visible()) - 1
		m.clampCursor()
		m.ensureCursorVisible()
		return m, nil

	// Store operations
	case keymap.CmdToggle:
		if ext, ok := m.Selected(); ok {
			m.toggle(ext.ID)
		}
		return m, nil

	case keymap.CmdFilterAll:
		m.setFilter(models.FilterAll)
		return m, nil

	case keymap.CmdFilterActive:
		m.setFilter(models.FilterActive)
		return m, nil

	case keymap.CmdFilterInactive:
		m.setFilter(models.FilterInactive)
		return m, nil

	case keymap.CmdNextFilter:
		m.setFilter(m.Store.Filter().Next())
		return m, nil

	case keymap.CmdPrevFilter:
		m.setFilter(m.Store.Filter().Prev())
		return m, nil
	}

	return m, nil
}

// helpSize returns the help overlay's outer dimensions
func (m Model) helpSize() (width, height int) {
	width = m.Width * 80 / 100
	if width > 90 {
		width = 90
	}
	if width < 30 {
		width = 30
	}
	height = m.Height * 80 / 100
	if height > 40 {
		height = 40
	}
	if height < 10 {
		height = 10
	}
	return width, height
}

// resizeHelp fits the viewport inside the overlay border
func (m *Model) resizeHelp() {
	w, h := m.helpSize()
	m.help.Width = w - 4
	m.help.Height = h - 2
}

// openHelp renders the key bindings into the help viewport
func (m *Model) openHelp() {
	m.resizeHelp()
	md := m.Keymap.GenerateHelpMarkdown()
	rendered, err := output.RenderMarkdownWithWidth(md, m.help.Width)
	if err != nil {
		m.Logger.Warn("render help", "err", err)
		rendered = md
	}
	m.help.SetContent(rendered)
	m.help.GotoTop()
}
