package deck

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/extdeck/internal/models"
	"github.com/marcus/extdeck/pkg/deck/keymap"
)

const (
	minCardWidth = 34
	gridGap      = 1
	descLines    = 2
	cardHeight   = 9 // border + title, logo, blank, description, blank, footer
	headerLines  = 4
	footerLines  = 2
)

// keyHint is one footer hint; the first key of each command is joined with "/"
type keyHint struct {
	cmds  []keymap.Command
	label string
}

var filterCmds = []keymap.Command{keymap.CmdFilterAll, keymap.CmdFilterActive, keymap.CmdFilterInactive}

var footerHints = []keyHint{
	{[]keymap.Command{keymap.CmdToggle}, "toggle"},
	{filterCmds, "filter"},
	{[]keymap.Command{keymap.CmdNextFilter}, "next filter"},
	{[]keymap.Command{keymap.CmdToggleHelp}, "help"},
	{[]keymap.Command{keymap.CmdQuit}, "quit"},
}

var compactHints = []keyHint{
	{[]keymap.Command{keymap.CmdToggle}, "toggle"},
	{filterCmds, "filter"},
	{[]keymap.Command{keymap.CmdQuit}, "quit"},
}

// keyHints renders hints from the registry so user overrides show up.
// Commands left without a key are dropped.
func (m Model) keyHints(hints []keyHint, sep string) string {
	var parts []string
	for _, h := range hints {
		var keys []string
		for _, c := range h.cmds {
			if k := m.Keymap.KeysFor(keymap.ContextMain, c); len(k) > 0 {
				keys = append(keys, k[0])
			}
		}
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, strings.Join(keys, "/")+":"+h.label)
	}
	return strings.Join(parts, sep)
}

// columns mirrors the responsive 1/2/3 column grid
func (m Model) columns() int {
	switch {
	case m.Width >= 3*minCardWidth+2*gridGap:
		return 3
	case m.Width >= 2*minCardWidth+gridGap:
		return 2
	default:
		return 1
	}
}

// visibleRows returns how many card rows fit on screen
func (m Model) visibleRows() int {
	rows := (m.Height - headerLines - footerLines) / cardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// cardWidth returns the outer width of one card
func (m Model) cardWidth() int {
	cols := m.columns()
	return (m.Width - (cols-1)*gridGap) / cols
}

// renderView renders the complete TUI view
func (m Model) renderView() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	if m.compact() {
		return m.renderCompact()
	}

	if m.HelpOpen {
		return m.renderHelp()
	}

	visible := m.visible()

	var body string
	if len(visible) == 0 {
		body = m.renderEmptyState()
	} else {
		body = m.renderGrid(visible)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderFilterBar(),
		"",
		body,
		"",
		m.renderFooter(len(visible)),
	)
}

// renderHeader renders the title bar
func (m Model) renderHeader() string {
	title := "◆ Extensions"
	if m.Version != "" {
		pad := m.Width - 2 - lipgloss.Width(title) - lipgloss.Width(m.Version)
		if pad > 0 {
			title += strings.Repeat(" ", pad) + m.Version
		}
	}
	return headerStyle.Width(m.Width).Render(title)
}

// renderFilterBar renders the "Extensions List" label and the three-way selector
func (m Model) renderFilterBar() string {
	counts := m.Store.Counts()
	current := m.Store.Filter()

	tabs := make([]string, 0, 3)
	for _, mode := range models.FilterModes() {
		label := fmt.Sprintf("%s %d", mode.Label(), counts.For(mode))
		style := tabStyle
		if mode == current {
			style = tabSelectedStyle
			if mode == models.FilterAll {
				style = tabSelectedAllStyle
			}
		}
		tabs = append(tabs, style.Render(label))
	}
	selector := strings.Join(tabs, " ")

	label := titleStyle.Render("Extensions List")
	pad := m.Width - lipgloss.Width(label) - lipgloss.Width(selector)
	if pad < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, label, selector)
	}
	return label + strings.Repeat(" ", pad) + selector
}

// renderGrid lays the visible cards out in rows
func (m Model) renderGrid(visible []models.Extension) string {
	cols := m.columns()
	width := m.cardWidth()
	first := m.ScrollRow * cols
	last := first + m.visibleRows()*cols
	if last > len(visible) {
		last = len(visible)
	}

	var rows []string
	for start := first; start < last; start += cols {
		end := start + cols
		if end > last {
			end = last
		}
		var cards []string
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", gridGap))
			}
			cards = append(cards, m.renderCard(visible[i], width, i == m.Cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders a single extension card. The Remove button is drawn but
// has no binding.
func (m Model) renderCard(ext models.Extension, width int, focused bool) string {
	inner := width - 4
	if inner < 8 {
		inner = 8
	}

	lines := []string{
		titleStyle.Render(ansi.Truncate(ext.Title, inner, "…")),
		subtleStyle.Render(ansi.Truncate(ext.Logo, inner, "…")),
		"",
	}
	lines = append(lines, wrapDescription(ext.Description, inner)...)
	lines = append(lines, "", cardFooter(ext.Active, inner))

	style := cardStyle
	if focused {
		style = focusedCardStyle
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// wrapDescription wraps text to width and returns exactly descLines lines,
// marking truncation with an ellipsis
func wrapDescription(text string, width int) []string {
	wrapped := strings.Split(ansi.Wordwrap(text, width, ""), "\n")
	out := make([]string, descLines)
	for i := 0; i < descLines && i < len(wrapped); i++ {
		out[i] = wrapped[i]
	}
	if len(wrapped) > descLines {
		last := ansi.Truncate(out[descLines-1], width-1, "")
		out[descLines-1] = strings.TrimRight(last, " ") + "…"
	}
	for i := range out {
		out[i] = descStyle.Render(out[i])
	}
	return out
}

// cardFooter puts the Remove button on the left and the switch on the right
func cardFooter(active bool, width int) string {
	remove := removeButtonStyle.Render("Remove")
	sw := renderSwitch(active)
	gap := width - lipgloss.Width(remove) - lipgloss.Width(sw)
	if gap < 1 {
		gap = 1
	}
	return remove + strings.Repeat(" ", gap) + sw
}

// renderEmptyState replaces the grid when the projection is empty
func (m Model) renderEmptyState() string {
	msg := EmptyStateMessage
	if keys := m.Keymap.KeysFor(keymap.ContextMain, keymap.CmdFilterAll); len(keys) > 0 {
		msg += "\n" + subtleStyle.Render("Press "+keys[0]+" to show all extensions.")
	}
	box := emptyStateStyle.Render(msg)
	return lipgloss.PlaceHorizontal(m.Width, lipgloss.Center, box)
}

// renderFooter renders key hints, the position indicator and the status line
func (m Model) renderFooter(total int) string {
	keys := helpStyle.Render(m.keyHints(footerHints, "  "))

	var right []string
	if pending := m.Keymap.PendingKey(); pending != "" {
		right = append(right, subtleStyle.Render(pending+"…"))
	}
	if m.StatusLine != "" {
		right = append(right, statusStyle.Render(m.StatusLine))
	}
	if total > 0 {
		right = append(right, subtleStyle.Render(fmt.Sprintf("%d/%d", m.Cursor+1, total)))
	}
	status := strings.Join(right, "  ")

	pad := m.Width - lipgloss.Width(keys) - lipgloss.Width(status)
	if pad < 1 {
		pad = 1
	}
	return keys + strings.Repeat(" ", pad) + status
}

// renderCompact renders a one-line-per-extension list for small terminals
func (m Model) renderCompact() string {
	var s strings.Builder

	counts := m.Store.Counts()
	filter := m.Store.Filter()
	s.WriteString(fmt.Sprintf("extensions: %s (%d)\n\n", filter.Label(), counts.For(filter)))

	visible := m.visible()
	if len(visible) == 0 {
		s.WriteString(EmptyStateMessage + "\n")
	}
	for i, ext := range visible {
		marker := "  "
		if i == m.Cursor {
			marker = "> "
		}
		state := "off"
		if ext.Active {
			state = "on "
		}
		line := fmt.Sprintf("%s[%s] %s", marker, state, ext.Title)
		if m.Width > 0 {
			line = ansi.Truncate(line, m.Width, "…")
		}
		s.WriteString(line + "\n")
	}

	s.WriteString("\n" + m.keyHints(compactHints, " "))
	return s.String()
}

// renderHelp renders the help overlay centered on screen
func (m Model) renderHelp() string {
	w, _ := m.helpSize()
	overlay := helpOverlayStyle.Width(w - 2).Render(m.help.View())
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, overlay)
}
