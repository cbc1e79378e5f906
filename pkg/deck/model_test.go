package deck

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/marcus/extdeck/internal/catalog"
	"github.com/marcus/extdeck/internal/models"
	"github.com/marcus/extdeck/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestModel builds a sized model over the default seed
func newTestModel(t *testing.T, width, height int) Model {
	t.Helper()
	return newTestModelWithSeed(t, catalog.Seed(), width, height)
}

func newTestModelWithSeed(t *testing.T, seed []models.Extension, width, height int) Model {
	t.Helper()
	s, err := store.New(seed)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	m := NewModel(s, nil, discardLogger(), "")
	return send(m, tea.WindowSizeMsg{Width: width, Height: height})
}

func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m = send(m, msg)
	}
	return m
}

func visibleIDs(m Model) []int {
	return store.IDs(m.Store.Visible())
}

func TestToggleSelectedCard(t *testing.T) {
	m := newTestModel(t, 120, 40)

	m = press(m, "space")

	ext, _ := m.Store.Get(1)
	if ext.Active {
		t.Error("space should have disabled DevLens")
	}
	if m.StatusLine != "DevLens disabled" {
		t.Errorf("StatusLine = %q", m.StatusLine)
	}

	m = press(m, "enter")
	ext, _ = m.Store.Get(1)
	if !ext.Active {
		t.Error("enter should have re-enabled DevLens")
	}
}

func TestFilterKeys(t *testing.T) {
	m := newTestModel(t, 120, 40)

	tests := []struct {
		key  string
		want models.FilterMode
	}{
		{"2", models.FilterActive},
		{"3", models.FilterInactive},
		{"1", models.FilterAll},
		{"tab", models.FilterActive},
		{"tab", models.FilterInactive},
		{"tab", models.FilterAll},
		{"shift+tab", models.FilterInactive},
	}
	for _, tt := range tests {
		m = press(m, tt.key)
		if m.Store.Filter() != tt.want {
			t.Errorf("after %q filter = %v, want %v", tt.key, m.Store.Filter(), tt.want)
		}
	}
}

func TestSeedScenarioThroughKeys(t *testing.T) {
	m := newTestModel(t, 120, 40)

	m = press(m, "2")
	if diff := cmp.Diff([]int{1, 2, 4, 5, 7, 9, 10, 12}, visibleIDs(m)); diff != "" {
		t.Errorf("active (-want +got):\n%s", diff)
	}

	// SpeedBoost (id 3) is the first inactive card
	m = press(m, "3")
	if sel, _ := m.Selected(); sel.ID != 3 {
		t.Fatalf("selected id = %d, want 3", sel.ID)
	}
	m = press(m, "space")
	if diff := cmp.Diff([]int{6, 8, 11}, visibleIDs(m)); diff != "" {
		t.Errorf("inactive after toggle (-want +got):\n%s", diff)
	}

	m = press(m, "2")
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 7, 9, 10, 12}, visibleIDs(m)); diff != "" {
		t.Errorf("active after toggle (-want +got):\n%s", diff)
	}
}

func TestCursorClampedWhenCardLeavesView(t *testing.T) {
	m := newTestModel(t, 120, 40)
	m = press(m, "3", "G")

	if sel, _ := m.Selected(); sel.ID != 11 {
		t.Fatalf("selected id = %d, want 11", sel.ID)
	}

	m = press(m, "space")
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2 after last card left the view", m.Cursor)
	}
	if sel, _ := m.Selected(); sel.ID != 8 {
		t.Errorf("selected id = %d, want 8", sel.ID)
	}
}

func TestToggleLastCardLeavesEmptyView(t *testing.T) {
	seed := []models.Extension{{ID: 1, Title: "Only", Active: false}}
	m := newTestModelWithSeed(t, seed, 120, 40)

	m = press(m, "3", "space")

	if len(visibleIDs(m)) != 0 {
		t.Fatalf("visible = %v, want empty", visibleIDs(m))
	}
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
	if _, ok := m.Selected(); ok {
		t.Error("Selected() should report nothing on an empty view")
	}

	// Toggle with nothing selected is a no-op
	m = press(m, "space")
	if ext, _ := m.Store.Get(1); !ext.Active {
		t.Error("toggle on empty view changed the store")
	}
}

func TestFilterChangeResetsCursor(t *testing.T) {
	m := newTestModel(t, 120, 40)
	m = press(m, "l", "l")
	if m.Cursor != 2 {
		t.Fatalf("Cursor = %d, want 2", m.Cursor)
	}

	m = press(m, "2")
	if m.Cursor != 0 || m.ScrollRow != 0 {
		t.Errorf("Cursor/ScrollRow = %d/%d after filter change, want 0/0", m.Cursor, m.ScrollRow)
	}

	// Re-selecting the same filter keeps the position
	m = press(m, "l", "2")
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", m.Cursor)
	}
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t, 120, 40) // 3 columns

	tests := []struct {
		key  string
		want int
	}{
		{"j", 3},
		{"down", 6},
		{"l", 7},
		{"k", 4},
		{"h", 3},
		{"G", 11},
		{"j", 11},
		{"l", 11},
		{"g", 11}, // pending sequence
		{"g", 0},
		{"h", 0},
		{"k", 0},
	}
	for _, tt := range tests {
		m = press(m, tt.key)
		if m.Cursor != tt.want {
			t.Errorf("after %q Cursor = %d, want %d", tt.key, m.Cursor, tt.want)
		}
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	m := newTestModel(t, 120, 40) // 3 rows of 3 cards on screen

	if m.visibleRows() != 3 {
		t.Fatalf("visibleRows = %d, want 3", m.visibleRows())
	}

	m = press(m, "G")
	if m.ScrollRow != 1 {
		t.Errorf("ScrollRow = %d, want 1", m.ScrollRow)
	}

	m = press(m, "g", "g")
	if m.ScrollRow != 0 {
		t.Errorf("ScrollRow = %d, want 0", m.ScrollRow)
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{40, 1},
		{68, 1},
		{69, 2},
		{103, 2},
		{104, 3},
		{200, 3},
	}
	for _, tt := range tests {
		m := Model{Width: tt.width}
		if got := m.columns(); got != tt.want {
			t.Errorf("columns(width=%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestMessages(t *testing.T) {
	m := newTestModel(t, 120, 40)

	m = send(m, ToggleMsg{ID: 6})
	if ext, _ := m.Store.Get(6); !ext.Active {
		t.Error("ToggleMsg{6} did not enable ViewportBuddy")
	}

	before := m.Store.Extensions()
	m = send(m, ToggleMsg{ID: 404})
	if diff := cmp.Diff(before, m.Store.Extensions()); diff != "" {
		t.Errorf("ToggleMsg for unknown id changed the store:\n%s", diff)
	}

	m = send(m, FilterMsg{Mode: models.FilterInactive})
	if m.Store.Filter() != models.FilterInactive {
		t.Errorf("filter = %v, want inactive", m.Store.Filter())
	}

	m = send(m, FilterMsg{Mode: models.FilterMode(9)})
	if m.Store.Filter() != models.FilterInactive {
		t.Errorf("invalid FilterMsg changed filter to %v", m.Store.Filter())
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, 120, 40)

	m = press(m, "?")
	if !m.HelpOpen {
		t.Fatal("? should open help")
	}
	if m.currentContext() != "help" {
		t.Errorf("context = %q, want help", m.currentContext())
	}

	// Store keys are inert while help is open
	m = press(m, "space", "2")
	if ext, _ := m.Store.Get(1); !ext.Active {
		t.Error("space toggled an extension while help was open")
	}
	if m.Store.Filter() != models.FilterAll {
		t.Error("2 changed the filter while help was open")
	}

	m = press(m, "esc")
	if m.HelpOpen {
		t.Error("esc should close help")
	}

	m = press(m, "?", "?")
	if m.HelpOpen {
		t.Error("second ? should close help")
	}
}

func TestHelpIgnoredInCompactView(t *testing.T) {
	m := newTestModel(t, 30, 10)

	m = press(m, "?")
	if m.HelpOpen {
		t.Error("? should not open help in the compact view")
	}
	if m.currentContext() != "main" {
		t.Errorf("context = %q, want main", m.currentContext())
	}

	m = press(m, "3")
	if m.Store.Filter() != models.FilterInactive {
		t.Errorf("filter = %v, want inactive", m.Store.Filter())
	}
	m = press(m, "space")
	if ext, _ := m.Store.Get(3); !ext.Active {
		t.Error("space should have enabled SpeedBoost")
	}
}

func TestHelpOpenThenShrunk(t *testing.T) {
	m := newTestModel(t, 120, 40)
	m = press(m, "?")
	m = send(m, tea.WindowSizeMsg{Width: 30, Height: 10})

	// the compact list has no overlay, so its keys must stay live
	m = press(m, "2")
	if m.Store.Filter() != models.FilterActive {
		t.Errorf("filter = %v, want active", m.Store.Filter())
	}
}

func TestFilterChangeClearsPendingSequence(t *testing.T) {
	m := newTestModel(t, 120, 40)

	m = press(m, "g")
	if m.Keymap.PendingKey() != "g" {
		t.Fatalf("pending = %q, want g", m.Keymap.PendingKey())
	}
	m = send(m, FilterMsg{Mode: models.FilterInactive})
	if p := m.Keymap.PendingKey(); p != "" {
		t.Errorf("pending after filter change = %q, want empty", p)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, 120, 40)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

func TestStoreSharedWithCaller(t *testing.T) {
	s, err := store.New(catalog.Seed())
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(s, nil, discardLogger(), "")
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = press(m, "space")

	if ext, _ := s.Get(1); ext.Active {
		t.Error("model toggled a copy instead of the caller's store")
	}
}
