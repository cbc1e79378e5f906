package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/extdeck/pkg/deck"
	"github.com/marcus/extdeck/pkg/deck/keymap"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui", "deck"},
	Short:   "Open the interactive extension deck",
	Long: `Open the interactive deck of extension cards.

Key bindings:
  ←/→/↑/↓ h/l/k/j  Move between cards
  Space/Enter/t    Toggle the selected extension
  1/2/3            Show all / active / inactive
  Tab/Shift+Tab    Cycle the filter
  g g / G          First / last card
  ?                Toggle help
  q                Quit

Bindings can be overridden in .extdeck/keymap.json, e.g.
  {"bindings": {"main:x": "toggle"}}`,
	GroupID: "core",
	RunE:    runUI,
}

// runUI builds the store and runs the deck until the user quits.
// Toggles live only as long as the program runs.
func runUI(cmd *cobra.Command, args []string) error {
	cfg := currentSettings()

	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := openStore(cfg)
	if err != nil {
		return err
	}

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	kmCfg, err := keymap.LoadConfig(keymap.ConfigPath(getBaseDir()))
	if err != nil {
		logger.Warn("ignoring keymap config", "err", err)
	} else {
		keymap.ApplyConfig(km, kmCfg)
	}

	logger.Info("deck started", "extensions", s.Len(), "filter", s.Filter().String())

	model := deck.NewModel(s, km, logger, version)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running deck: %w", err)
	}

	c := s.Counts()
	logger.Info("deck closed", "active", c.Active, "inactive", c.Inactive)
	return nil
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
