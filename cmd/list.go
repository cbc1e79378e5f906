package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/marcus/extdeck/internal/models"
	"github.com/marcus/extdeck/internal/output"
	"github.com/marcus/extdeck/internal/store"
	"github.com/spf13/cobra"
)

// listOptions holds the list command's flags
type listOptions struct {
	Toggle []int
	JSON   bool
	Long   bool
	Pick   bool
}

// listResult is the JSON shape of the list command
type listResult struct {
	Filter     models.FilterMode  `json:"filter"`
	Counts     store.Counts       `json:"counts"`
	Extensions []models.Extension `json:"extensions"`
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the extensions visible under a filter",
	Long: `Print the extensions visible under the current filter, in catalog order.

--toggle flips extensions before printing. Nothing is saved, so this previews
what the deck would show after those toggles.`,
	Example: `  extdeck list
  extdeck list --filter active
  extdeck list -f inactive --toggle 3,6
  extdeck list --json
  extdeck list --pick`,
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := listOptions{}
		opts.Toggle, _ = cmd.Flags().GetIntSlice("toggle")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Long, _ = cmd.Flags().GetBool("long")
		opts.Pick, _ = cmd.Flags().GetBool("pick")

		cfg := currentSettings()
		logger, closeLog, err := newLogger(cfg, os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		return runList(s, opts, logger, pickFilter)
	},
}

// runList applies toggles, resolves the filter and prints the projection.
// pick is only called with --pick.
func runList(s *store.Store, opts listOptions, logger *slog.Logger, pick func(*store.Store) (models.FilterMode, error)) error {
	// JSON output stays parseable, so toggle notices go to the log only
	for _, id := range opts.Toggle {
		if !s.Toggle(id) {
			logger.Warn("toggle: no extension with that id", "id", id)
			if !opts.JSON {
				output.Warning("no extension with id %d", id)
			}
			continue
		}
		ext, _ := s.Get(id)
		logger.Debug("toggle", "id", id, "active", ext.Active)
		if !opts.JSON {
			state := "disabled"
			if ext.Active {
				state = "enabled"
			}
			output.Success("%s %s", ext.Title, state)
		}
	}
	if len(opts.Toggle) > 0 && !opts.JSON {
		output.Info("")
	}

	if opts.Pick {
		mode, err := pick(s)
		if err != nil {
			return err
		}
		s.SetFilter(mode)
	}

	visible := s.Visible()

	if opts.JSON {
		return output.JSON(listResult{
			Filter:     s.Filter(),
			Counts:     s.Counts(),
			Extensions: visible,
		})
	}

	output.Info("%s", output.FilterHeader(s.Filter(), len(visible), s.Len()))
	output.Info("")
	if len(visible) == 0 {
		output.Info("%s", output.EmptyState(s.Filter()))
		return nil
	}
	for _, ext := range visible {
		if opts.Long {
			output.Info("%s", output.FormatExtensionLong(ext))
		} else {
			output.Info("%s", output.FormatExtensionShort(ext))
		}
	}
	return nil
}

var errNoTerminal = errors.New("--pick needs an interactive terminal")

// pickFilter asks for a filter with a huh select
func pickFilter(s *store.Store) (models.FilterMode, error) {
	if !output.IsTerminal() {
		return s.Filter(), errNoTerminal
	}

	counts := s.Counts()
	choice := s.Filter()
	options := make([]huh.Option[models.FilterMode], 0, 3)
	for _, mode := range models.FilterModes() {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%d)", mode.Label(), counts.For(mode)), mode))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.FilterMode]().
				Title("Show which extensions?").
				Options(options...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return s.Filter(), fmt.Errorf("pick filter: %w", err)
	}
	return choice, nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntSlice("toggle", nil, "Toggle these extension ids before listing (comma-separated)")
	listCmd.Flags().Bool("json", false, "Output JSON")
	listCmd.Flags().BoolP("long", "l", false, "Show descriptions and logos")
	listCmd.Flags().Bool("pick", false, "Choose the filter interactively")
}
