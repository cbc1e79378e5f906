package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/marcus/extdeck/internal/catalog"
	"github.com/marcus/extdeck/internal/config"
	"github.com/marcus/extdeck/internal/models"
	"github.com/marcus/extdeck/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// settings is the config file merged with command-line flags
var settings *config.Config

// loadSettings reads .extdeck/config.json and applies persistent flags on top
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, cmd.Flags()); err != nil {
		return err
	}
	settings = cfg
	return nil
}

// applyFlags overrides cfg with flags the user actually set
func applyFlags(cfg *config.Config, flags *pflag.FlagSet) error {
	if flags.Changed("filter") {
		v, _ := flags.GetString("filter")
		mode, err := models.ParseFilterMode(v)
		if err != nil {
			return fmt.Errorf("--filter: %w", err)
		}
		cfg.DefaultFilter = mode
	}
	if flags.Changed("catalog") {
		cfg.Catalog, _ = flags.GetString("catalog")
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		cfg.LogLevel = strings.ToLower(v)
	}
	if flags.Changed("log-format") {
		v, _ := flags.GetString("log-format")
		cfg.LogFormat = strings.ToLower(v)
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	return nil
}

// currentSettings returns the loaded settings, or defaults when the
// persistent pre-run did not run
func currentSettings() *config.Config {
	if settings == nil {
		return &config.Config{}
	}
	return settings
}

// openStore loads the catalog and applies the configured initial filter
func openStore(cfg *config.Config) (*store.Store, error) {
	seed, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	s, err := store.New(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	s.SetFilter(cfg.DefaultFilter)
	return s, nil
}

// parseLevel maps a level name to slog; unknown names mean info
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger builds the process logger. Logs go to the configured file, or to
// fallback when none is set. The returned func closes the file.
func newLogger(cfg *config.Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
