package keymap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents user key binding configuration.
// Stored in .extdeck/keymap.json
type Config struct {
	// Bindings maps "context:key" to command ID
	// Example: {"main:x": "toggle", "global:ctrl+q": "quit"}
	Bindings map[string]string `json:"bindings"`
}

// ConfigPath returns the path to the keymap config file
func ConfigPath(baseDir string) string {
	return filepath.Join(baseDir, ".extdeck", "keymap.json")
}

// LoadConfig loads key binding overrides from a JSON file.
// Returns an empty config if the file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Bindings: make(map[string]string)}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse keymap %s: %w", path, err)
	}
	if cfg.Bindings == nil {
		cfg.Bindings = make(map[string]string)
	}
	return &cfg, nil
}

// ApplyConfig applies user overrides to the registry
func ApplyConfig(r *Registry, cfg *Config) {
	for binding, cmdStr := range cfg.Bindings {
		ctx, key := parseBinding(binding)
		if key == "" {
			continue
		}
		r.SetUserOverride(ctx, key, Command(cmdStr))
	}
}

// parseBinding splits "context:key"; a binding without a context is global.
// Only the first colon separates, so "main::" binds the ":" key.
func parseBinding(s string) (Context, string) {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			if i == 0 {
				break
			}
			return Context(s[:i]), s[i+1:]
		}
	}
	return ContextGlobal, s
}
