// Package keymap maps key presses to deck commands per UI context, with
// user overrides loaded from .extdeck/keymap.json.
package keymap

import (
	"sort"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const sequenceTimeout = 500 * time.Millisecond

// Context represents a UI context for keybindings
type Context string

const (
	ContextGlobal Context = "global"
	ContextMain   Context = "main"
	ContextHelp   Context = "help" // When the help overlay is open
)

// Command represents a named command that can be triggered by key bindings
type Command string

const (
	CmdQuit       Command = "quit"
	CmdToggleHelp Command = "toggle-help"

	// Card navigation
	CmdCursorDown   Command = "cursor-down"
	CmdCursorUp     Command = "cursor-up"
	CmdCursorLeft   Command = "cursor-left"
	CmdCursorRight  Command = "cursor-right"
	CmdCursorTop    Command = "cursor-top"
	CmdCursorBottom Command = "cursor-bottom"

	// Store operations
	CmdToggle         Command = "toggle"
	CmdFilterAll      Command = "filter-all"
	CmdFilterActive   Command = "filter-active"
	CmdFilterInactive Command = "filter-inactive"
	CmdNextFilter     Command = "next-filter"
	CmdPrevFilter     Command = "prev-filter"

	// Help overlay
	CmdClose      Command = "close"
	CmdScrollDown Command = "scroll-down"
	CmdScrollUp   Command = "scroll-up"
)

// Binding maps a key or key sequence to a command in a specific context
type Binding struct {
	Key         string  // e.g., "tab", "ctrl+c", "g g"
	Command     Command // Command ID
	Context     Context
	Description string // Human-readable description for help text
}

// Registry manages key bindings and command dispatch
type Registry struct {
	bindings      map[Context][]Binding // context -> bindings
	userOverrides map[string]Command    // "context:key" -> command
	pendingKey    string
	pendingTime   time.Time
	mu            sync.RWMutex
}

// NewRegistry creates a new keymap registry
func NewRegistry() *Registry {
	return &Registry{
		bindings:      make(map[Context][]Binding),
		userOverrides: make(map[string]Command),
	}
}

// RegisterBinding adds a key binding
func (r *Registry) RegisterBinding(b Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[b.Context] = append(r.bindings[b.Context], b)
}

// RegisterBindings adds multiple key bindings
func (r *Registry) RegisterBindings(bindings []Binding) {
	for _, b := range bindings {
		r.RegisterBinding(b)
	}
}

// SetUserOverride sets a user-configured key override for a specific context
func (r *Registry) SetUserOverride(context Context, key string, cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userOverrides[string(context)+":"+key] = cmd
}

// Lookup finds the command for a key in the given context.
// Precedence: user overrides, then context bindings, then global bindings.
// A key that starts a multi-key sequence returns false and is held as pending.
func (r *Registry) Lookup(key tea.KeyMsg, activeContext Context) (Command, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keyStr := KeyToString(key)

	if r.pendingKey != "" {
		fresh := time.Since(r.pendingTime) < sequenceTimeout
		seq := r.pendingKey + " " + keyStr
		r.pendingKey = ""
		if fresh {
			if cmd, found := r.findCommand(seq, activeContext); found {
				return cmd, true
			}
		}
	}

	if r.isSequenceStart(keyStr, activeContext) {
		r.pendingKey = keyStr
		r.pendingTime = time.Now()
		return "", false
	}

	return r.findCommand(keyStr, activeContext)
}

func (r *Registry) findCommand(key string, activeContext Context) (Command, bool) {
	scoped := activeContext != "" && activeContext != ContextGlobal

	if scoped {
		if cmd, ok := r.userOverrides[string(activeContext)+":"+key]; ok {
			return cmd, true
		}
	}
	if cmd, ok := r.userOverrides[string(ContextGlobal)+":"+key]; ok {
		return cmd, true
	}

	if scoped {
		if cmd, found := r.findInContext(key, activeContext); found {
			return cmd, true
		}
	}
	return r.findInContext(key, ContextGlobal)
}

func (r *Registry) findInContext(key string, context Context) (Command, bool) {
	for _, b := range r.bindings[context] {
		if b.Key == key {
			return b.Command, true
		}
	}
	return "", false
}

func (r *Registry) isSequenceStart(key string, activeContext Context) bool {
	prefix := key + " "

	contexts := []Context{ContextGlobal}
	if activeContext != "" && activeContext != ContextGlobal {
		contexts = append(contexts, activeContext)
	}
	for _, ctx := range contexts {
		for _, b := range r.bindings[ctx] {
			if strings.HasPrefix(b.Key, prefix) {
				return true
			}
		}
	}

	for k := range r.userOverrides {
		parts := strings.SplitN(k, ":", 2)
		if len(parts) == 2 && strings.HasPrefix(parts[1], prefix) {
			return true
		}
	}
	return false
}

// ResetPending clears any pending key sequence
func (r *Registry) ResetPending() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pendingKey = ""
}

// PendingKey returns the current pending key (for UI display)
func (r *Registry) PendingKey() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.pendingKey != "" && time.Since(r.pendingTime) < sequenceTimeout {
		return r.pendingKey
	}
	return ""
}

// BindingsForContext returns the bindings of a context followed by the global ones
func (r *Registry) BindingsForContext(context Context) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Binding
	result = append(result, r.bindings[context]...)
	if context != ContextGlobal {
		result = append(result, r.bindings[ContextGlobal]...)
	}
	return result
}

// KeysFor returns the keys that run cmd in context: user overrides first,
// then default bindings that no override has taken over.
func (r *Registry) KeysFor(context Context, cmd Command) []string {
	r.mu.RLock()
	overrides := make(map[string]Command, len(r.userOverrides))
	for k, c := range r.userOverrides {
		overrides[k] = c
	}
	r.mu.RUnlock()

	scopes := []Context{context}
	if context != ContextGlobal {
		scopes = append(scopes, ContextGlobal)
	}

	var keys []string
	seen := make(map[string]bool)
	for _, ctx := range scopes {
		prefix := string(ctx) + ":"
		var mine []string
		for k, c := range overrides {
			if c == cmd && strings.HasPrefix(k, prefix) {
				mine = append(mine, strings.TrimPrefix(k, prefix))
			}
		}
		sort.Strings(mine)
		for _, k := range mine {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	for _, b := range r.BindingsForContext(context) {
		if b.Command != cmd || seen[b.Key] {
			continue
		}
		if shadowed(overrides, scopes, b.Key, cmd) {
			continue
		}
		seen[b.Key] = true
		keys = append(keys, b.Key)
	}
	return keys
}

func shadowed(overrides map[string]Command, scopes []Context, key string, cmd Command) bool {
	for _, ctx := range scopes {
		if c, ok := overrides[string(ctx)+":"+key]; ok && c != cmd {
			return true
		}
	}
	return false
}

// KeyToString converts a tea.KeyMsg to the string form used in bindings
func KeyToString(key tea.KeyMsg) string {
	switch key.Type {
	case tea.KeySpace:
		return "space"
	case tea.KeyRunes:
		if len(key.Runes) == 1 && key.Runes[0] == ' ' {
			return "space"
		}
		return string(key.Runes)
	default:
		return key.String()
	}
}
