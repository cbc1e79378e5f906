package keymap

// DefaultBindings returns the default key bindings for the deck TUI
func DefaultBindings() []Binding {
	return []Binding{
		// Global
		{Key: "q", Command: CmdQuit, Context: ContextGlobal, Description: "Quit"},
		{Key: "ctrl+c", Command: CmdQuit, Context: ContextGlobal, Description: "Quit"},
		{Key: "?", Command: CmdToggleHelp, Context: ContextGlobal, Description: "Toggle help"},

		// Card grid
		{Key: "j", Command: CmdCursorDown, Context: ContextMain, Description: "Card below"},
		{Key: "down", Command: CmdCursorDown, Context: ContextMain, Description: "Card below"},
		{Key: "k", Command: CmdCursorUp, Context: ContextMain, Description: "Card above"},
		{Key: "up", Command: CmdCursorUp, Context: ContextMain, Description: "Card above"},
		{Key: "h", Command: CmdCursorLeft, Context: ContextMain, Description: "Previous card"},
		{Key: "left", Command: CmdCursorLeft, Context: ContextMain, Description: "Previous card"},
		{Key: "l", Command: CmdCursorRight, Context: ContextMain, Description: "Next card"},
		{Key: "right", Command: CmdCursorRight, Context: ContextMain, Description: "Next card"},
		{Key: "g g", Command: CmdCursorTop, Context: ContextMain, Description: "First card"},
		{Key: "home", Command: CmdCursorTop, Context: ContextMain, Description: "First card"},
		{Key: "G", Command: CmdCursorBottom, Context: ContextMain, Description: "Last card"},
		{Key: "end", Command: CmdCursorBottom, Context: ContextMain, Description: "Last card"},

		{Key: "space", Command: CmdToggle, Context: ContextMain, Description: "Toggle extension"},
		{Key: "enter", Command: CmdToggle, Context: ContextMain, Description: "Toggle extension"},
		{Key: "t", Command: CmdToggle, Context: ContextMain, Description: "Toggle extension"},

		{Key: "1", Command: CmdFilterAll, Context: ContextMain, Description: "Show all"},
		{Key: "2", Command: CmdFilterActive, Context: ContextMain, Description: "Show active"},
		{Key: "3", Command: CmdFilterInactive, Context: ContextMain, Description: "Show inactive"},
		{Key: "tab", Command: CmdNextFilter, Context: ContextMain, Description: "Next filter"},
		{Key: "shift+tab", Command: CmdPrevFilter, Context: ContextMain, Description: "Previous filter"},

		// Help overlay
		{Key: "esc", Command: CmdClose, Context: ContextHelp, Description: "Close help"},
		{Key: "j", Command: CmdScrollDown, Context: ContextHelp, Description: "Scroll down"},
		{Key: "down", Command: CmdScrollDown, Context: ContextHelp, Description: "Scroll down"},
		{Key: "k", Command: CmdScrollUp, Context: ContextHelp, Description: "Scroll up"},
		{Key: "up", Command: CmdScrollUp, Context: ContextHelp, Description: "Scroll up"},
	}
}

// RegisterDefaults registers all default bindings with the registry
func RegisterDefaults(r *Registry) {
	r.RegisterBindings(DefaultBindings())
}
