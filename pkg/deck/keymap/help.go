package keymap

import (
	"fmt"
	"strings"
)

// HelpBinding is one help line: every key bound to a command, plus its description
type HelpBinding struct {
	Keys        string // e.g. "j / down"
	Description string
}

// helpSections lists the contexts shown in help, in display order
var helpSections = []struct {
	Title   string
	Context Context
}{
	{"Extensions", ContextMain},
	{"Help", ContextHelp},
	{"General", ContextGlobal},
}

// HelpFor groups the bindings of a single context (globals excluded) by
// command, keeping first-registration order.
func (r *Registry) HelpFor(context Context) []HelpBinding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var order []Command
	keys := make(map[Command][]string)
	desc := make(map[Command]string)
	for _, b := range r.bindings[context] {
		if _, seen := keys[b.Command]; !seen {
			order = append(order, b.Command)
			desc[b.Command] = b.Description
		}
		keys[b.Command] = append(keys[b.Command], b.Key)
	}

	out := make([]HelpBinding, 0, len(order))
	for _, cmd := range order {
		out = append(out, HelpBinding{
			Keys:        strings.Join(keys[cmd], " / "),
			Description: desc[cmd],
		})
	}
	return out
}

// GenerateHelpMarkdown renders all bindings as markdown tables for the help overlay
func (r *Registry) GenerateHelpMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Key Bindings\n")

	for _, section := range helpSections {
		bindings := r.HelpFor(section.Context)
		if len(bindings) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n## %s\n\n", section.Title))
		sb.WriteString("| Keys | Action |\n|------|--------|\n")
		for _, b := range bindings {
			sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", b.Keys, b.Description))
		}
	}

	sb.WriteString("\nPress `?` or `esc` to close.\n")
	return sb.String()
}
