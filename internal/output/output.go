// Package output provides styled terminal output helpers (success, error,
// warning, extension formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/extdeck/internal/models"
)

var (
	// Styles
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5544B"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B4862"))
	filterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

var out io.Writer = os.Stdout

// SetOutput redirects all helpers to w and returns the previous writer
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Fprintln(out, errorStyle.Render("ERROR: "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Fprintln(out, warningStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Fprintln(out, fmt.Sprintf(format, args...))
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// StateBadge renders the on/off badge for an extension
func StateBadge(active bool) string {
	if active {
		return activeStyle.Render("[on]")
	}
	return inactiveStyle.Render("[off]")
}

// FormatExtensionShort formats an extension as a single line
func FormatExtensionShort(ext models.Extension) string {
	return fmt.Sprintf("%s %s  %s",
		subtleStyle.Render(fmt.Sprintf("#%-3d", ext.ID)),
		titleStyle.Render(ext.Title),
		StateBadge(ext.Active))
}

// FormatExtensionLong formats an extension with its description and logo
func FormatExtensionLong(ext models.Extension) string {
	var sb strings.Builder
	sb.WriteString(FormatExtensionShort(ext))
	sb.WriteString("\n")
	if ext.Description != "" {
		sb.WriteString(IndentString(ext.Description, 5))
		sb.WriteString("\n")
	}
	if ext.Logo != "" {
		sb.WriteString(IndentString(subtleStyle.Render("logo: "+ext.Logo), 5))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FilterHeader renders "Extensions (active, 8 of 12)"
func FilterHeader(mode models.FilterMode, shown, total int) string {
	return fmt.Sprintf("%s %s",
		titleStyle.Render("Extensions"),
		subtleStyle.Render(fmt.Sprintf("(%s, %d of %d)", filterStyle.Render(mode.String()), shown, total)))
}

// EmptyState renders the message shown when a filter matches nothing
func EmptyState(mode models.FilterMode) string {
	if mode == models.FilterAll {
		return subtleStyle.Render("No extensions installed.")
	}
	return subtleStyle.Render(fmt.Sprintf("No %s extensions.", mode.String()))
}

// IndentString indents each line of s by spaces
func IndentString(s string, spaces int) string {
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
