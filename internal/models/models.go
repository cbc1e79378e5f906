package models

import (
	"errors"
	"fmt"
	"strings"
)

// Extension is a single catalog entry that can be switched on or off
type Extension struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Logo        string `json:"logo"` // opaque asset reference, resolved outside extdeck
	Active      bool   `json:"active"`
}

// FilterMode selects which extensions are visible
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterActive
	FilterInactive
)

// ErrUnknownFilter is returned when a filter name is not one of all, active, inactive
var ErrUnknownFilter = errors.New("unknown filter")

// FilterModes returns every filter mode in selector order
func FilterModes() []FilterMode {
	return []FilterMode{FilterAll, FilterActive, FilterInactive}
}

// String returns the lowercase name used on the command line and in config
func (f FilterMode) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterActive:
		return "active"
	case FilterInactive:
		return "inactive"
	default:
		return fmt.Sprintf("filter(%d)", int(f))
	}
}

// Label returns the capitalised name shown on the filter selector
func (f FilterMode) Label() string {
	s := f.String()
	if !f.IsValid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsValid reports whether f is one of the three defined modes
func (f FilterMode) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterInactive:
		return true
	}
	return false
}

// Next returns the following mode, wrapping from Inactive back to All
func (f FilterMode) Next() FilterMode {
	return (f + 1) % 3
}

// Prev returns the preceding mode, wrapping from All to Inactive
func (f FilterMode) Prev() FilterMode {
	return (f + 2) % 3
}

// Matches reports whether ext is visible under f
func (f FilterMode) Matches(ext Extension) bool {
	switch f {
	case FilterActive:
		return ext.Active
	case FilterInactive:
		return !ext.Active
	default:
		return true
	}
}

// ParseFilterMode converts a filter name to a FilterMode.
// Accepts all/active/inactive in any case; an empty string means all.
func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "active", "on", "enabled":
		return FilterActive, nil
	case "inactive", "off", "disabled":
		return FilterInactive, nil
	}
	return FilterAll, fmt.Errorf("%w: %q (want all, active or inactive)", ErrUnknownFilter, s)
}

// MarshalText implements encoding.TextMarshaler
func (f FilterMode) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFilter, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *FilterMode) UnmarshalText(text []byte) error {
	mode, err := ParseFilterMode(string(text))
	if err != nil {
		return err
	}
	*f = mode
	return nil
}
