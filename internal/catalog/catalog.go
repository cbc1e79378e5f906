// Package catalog provides the seed extension list: the built-in default set
// or a static JSON file of the same shape.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/marcus/extdeck/internal/models"
)

// defaultSeed is never handed out directly; Seed returns a copy
var defaultSeed = []models.Extension{
	{ID: 1, Title: "DevLens", Description: "Quickly inspect page layouts and visualize element boundaries.", Logo: "logo-devlens.svg", Active: true},
	{ID: 2, Title: "StyleSpy", Description: "Instantly analyze and copy CSS from any webpage element.", Logo: "logo-style-spy.svg", Active: true},
	{ID: 3, Title: "SpeedBoost", Description: "Optimizes browser resource usage to accelerate page loading.", Logo: "logo-speed-boost.svg", Active: false},
	{ID: 4, Title: "JSONWizard", Description: "Formats, validates, and prettifies JSON responses in-browser.", Logo: "logo-json-wizard.svg", Active: true},
	{ID: 5, Title: "TabMaster Pro", Description: "Organizes browser tabs into groups and sessions.", Logo: "logo-tab-master-pro.svg", Active: true},
	{ID: 6, Title: "ViewportBuddy", Description: "Simulates various screen resolutions directly within the browser.", Logo: "logo-viewport-buddy.svg", Active: false},
	{ID: 7, Title: "Markup Notes", Description: "Enables annotation and notes directly onto webpages for collaborative debugging.", Logo: "logo-markup-notes.svg", Active: true},
	{ID: 8, Title: "GridGuides", Description: "Overlay customizable grids and alignment guides on any webpage.", Logo: "logo-grid-guides.svg", Active: false},
	{ID: 9, Title: "Palette Picker", Description: "Instantly extracts color palettes from any webpage.", Logo: "logo-palette-picker.svg", Active: true},
	{ID: 10, Title: "LinkChecker", Description: "Scans and highlights broken links on any page.", Logo: "logo-link-checker.svg", Active: true},
	{ID: 11, Title: "DOM Snapshot", Description: "Capture and export DOM structures quickly.", Logo: "logo-dom-snapshot.svg", Active: false},
	{ID: 12, Title: "ConsolePlus", Description: "Enhanced developer console with advanced filtering and logging.", Logo: "logo-console-plus.svg", Active: true},
}

// Seed returns a fresh copy of the built-in extension list
func Seed() []models.Extension {
	out := make([]models.Extension, len(defaultSeed))
	copy(out, defaultSeed)
	return out
}

// file is the on-disk catalog shape
type file struct {
	Extensions []models.Extension `json:"extensions"`
}

// Load reads a catalog file. An empty path returns the built-in seed.
// Shape checks (ids, titles) are left to store.New.
func Load(path string) ([]models.Extension, error) {
	if path == "" {
		return Seed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if f.Extensions == nil {
		f.Extensions = []models.Extension{}
	}
	return f.Extensions, nil
}
