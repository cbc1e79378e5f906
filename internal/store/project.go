package store

import "github.com/marcus/extdeck/internal/models"

// Project returns the records visible under mode, in their original order.
// The result is a new slice; records is never modified.
func Project(records []models.Extension, mode models.FilterMode) []models.Extension {
	out := make([]models.Extension, 0, len(records))
	for _, ext := range records {
		if mode.Matches(ext) {
			out = append(out, ext)
		}
	}
	return out
}

// IDs returns the ids of records in order
func IDs(records []models.Extension) []int {
	ids := make([]int, len(records))
	for i, ext := range records {
		ids[i] = ext.ID
	}
	return ids
}
