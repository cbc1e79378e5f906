// Package store owns the extension list and the current filter selection.
// A Store is the single source of truth for the UI; it is not safe for
// concurrent use.
package store

import (
	"errors"
	"fmt"

	"github.com/marcus/extdeck/internal/models"
)

var (
	ErrInvalidID   = errors.New("extension id must be positive")
	ErrDuplicateID = errors.New("duplicate extension id")
	ErrEmptyTitle  = errors.New("extension title is empty")
)

// Counts tallies the collection by active flag
type Counts struct {
	All      int `json:"all"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// For returns the number of extensions visible under mode
func (c Counts) For(mode models.FilterMode) int {
	switch mode {
	case models.FilterActive:
		return c.Active
	case models.FilterInactive:
		return c.Inactive
	default:
		return c.All
	}
}

// Store holds the ordered extension list and the active filter
type Store struct {
	extensions []models.Extension
	index      map[int]int // id -> position in extensions
	filter     models.FilterMode
}

// New builds a store from a seed list. The seed is copied, so later changes
// to the caller's slice do not reach the store. The filter starts at All.
func New(seed []models.Extension) (*Store, error) {
	s := &Store{
		extensions: make([]models.Extension, len(seed)),
		index:      make(map[int]int, len(seed)),
		filter:     models.FilterAll,
	}

	for i, ext := range seed {
		if ext.ID <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidID, ext.ID)
		}
		if ext.Title == "" {
			return nil, fmt.Errorf("%w: id %d", ErrEmptyTitle, ext.ID)
		}
		if _, dup := s.index[ext.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, ext.ID)
		}
		s.index[ext.ID] = i
		s.extensions[i] = ext
	}

	return s, nil
}

// Toggle flips the Active flag of the extension with the given id.
// An unknown id leaves the store unchanged; the result only reports whether
// a record matched.
func (s *Store) Toggle(id int) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	ext := s.extensions[i]
	ext.Active = !ext.Active
	s.extensions[i] = ext
	return true
}

// SetFilter replaces the current filter
func (s *Store) SetFilter(mode models.FilterMode) {
	s.filter = mode
}

// Filter returns the current filter
func (s *Store) Filter() models.FilterMode {
	return s.filter
}

// Extensions returns a copy of the full list in stored order
func (s *Store) Extensions() []models.Extension {
	out := make([]models.Extension, len(s.extensions))
	copy(out, s.extensions)
	return out
}

// Get returns the extension with the given id
func (s *Store) Get(id int) (models.Extension, bool) {
	i, ok := s.index[id]
	if !ok {
		return models.Extension{}, false
	}
	return s.extensions[i], true
}

// Len returns the number of extensions
func (s *Store) Len() int {
	return len(s.extensions)
}

// Visible projects the list through the current filter
func (s *Store) Visible() []models.Extension {
	return Project(s.extensions, s.filter)
}

// Counts tallies the list by active flag
func (s *Store) Counts() Counts {
	c := Counts{All: len(s.extensions)}
	for _, ext := range s.extensions {
		if ext.Active {
			c.Active++
		} else {
			c.Inactive++
		}
	}
	return c
}
