// Package catalog holds the movie and show records the browser displays and the
// sources that supply them.
//
// Items are built once at startup from seed data and never change afterwards.
// Every Source hands out copies, so callers may keep or modify what they get
// without affecting the lists.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// MaxRating is the highest star rating an item can carry.
const MaxRating = 5

var (
	// ErrNotFound is returned when a name does not resolve in a section's list.
	ErrNotFound = errors.New("catalog item not found")
	// ErrInvalidItem is returned by seed validation.
	ErrInvalidItem = errors.New("invalid catalog item")
)

// Section is a top-level partition of the catalog.
type Section int

const (
	Movies Section = iota
	Shows
)

// Sections returns every section in display order.
func Sections() []Section {
	return []Section{Movies, Shows}
}

func (s Section) String() string {
	switch s {
	case Movies:
		return "Movies"
	case Shows:
		return "Shows"
	default:
		return "Unknown"
	}
}

// Slug is the lowercase form used in route strings and config files.
func (s Section) Slug() string {
	return strings.ToLower(s.String())
}

// Valid reports whether s is one of the declared sections.
func (s Section) Valid() bool {
	return s == Movies || s == Shows
}

// ParseSection accepts "movies" or "shows" in any case.
func ParseSection(v string) (Section, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "movies", "movie":
		return Movies, nil
	case "shows", "show":
		return Shows, nil
	}
	return 0, fmt.Errorf("unknown section %q", v)
}

// Item is a single movie or show.
type Item struct {
	Section     Section `toml:"-" yaml:"-"`
	Name        string  `toml:"name" yaml:"name"`
	Description string  `toml:"description" yaml:"description"`
	PosterURL   string  `toml:"poster_url" yaml:"poster_url"`
	Rating      int     `toml:"rating" yaml:"rating"`
}

func (i Item) String() string {
	return fmt.Sprintf("%s %q (%d/%d)", strings.TrimSuffix(i.Section.String(), "s"), i.Name, i.Rating, MaxRating)
}

// validate checks the fields that are not free-form.
func (i Item) validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: empty name in %s", ErrInvalidItem, i.Section)
	}
	if i.Rating < 0 || i.Rating > MaxRating {
		return fmt.Errorf("%w: %s rating %d outside 0..%d", ErrInvalidItem, i.Name, i.Rating, MaxRating)
	}
	return nil
}

// Source supplies the ordered item lists for each section.
type Source interface {
	// Items returns a copy of the section's list in seed order.
	Items(s Section) []Item
	// Lookup resolves an exact name within a section. A miss returns an error
	// wrapping ErrNotFound.
	Lookup(s Section, name string) (Item, error)
	// Close releases any resources held by the source.
	Close() error
}
