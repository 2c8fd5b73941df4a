package store

import (
	"fmt"

	"inventory-viewer/feature/inventory/models"
)

// Store holds the normalized records of the current session, one ordered collection
// per category. It is not safe for concurrent use.
type Store struct {
	characters []models.Character
	weapons    []models.Weapon
	echoes     []models.Echo
	items      []models.Item
	dedup      bool
}

// Option configures a Store.
type Option func(*Store)

// WithDedup skips records whose id (or name, when the id is absent) is already stored.
// Without it every ingestion appends, so loading a file twice duplicates its records.
func WithDedup() Option {
	return func(s *Store) { s.dedup = true }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Counts is the number of records per category.
type Counts struct {
	Characters int `json:"characters"`
	Weapons    int `json:"weapons"`
	Echoes     int `json:"echoes"`
	Items      int `json:"items"`
}

// Dedup reports whether the store merges unique records only.
func (s *Store) Dedup() bool { return s.dedup }

// AddCharacters appends records and returns how many were stored.
func (s *Store) AddCharacters(recs []models.Character) int {
	var n int
	s.characters, n = merge(s.characters, recs, s.dedup)
	return n
}

// AddWeapons appends records and returns how many were stored.
func (s *Store) AddWeapons(recs []models.Weapon) int {
	var n int
	s.weapons, n = merge(s.weapons, recs, s.dedup)
	return n
}

// AddEchoes appends records and returns how many were stored.
func (s *Store) AddEchoes(recs []models.Echo) int {
	var n int
	s.echoes, n = merge(s.echoes, recs, s.dedup)
	return n
}

// AddItems appends records and returns how many were stored.
func (s *Store) AddItems(recs []models.Item) int {
	var n int
	s.items, n = merge(s.items, recs, s.dedup)
	return n
}

// Characters returns a copy of the character collection.
func (s *Store) Characters() []models.Character { return clone(s.characters) }

// Weapons returns a copy of the weapon collection.
func (s *Store) Weapons() []models.Weapon { return clone(s.weapons) }

// Echoes returns a copy of the echo collection.
func (s *Store) Echoes() []models.Echo { return clone(s.echoes) }

// Items returns a copy of the item collection.
func (s *Store) Items() []models.Item { return clone(s.items) }

// Counts returns the size of every collection.
func (s *Store) Counts() Counts {
	return Counts{
		Characters: len(s.characters),
		Weapons:    len(s.weapons),
		Echoes:     len(s.echoes),
		Items:      len(s.items),
	}
}

// Reset clears every collection.
func (s *Store) Reset() {
	s.characters = nil
	s.weapons = nil
	s.echoes = nil
	s.items = nil
}

// ResetCategory clears one collection.
func (s *Store) ResetCategory(c models.Category) error {
	switch c {
	case models.Characters:
		s.characters = nil
	case models.Weapons:
		s.weapons = nil
	case models.Echoes:
		s.echoes = nil
	case models.Items:
		s.items = nil
	default:
		return fmt.Errorf("cannot reset category %q", c)
	}
	return nil
}

// clone copies list into a non-nil slice so empty collections encode as [].
func clone[T any](list []T) []T {
	return append(make([]T, 0, len(list)), list...)
}

type keyed interface {
	Key() string
}

// merge appends recs to list. In dedup mode a record is dropped when its key was
// already stored or appeared earlier in the same batch.
func merge[T keyed](list, recs []T, dedup bool) ([]T, int) {
	if !dedup {
		return append(list, recs...), len(recs)
	}

	seen := make(map[string]struct{}, len(list)+len(recs))
	for _, r := range list {
		seen[r.Key()] = struct{}{}
	}
	added := 0
	for _, r := range recs {
		k := r.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		list = append(list, r)
		added++
	}
	return list, added
}
