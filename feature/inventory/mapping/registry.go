package mapping

import (
	"inventory-viewer/core/utils"
	"inventory-viewer/feature/inventory/models"
)

// Namespace selects a sub-dictionary of a category during name resolution.
type Namespace string

const (
	NoNamespace Namespace = ""
	// Sonata routes echo lookups to the sonata (set) dictionary.
	Sonata Namespace = "sonata"
)

// Registry holds the id->name dictionaries used to resolve raw ids.
// It is not safe for concurrent mutation; the ingestion service serializes access.
type Registry struct {
	names        map[models.Category]map[int64]string
	sonatas      map[int64]string
	weaponRarity map[int64]any
	echoStats    map[string]string
	icons        map[string]string
	ready        bool
}

// Status summarizes the registry for status endpoints and logs.
type Status struct {
	Ready      bool `json:"ready"`
	Characters int  `json:"characters"`
	Weapons    int  `json:"weapons"`
	Echoes     int  `json:"echoes"`
	Sonatas    int  `json:"sonatas"`
	Items      int  `json:"items"`
	Rarities   int  `json:"weapon_rarities"`
	EchoStats  int  `json:"echo_stats"`
	Icons      int  `json:"character_icons"`
}

// NewRegistry returns an empty, not-ready registry seeded with the built-in icon table.
func NewRegistry() *Registry {
	r := &Registry{
		names: map[models.Category]map[int64]string{
			models.Characters: {},
			models.Weapons:    {},
			models.Echoes:     {},
			models.Items:      {},
		},
		sonatas:      map[int64]string{},
		weaponRarity: map[int64]any{},
		echoStats:    map[string]string{},
		icons:        map[string]string{},
	}
	applyBuiltinIcons(r.icons)
	return r
}

// Ready reports whether any build has populated a dictionary.
func (r *Registry) Ready() bool {
	return r.ready
}

// Resolve returns the display name for value, or value unchanged when the registry is
// not ready or has no entry for the numeric form of value.
func (r *Registry) Resolve(cat models.Category, value any, ns Namespace) any {
	if name, ok := r.lookup(cat, value, ns); ok {
		return name
	}
	return value
}

// ResolveName is Resolve with the result stringified; ok reports a dictionary hit.
func (r *Registry) ResolveName(cat models.Category, value any, ns Namespace) (string, bool) {
	if name, ok := r.lookup(cat, value, ns); ok {
		return name, true
	}
	return utils.ToString(value), false
}

func (r *Registry) lookup(cat models.Category, value any, ns Namespace) (string, bool) {
	if !r.ready {
		return "", false
	}
	id, ok := utils.ToInt64(value)
	if !ok {
		return "", false
	}

	dict := r.names[cat]
	if cat == models.Echoes && ns == Sonata {
		dict = r.sonatas
	}
	name, ok := dict[id]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Rarity returns the registry rarity of a weapon id.
func (r *Registry) Rarity(id models.ID) (any, bool) {
	n, ok := id.Int()
	if !ok {
		return nil, false
	}
	v, ok := r.weaponRarity[n]
	return v, ok && v != nil
}

// StatLabel returns the display label of an echo stat code.
// Unknown codes are prettified.
func (r *Registry) StatLabel(code string) string {
	if label, ok := r.echoStats[code]; ok && label != "" {
		return label
	}
	return utils.Prettify(code)
}

// Icon returns the portrait filename for a character id or special key.
func (r *Registry) Icon(key string) (string, bool) {
	f, ok := r.icons[key]
	return f, ok
}

// IDForName finds the id whose display name equals name.
func (r *Registry) IDForName(cat models.Category, name string) (int64, bool) {
	if name == "" {
		return 0, false
	}
	var (
		best  int64
		found bool
	)
	for id, n := range r.names[cat] {
		if n == name && (!found || id < best) {
			best, found = id, true
		}
	}
	return best, found
}

// Status returns per-dictionary sizes.
func (r *Registry) Status() Status {
	return Status{
		Ready:      r.ready,
		Characters: len(r.names[models.Characters]),
		Weapons:    len(r.names[models.Weapons]),
		Echoes:     len(r.names[models.Echoes]),
		Sonatas:    len(r.sonatas),
		Items:      len(r.names[models.Items]),
		Rarities:   len(r.weaponRarity),
		EchoStats:  len(r.echoStats),
		Icons:      len(r.icons),
	}
}
