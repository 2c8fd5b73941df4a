package models

import "fmt"

// Category is the record category an input file is classified into.
type Category string

const (
	Characters Category = "characters"
	Weapons    Category = "weapons"
	Echoes     Category = "echoes"
	Items      Category = "items"
	Unknown    Category = "unknown"

	// Resources is only produced by the structural rules; it is reported as Items.
	Resources Category = "resources"
)

// StoreCategories lists the categories that own a store collection, in display order.
var StoreCategories = []Category{Characters, Weapons, Echoes, Items}

// IsStored reports whether c owns a store collection.
func (c Category) IsStored() bool {
	switch c {
	case Characters, Weapons, Echoes, Items:
		return true
	default:
		return false
	}
}

// ParseCategory converts a path or flag value into a store category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsStored() {
		return Unknown, fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}
