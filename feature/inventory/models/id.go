package models

import (
	"strconv"

	"inventory-viewer/core/utils"
)

// ID is the canonical form of a record id.
// Numeric ids are stored in their decimal form ("21050066"); a few exporters key records
// by slug ("zaira"), which is kept verbatim. The zero value means no id.
type ID string

// NumericID formats a coerced number as an ID.
func NumericID(n float64) ID {
	return ID(utils.FormatNumber(n))
}

// IsZero reports whether the id is absent.
func (id ID) IsZero() bool {
	return id == ""
}

// Int returns the integral numeric form of the id.
func (id ID) Int() (int64, bool) {
	if id == "" {
		return 0, false
	}
	return utils.ToInt64(string(id))
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// MarshalJSON writes numeric ids as numbers, slugs as strings and absent ids as null.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, ok := utils.ToNumber(string(id)); ok {
		return []byte(id), nil
	}
	return []byte(strconv.Quote(string(id))), nil
}
