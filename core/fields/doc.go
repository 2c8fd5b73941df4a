// Package fields provides tolerant lookups over decoded JSON records.
//
// Exporters are not schema-stable: the same logical field shows up as level, Level, lv
// or LV depending on the tool and its version. Every accessor takes an ordered list of
// candidate keys and returns the value of the first one present.
//
// # Variants
//
//   - Get: raw passthrough.
//   - Number: finite float64 or absent, never NaN.
//   - String: stringified non-null value.
//
// # Usage
//
//	level, ok := fields.Get(rec, "level", "Level", "lv", "LV")
//	id, ok := fields.Number(rec, "id", "characterId", "avatarId")
package fields
