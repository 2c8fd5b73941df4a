package detect

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
	"strings"

	"inventory-viewer/feature/inventory/models"
)

// Detect classifies a decoded JSON payload.
// Structure is checked first, then the exporter filename fragments.
func Detect(payload any, filename string) models.Category {
	if samples := Samples(payload); len(samples) > 0 {
		if sample, ok := samples[0].(map[string]any); ok {
			for _, r := range Rules {
				if r.Match(sample) {
					if r.Category == models.Resources {
						return models.Items
					}
					return r.Category
				}
			}
		}
	}
	return matchFilename(FilenameRules, filename)
}

// Hint classifies by loose filename fragments (char, weap, echo, invent).
func Hint(filename string) models.Category {
	return matchFilename(HintRules, filename)
}

// Samples returns the candidate records of a payload: a sequence as-is,
// the values of an object in key order, nothing otherwise.
func Samples(payload any) []any {
	switch v := payload.(type) {
	case []any:
		return v
	case map[string]any:
		out := make([]any, 0, len(v))
		for _, k := range SortedKeys(v) {
			out = append(out, v[k])
		}
		return out
	default:
		return nil
	}
}

// SortedKeys orders object keys deterministically: integer keys ascending by value,
// then the remaining keys lexically.
func SortedKeys(obj map[string]any) []string {
	keys := slices.Collect(maps.Keys(obj))
	slices.SortFunc(keys, func(a, b string) int {
		an, aok := plainInt(a)
		bn, bok := plainInt(b)
		switch {
		case aok && bok:
			return cmp.Or(cmp.Compare(an, bn), strings.Compare(a, b))
		case aok:
			return -1
		case bok:
			return 1
		default:
			return strings.Compare(a, b)
		}
	})
	return keys
}

// plainInt accepts canonical unsigned integer keys only ("7", not "07" or "+7").
func plainInt(s string) (uint64, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	return n, err == nil
}
