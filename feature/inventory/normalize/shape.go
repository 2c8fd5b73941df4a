package normalize

import "inventory-viewer/feature/inventory/detect"

// Entry is one raw record with the object key it was found under, if any.
type Entry struct {
	Key    string
	Keyed  bool
	Record map[string]any
}

// Entries flattens the payload shapes exporters emit into a uniform list:
//
//	[ {...}, {...} ]                  sequence, no keys
//	{ "1507": {...}, "1207": {...} }  id-keyed object
//	[ { "21050066": {...} } ]         single-key-wrapped elements (unwrapSingle only)
//
// Elements that are not objects are skipped.
func Entries(payload any, unwrapSingle bool) []Entry {
	switch v := payload.(type) {
	case []any:
		out := make([]Entry, 0, len(v))
		for _, el := range v {
			rec, ok := el.(map[string]any)
			if !ok {
				continue
			}
			if unwrapSingle {
				if key, inner, ok := singleKeyWrapped(rec); ok {
					out = append(out, Entry{Key: key, Keyed: true, Record: inner})
					continue
				}
			}
			out = append(out, Entry{Record: rec})
		}
		return out
	case map[string]any:
		out := make([]Entry, 0, len(v))
		for _, key := range detect.SortedKeys(v) {
			rec, ok := v[key].(map[string]any)
			if !ok {
				continue
			}
			out = append(out, Entry{Key: key, Keyed: true, Record: rec})
		}
		return out
	default:
		return nil
	}
}

func singleKeyWrapped(rec map[string]any) (string, map[string]any, bool) {
	if len(rec) != 1 {
		return "", nil, false
	}
	for k, v := range rec {
		inner, ok := v.(map[string]any)
		return k, inner, ok
	}
	return "", nil, false
}
