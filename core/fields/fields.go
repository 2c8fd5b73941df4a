package fields

import "inventory-viewer/core/utils"

// Get returns the value of the first key present in rec.
// A key holding false, 0 or null still counts as present; only missing keys are skipped.
func Get(rec map[string]any, keys ...string) (any, bool) {
	if rec == nil {
		return nil, false
	}
	for _, k := range keys {
		if v, ok := rec[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// Number returns the first present value coerced to a finite number.
// A present value that does not coerce is absent; later keys are not consulted.
func Number(rec map[string]any, keys ...string) (float64, bool) {
	v, ok := Get(rec, keys...)
	if !ok {
		return 0, false
	}
	return utils.ToNumber(v)
}

// String returns the first present value stringified. Null is absent.
func String(rec map[string]any, keys ...string) (string, bool) {
	v, ok := Get(rec, keys...)
	if !ok || v == nil {
		return "", false
	}
	return utils.ToString(v), true
}

// Object returns rec[key] when it is a JSON object.
func Object(rec map[string]any, key string) map[string]any {
	if rec == nil {
		return nil
	}
	obj, _ := rec[key].(map[string]any)
	return obj
}

// Has reports whether any of keys is present with a non-null value.
func Has(rec map[string]any, keys ...string) bool {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return true
		}
	}
	return false
}
