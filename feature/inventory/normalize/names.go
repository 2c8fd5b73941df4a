package normalize

import (
	"inventory-viewer/core/fields"
	"inventory-viewer/core/utils"
	"inventory-viewer/feature/inventory/mapping"
	"inventory-viewer/feature/inventory/models"
)

var levelKeys = []string{"level", "Level", "lv", "LV"}

// recordID picks the id of a record. The keyed flag decides whether the numeric object key
// outranks the explicit id fields.
func recordID(e Entry, idKeys []string, keyFirst bool) models.ID {
	fromKey := func() models.ID {
		if !e.Keyed {
			return ""
		}
		if n, ok := utils.ToNumber(e.Key); ok {
			return models.NumericID(n)
		}
		return ""
	}
	fromFields := func() models.ID {
		if n, ok := fields.Number(e.Record, idKeys...); ok {
			return models.NumericID(n)
		}
		return ""
	}

	var id models.ID
	if keyFirst {
		id = firstID(fromKey, fromFields)
	} else {
		id = firstID(fromFields, fromKey)
	}
	if id.IsZero() {
		if s, ok := e.Record["id"].(string); ok && s != "" {
			id = models.ID(s)
		}
	}
	return id
}

func firstID(sources ...func() models.ID) models.ID {
	for _, src := range sources {
		if id := src(); !id.IsZero() {
			return id
		}
	}
	return ""
}

// displayName resolves the record id through the registry. On a miss the record's own
// name (itself resolved, exporters sometimes put the id there) is used, then the raw id.
func displayName(reg *mapping.Registry, cat models.Category, id models.ID, rec map[string]any) string {
	if !id.IsZero() {
		if name, ok := reg.ResolveName(cat, string(id), mapping.NoNamespace); ok {
			return name
		}
	}
	if v, ok := rec["name"]; ok && v != nil {
		name, _ := reg.ResolveName(cat, v, mapping.NoNamespace)
		if name != "" {
			return name
		}
	}
	return string(id)
}
