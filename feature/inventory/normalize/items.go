package normalize

import (
	"inventory-viewer/core/fields"
	"inventory-viewer/feature/inventory/mapping"
	"inventory-viewer/feature/inventory/models"
)

var (
	itemIDKeys   = []string{"id", "itemId", "templateId"}
	quantityKeys = []string{"quantity", "count", "num", "qty", "amount"}
)

// Items converts an inventory export.
func Items(payload any, reg *mapping.Registry) []models.Item {
	entries := Entries(payload, false)
	out := make([]models.Item, 0, len(entries))
	for _, e := range entries {
		rec := e.Record
		it := models.Item{Raw: rec}
		if n, ok := fields.Number(rec, itemIDKeys...); ok {
			it.ID = models.NumericID(n)
		}
		it.Name = displayName(reg, models.Items, it.ID, rec)
		it.Quantity, _ = fields.Get(rec, quantityKeys...)
		out = append(out, it)
	}
	return out
}
