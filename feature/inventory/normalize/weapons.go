package normalize

import (
	"inventory-viewer/core/fields"
	"inventory-viewer/feature/inventory/mapping"
	"inventory-viewer/feature/inventory/models"
)

var (
	weaponIDKeys     = []string{"id", "weaponId", "templateId", "instanceId"}
	ascensionKeys    = []string{"ascension", "Ascension", "phase"}
	weaponRarityKeys = []string{"rarity", "Rarity", "rank", "stars", "quality"}
)

// Weapons converts a weapons export: a sequence, an id-keyed object, or a sequence of
// single-key-wrapped objects. A numeric object key outranks the record's own id fields.
func Weapons(payload any, reg *mapping.Registry) []models.Weapon {
	entries := Entries(payload, true)
	out := make([]models.Weapon, 0, len(entries))
	for _, e := range entries {
		out = append(out, weapon(e, reg))
	}
	return out
}

func weapon(e Entry, reg *mapping.Registry) models.Weapon {
	rec := e.Record
	w := models.Weapon{
		ID:  recordID(e, weaponIDKeys, true),
		Raw: rec,
	}
	w.Name = displayName(reg, models.Weapons, w.ID, rec)
	w.Level, _ = fields.Get(rec, levelKeys...)
	w.Ascension, _ = fields.Get(rec, ascensionKeys...)
	if r, ok := reg.Rarity(w.ID); ok {
		w.Rarity = r
	} else {
		w.Rarity, _ = fields.Get(rec, weaponRarityKeys...)
	}
	return w
}
