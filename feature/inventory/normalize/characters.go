package normalize

import (
	"strconv"
	"strings"

	"inventory-viewer/core/fields"
	"inventory-viewer/feature/inventory/mapping"
	"inventory-viewer/feature/inventory/models"
)

var (
	characterIDKeys    = []string{"id", "characterId", "avatarId", "characterID"}
	flatWeaponIDKeys   = []string{"weaponId", "equippedWeaponId"}
	nestedWeaponIDKeys = []string{"id", "weaponId", "templateId"}
	nestedWeaponKeys   = []string{"weapon", "equippedWeapon"}
)

// Characters converts a characters export. Sequences and id-keyed objects are accepted.
func Characters(payload any, reg *mapping.Registry) []models.Character {
	entries := Entries(payload, false)
	out := make([]models.Character, 0, len(entries))
	for _, e := range entries {
		out = append(out, character(e, reg))
	}
	return out
}

func character(e Entry, reg *mapping.Registry) models.Character {
	rec := e.Record
	c := models.Character{
		ID:     recordID(e, characterIDKeys, false),
		Skills: []models.SkillLevel{},
		Raw:    rec,
	}
	if e.Keyed {
		c.RawKey = e.Key
	}
	c.Name = displayName(reg, models.Characters, c.ID, rec)
	c.Level, _ = fields.Get(rec, levelKeys...)

	weaponID, hasWeapon := fields.Number(rec, flatWeaponIDKeys...)
	for _, key := range nestedWeaponKeys {
		w := fields.Object(rec, key)
		if w == nil {
			continue
		}
		if !hasWeapon {
			weaponID, hasWeapon = fields.Number(w, nestedWeaponIDKeys...)
		}
		if c.WeaponLevel == nil {
			c.WeaponLevel, _ = fields.Get(w, levelKeys...)
		}
	}
	if c.WeaponLevel == nil {
		c.WeaponLevel, _ = fields.Get(rec, "weaponLevel")
	}
	if hasWeapon {
		c.WeaponName, _ = reg.ResolveName(models.Weapons, weaponID, mapping.NoNamespace)
	} else {
		c.WeaponName, _ = fields.String(rec, "weaponName")
	}

	if skills := fields.Object(rec, "skills"); skills != nil {
		for _, slot := range models.SkillSlots {
			if lvl, ok := skills[slot]; ok && lvl != nil {
				c.Skills = append(c.Skills, models.SkillLevel{Slot: slot, Level: lvl})
			}
		}
	}

	c.Icon = characterIcon(reg, c)
	return c
}

// characterIcon looks the portrait up by numeric id, then by the raw object key
// (the protagonist is keyed by slug), then by reverse name lookup.
func characterIcon(reg *mapping.Registry, c models.Character) string {
	if n, ok := c.ID.Int(); ok {
		if f, ok := reg.Icon(strconv.FormatInt(n, 10)); ok {
			return f
		}
	}
	if c.RawKey != "" {
		if f, ok := reg.Icon(strings.ToLower(c.RawKey)); ok {
			return f
		}
	}
	if !c.ID.IsZero() {
		if f, ok := reg.Icon(strings.ToLower(string(c.ID))); ok {
			return f
		}
	}
	if id, ok := reg.IDForName(models.Characters, c.Name); ok {
		f, _ := reg.Icon(strconv.FormatInt(id, 10))
		return f
	}
	return ""
}
