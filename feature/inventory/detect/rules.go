package detect

import (
	"strings"

	"inventory-viewer/core/fields"
	"inventory-viewer/feature/inventory/models"
)

// Rule maps a structural signature of the first sample record to a category.
type Rule struct {
	Category models.Category
	Match    func(sample map[string]any) bool
}

// Rules are evaluated in order; the first match wins.
var Rules = []Rule{
	{
		Category: models.Echoes,
		Match: func(s map[string]any) bool {
			return fields.Has(s, "sonata", "stats", "mainStat")
		},
	},
	{
		Category: models.Characters,
		Match: func(s map[string]any) bool {
			return fields.Has(s, "weaponId", "equippedWeapon", "element") ||
				(fields.Has(s, "name") && fields.Has(s, "level"))
		},
	},
	{
		Category: models.Weapons,
		Match: func(s map[string]any) bool {
			_, hasRank := s["rank"]
			return hasRank && fields.Has(s, "name", "weaponType")
		},
	},
	{
		Category: models.Resources,
		Match: func(s map[string]any) bool {
			_, q := s["quantity"]
			_, c := s["count"]
			return q || c
		},
	},
}

// FilenameRule matches a lowercase filename fragment written by a known exporter.
type FilenameRule struct {
	Category models.Category
	Fragment string
}

// FilenameRules are the exporter-specific fragments consulted when the structure is inconclusive.
var FilenameRules = []FilenameRule{
	{models.Characters, "characters_wuwainventorykamera"},
	{models.Weapons, "weapons_wuwainventorykamera"},
	{models.Echoes, "echoes_wuwainventorykamera"},
	{models.Items, "inventory_wuwainventorykamera"},
}

// HintRules are looser fragments used only after Detect gave up.
var HintRules = []FilenameRule{
	{models.Characters, "char"},
	{models.Weapons, "weap"},
	{models.Echoes, "echo"},
	{models.Items, "invent"},
}

func matchFilename(rules []FilenameRule, filename string) models.Category {
	lower := strings.ToLower(filename)
	if lower == "" {
		return models.Unknown
	}
	for _, r := range rules {
		if strings.Contains(lower, r.Fragment) {
			return r.Category
		}
	}
	return models.Unknown
}
