package normalize

import (
	"inventory-viewer/core/fields"
	"inventory-viewer/core/utils"
	"inventory-viewer/feature/inventory/mapping"
	"inventory-viewer/feature/inventory/models"
)

const maxSubStatLabels = 3

var (
	echoIDKeys     = []string{"id", "echoId", "templateId", "instanceId"}
	costKeys       = []string{"cost", "echoCost", "valueCost"}
	echoRarityKeys = []string{"rarity", "rank", "stars", "quality"}
	mainStatKeys   = []string{"mainStat", "MainStat", "primaryStat"}
	subStatKeys    = []string{"subStats", "SubStats", "subs", "secondaryStats"}
	additionalKeys = []string{"additionalStats", "AdditionalStats"}
	sonataKeys     = []string{"sonata", "set", "sonataId"}
	statCodeKeys   = []string{"name", "stat", "key"}
)

// Echoes converts an echoes export.
func Echoes(payload any, reg *mapping.Registry) []models.Echo {
	entries := Entries(payload, false)
	out := make([]models.Echo, 0, len(entries))
	for _, e := range entries {
		out = append(out, echo(e, reg))
	}
	return out
}

func echo(e Entry, reg *mapping.Registry) models.Echo {
	rec := e.Record
	var id models.ID
	if n, ok := fields.Number(rec, echoIDKeys...); ok {
		id = models.NumericID(n)
	}
	ec := models.Echo{
		ID:              id,
		SubStats:        []any{},
		SubStatLabels:   []string{},
		AdditionalStats: []any{},
		Raw:             rec,
	}
	ec.Name = displayName(reg, models.Echoes, id, rec)
	if v, ok := fields.Get(rec, sonataKeys...); ok && v != nil {
		ec.Sonata, _ = reg.ResolveName(models.Echoes, v, mapping.Sonata)
	}
	ec.Cost, _ = fields.Get(rec, costKeys...)
	ec.Rarity, _ = fields.Get(rec, echoRarityKeys...)

	ec.MainStat, _ = fields.Get(rec, mainStatKeys...)
	if code := statCode(ec.MainStat); code != "" {
		ec.MainStatLabel = reg.StatLabel(code)
	}

	if subs, ok := list(rec, subStatKeys...); ok {
		ec.SubStats = subs
		for _, s := range subs {
			if len(ec.SubStatLabels) == maxSubStatLabels {
				break
			}
			if code := statCode(s); code != "" {
				ec.SubStatLabels = append(ec.SubStatLabels, reg.StatLabel(code))
			}
		}
	}
	if extra, ok := list(rec, additionalKeys...); ok {
		ec.AdditionalStats = extra
	}
	return ec
}

// statCode extracts the stat code of a stat entry: a bare string, or the first non-empty
// name, stat or key field of an object.
func statCode(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case map[string]any:
		for _, k := range statCodeKeys {
			if code := utils.ToString(s[k]); code != "" {
				return code
			}
		}
		return ""
	default:
		return utils.ToString(s)
	}
}

func list(rec map[string]any, keys ...string) ([]any, bool) {
	v, ok := fields.Get(rec, keys...)
	if !ok {
		return nil, false
	}
	l, ok := v.([]any)
	return l, ok
}
