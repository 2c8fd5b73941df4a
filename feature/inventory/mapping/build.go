package mapping

import (
	"regexp"
	"strings"

	"inventory-viewer/core/utils"
	"inventory-viewer/feature/inventory/detect"
	"inventory-viewer/feature/inventory/models"
)

// Source names one auxiliary mapping payload.
type Source string

const (
	SourceCharacters     Source = "characters"
	SourceWeapons        Source = "weapons"
	SourceEchoes         Source = "echoes"
	SourceSonataNames    Source = "sonataName"
	SourceItems          Source = "items"
	SourceEchoStats      Source = "echoStats"
	SourceCharacterIcons Source = "characterIcons"
)

// Sources lists every mapping source in build order.
var Sources = []Source{
	SourceCharacters,
	SourceWeapons,
	SourceEchoes,
	SourceSonataNames,
	SourceItems,
	SourceEchoStats,
	SourceCharacterIcons,
}

// RawSet holds decoded auxiliary payloads by source. Every entry is optional.
type RawSet map[Source]any

// BuildReport lists how many entries each source contributed.
type BuildReport struct {
	Added map[Source]int `json:"added"`
	Ready bool           `json:"ready"`
}

// iconPattern matches portrait filenames such as T_IconRoleHead256_38_UI1507.webp.
var iconPattern = regexp.MustCompile(`(?i)_UI(\d{4})\.webp$`)

// Build merges raw payloads into the registry. Existing entries for other ids survive;
// overlapping ids are overwritten. Manifest icons never override the built-in table.
func (r *Registry) Build(raw RawSet) BuildReport {
	report := BuildReport{Added: map[Source]int{}}

	for _, src := range Sources {
		payload, ok := raw[src]
		if !ok || payload == nil {
			continue
		}

		var n int
		switch src {
		case SourceCharacters:
			n = mergeSlugIDs(r.names[models.Characters], payload)
		case SourceEchoes:
			n = mergeSlugIDs(r.names[models.Echoes], payload)
		case SourceSonataNames:
			n = mergeSlugIDs(r.sonatas, payload)
		case SourceWeapons:
			n = r.mergeWeapons(payload)
		case SourceItems:
			n = mergeSlugObjects(r.names[models.Items], payload)
		case SourceEchoStats:
			n = mergeEchoStats(r.echoStats, payload)
		case SourceCharacterIcons:
			n = r.mergeIcons(payload)
		}
		if n > 0 {
			report.Added[src] = n
		}
	}

	if len(report.Added) > 0 {
		r.ready = true
	}
	report.Ready = r.ready
	return report
}

// mergeSlugIDs inverts { slug: id } into id -> prettified slug.
func mergeSlugIDs(dst map[int64]string, payload any) int {
	obj, ok := payload.(map[string]any)
	if !ok {
		return 0
	}
	n := 0
	for _, slug := range detect.SortedKeys(obj) {
		id, ok := utils.ToInt64(obj[slug])
		if !ok {
			continue
		}
		dst[id] = utils.Prettify(slug)
		n++
	}
	return n
}

// mergeSlugObjects reads { slug: { id, name? } } into id -> name.
func mergeSlugObjects(dst map[int64]string, payload any) int {
	obj, ok := payload.(map[string]any)
	if !ok {
		return 0
	}
	n := 0
	for _, slug := range detect.SortedKeys(obj) {
		entry, _ := obj[slug].(map[string]any)
		id, ok := utils.ToInt64(entry["id"])
		if !ok {
			continue
		}
		name := displayName(entry, slug)
		if name == "" {
			continue
		}
		dst[id] = name
		n++
	}
	return n
}

func (r *Registry) mergeWeapons(payload any) int {
	obj, ok := payload.(map[string]any)
	if !ok {
		return 0
	}
	n := 0
	for _, slug := range detect.SortedKeys(obj) {
		entry, _ := obj[slug].(map[string]any)
		id, ok := utils.ToInt64(entry["id"])
		if !ok {
			continue
		}
		if name := displayName(entry, slug); name != "" {
			r.names[models.Weapons][id] = name
			n++
		}
		if rarity, ok := entry["rarity"]; ok && rarity != nil {
			r.weaponRarity[id] = rarity
		}
	}
	return n
}

// displayName prefers an explicit non-empty name over the prettified slug.
func displayName(entry map[string]any, slug string) string {
	if name, ok := entry["name"].(string); ok && name != "" {
		return name
	}
	return utils.Prettify(slug)
}

func mergeEchoStats(dst map[string]string, payload any) int {
	obj, ok := payload.(map[string]any)
	if !ok {
		return 0
	}
	for code, label := range obj {
		dst[code] = utils.ToString(label)
	}
	return len(obj)
}

// mergeIcons accepts a list of filenames or { "files": [...] }.
func (r *Registry) mergeIcons(payload any) int {
	var files []any
	switch v := payload.(type) {
	case []any:
		files = v
	case map[string]any:
		files, _ = v["files"].([]any)
	}

	n := 0
	for _, f := range files {
		name, ok := f.(string)
		if !ok {
			continue
		}
		base := basename(name)
		m := iconPattern.FindStringSubmatch(base)
		if m == nil {
			continue
		}
		id, ok := utils.ToInt64(m[1])
		if !ok {
			continue
		}
		r.icons[utils.FormatNumber(float64(id))] = base
		n++
	}
	applyBuiltinIcons(r.icons)
	return n
}

func basename(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
