package models

// SkillSlots is the fixed display order of character skill slots.
var SkillSlots = []string{"normal", "resonance", "forte", "liberation", "intro"}

// SkillLevel is one entry of a character's skill table.
type SkillLevel struct {
	Slot  string `json:"slot"`
	Level any    `json:"level"`
}

// Character is the canonical character record.
type Character struct {
	ID          ID             `json:"id"`
	Name        string         `json:"name"`
	Level       any            `json:"level,omitempty"`
	WeaponName  string         `json:"weapon_name"`
	WeaponLevel any            `json:"weapon_level,omitempty"`
	Skills      []SkillLevel   `json:"skills"`
	RawKey      string         `json:"raw_key,omitempty"` // object key when the export was id-keyed
	Icon        string         `json:"icon,omitempty"`
	Raw         map[string]any `json:"raw"`
}

// Weapon is the canonical weapon record.
type Weapon struct {
	ID        ID             `json:"id"`
	Name      string         `json:"name"`
	Level     any            `json:"level,omitempty"`
	Ascension any            `json:"ascension,omitempty"`
	Rarity    any            `json:"rarity,omitempty"`
	Raw       map[string]any `json:"raw"`
}

// Echo is the canonical echo record. Echoes are not guaranteed a stable id.
type Echo struct {
	ID              ID             `json:"id"`
	Name            string         `json:"name"`
	Sonata          string         `json:"sonata"`
	Cost            any            `json:"cost,omitempty"`
	Rarity          any            `json:"rarity,omitempty"`
	MainStat        any            `json:"main_stat,omitempty"`
	MainStatLabel   string         `json:"main_stat_label"`
	SubStats        []any          `json:"sub_stats"`
	SubStatLabels   []string       `json:"sub_stat_labels"`
	AdditionalStats []any          `json:"additional_stats,omitempty"`
	Raw             map[string]any `json:"raw"`
}

// Item is the canonical item/resource record.
type Item struct {
	ID       ID             `json:"id"`
	Name     string         `json:"name"`
	Quantity any            `json:"quantity,omitempty"`
	Raw      map[string]any `json:"raw"`
}

// Key returns the identity used by deduplicating merges: the id, or the name when absent.
func (c Character) Key() string { return keyOf(c.ID, c.Name) }

// Key returns the identity used by deduplicating merges.
func (w Weapon) Key() string { return keyOf(w.ID, w.Name) }

// Key returns the identity used by deduplicating merges.
func (e Echo) Key() string { return keyOf(e.ID, e.Name) }

// Key returns the identity used by deduplicating merges.
func (i Item) Key() string { return keyOf(i.ID, i.Name) }

func keyOf(id ID, name string) string {
	if !id.IsZero() {
		return "id:" + string(id)
	}
	return "name:" + name
}
