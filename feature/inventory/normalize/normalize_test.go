package normalize

import (
	"testing"

	"inventory-viewer/feature/inventory/mapping"
	"inventory-viewer/feature/inventory/models"
	"inventory-viewer/feature/inventory/store"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyRegistry(t *testing.T) *mapping.Registry {
	t.Helper()
	reg := mapping.NewRegistry()
	report := reg.Build(mapping.RawSet{
		mapping.SourceCharacters:  map[string]any{"zani": float64(1507)},
		mapping.SourceWeapons:     map[string]any{"verdant_summit": map[string]any{"id": float64(21050066), "rarity": float64(5)}},
		mapping.SourceEchoes:      map[string]any{"crownless": float64(6000052)},
		mapping.SourceSonataNames: map[string]any{"moonlit_clouds": float64(7)},
		mapping.SourceEchoStats:   map[string]any{"crit_rate": "Crit. Rate"},
	})
	require.True(t, report.Ready)
	return reg
}

var ignoreRaw = cmpopts.IgnoreFields(models.Character{}, "Raw")

func TestEntries(t *testing.T) {
	seq := []any{map[string]any{"a": float64(1)}, "skip", map[string]any{"b": float64(2)}}
	entries := Entries(seq, false)
	require.Len(t, entries, 2)
	assert.False(t, entries[0].Keyed)

	keyed := map[string]any{"1507": map[string]any{}, "1207": map[string]any{}, "zaira": map[string]any{}, "x": "skip"}
	entries = Entries(keyed, false)
	var keys []string
	for _, e := range entries {
		assert.True(t, e.Keyed)
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"1207", "1507", "zaira"}, keys)

	wrapped := []any{map[string]any{"21050066": map[string]any{"level": float64(90)}}}
	entries = Entries(wrapped, true)
	require.Len(t, entries, 1)
	assert.Equal(t, "21050066", entries[0].Key)
	assert.Equal(t, float64(90), entries[0].Record["level"])

	// Without unwrapping the wrapper itself is the record.
	entries = Entries(wrapped, false)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Record, "21050066")

	assert.Nil(t, Entries("nope", true))
}

func TestWeapons_SingleKeyWrapped(t *testing.T) {
	payload := []any{map[string]any{"21050066": map[string]any{"level": float64(90), "rank": float64(5)}}}

	got := Weapons(payload, mapping.NewRegistry())
	require.Len(t, got, 1)
	assert.Equal(t, models.ID("21050066"), got[0].ID)
	assert.Equal(t, float64(90), got[0].Level)
	assert.Equal(t, float64(5), got[0].Rarity)
	assert.Equal(t, "21050066", got[0].Name)
}

func TestWeapons_RegistryRarityWins(t *testing.T) {
	reg := readyRegistry(t)
	payload := []any{
		map[string]any{"weaponId": float64(21050066), "Rarity": float64(3), "phase": float64(6)},
		map[string]any{"id": float64(1), "name": "Mystery", "stars": float64(4)},
	}

	got := Weapons(payload, reg)
	require.Len(t, got, 2)
	assert.Equal(t, "Verdant Summit", got[0].Name)
	assert.Equal(t, float64(5), got[0].Rarity)
	assert.Equal(t, float64(6), got[0].Ascension)
	assert.Equal(t, "Mystery", got[1].Name)
	assert.Equal(t, float64(4), got[1].Rarity)
}

func TestWeapons_KeyOutranksIDField(t *testing.T) {
	got := Weapons(map[string]any{"21050066": map[string]any{"id": float64(5)}}, mapping.NewRegistry())
	require.Len(t, got, 1)
	assert.Equal(t, models.ID("21050066"), got[0].ID)
}

func TestCharacters_IDKeyed(t *testing.T) {
	reg := readyRegistry(t)
	payload := map[string]any{
		"1507": map[string]any{
			"lv":     float64(90),
			"weapon": map[string]any{"id": float64(21050066), "level": float64(80)},
			"skills": map[string]any{"forte": float64(10), "normal": float64(8), "bogus": float64(1)},
		},
		"zaira": map[string]any{"name": "Rover", "level": float64(70), "weaponName": "Training Blade"},
	}

	got := Characters(payload, reg)
	want := []models.Character{
		{
			ID:          "1507",
			Name:        "Zani",
			Level:       float64(90),
			WeaponName:  "Verdant Summit",
			WeaponLevel: float64(80),
			Skills: []models.SkillLevel{
				{Slot: "normal", Level: float64(8)},
				{Slot: "forte", Level: float64(10)},
			},
			RawKey: "1507",
			Icon:   "T_IconRoleHead256_38_UI1507.webp",
		},
		{
			Name:       "Rover",
			Level:      float64(70),
			WeaponName: "Training Blade",
			Skills:     []models.SkillLevel{},
			RawKey:     "zaira",
			Icon:       "T_IconRoleHead256_5_UIF1502.webp",
		},
	}
	if diff := cmp.Diff(want, got, ignoreRaw); diff != "" {
		t.Errorf("Characters() mismatch (-want +got):\n%s", diff)
	}
}

func TestCharacters_ExplicitIDOutranksKey(t *testing.T) {
	got := Characters(map[string]any{"1507": map[string]any{"characterId": float64(1205)}}, mapping.NewRegistry())
	require.Len(t, got, 1)
	assert.Equal(t, models.ID("1205"), got[0].ID)
	assert.Equal(t, "1507", got[0].RawKey)
}

func TestCharacters_LevelSynonyms(t *testing.T) {
	reg := mapping.NewRegistry()
	for _, key := range levelKeys {
		got := Characters([]any{map[string]any{"id": float64(1), key: float64(42)}}, reg)
		require.Len(t, got, 1, key)
		assert.Equal(t, float64(42), got[0].Level, key)
	}
}

func TestCharacters_FlatWeaponBeforeRegistry(t *testing.T) {
	payload := []any{map[string]any{"id": float64(1507), "equippedWeaponId": float64(21050066)}}

	got := Characters(payload, mapping.NewRegistry())
	require.Len(t, got, 1)
	assert.Equal(t, "1507", got[0].Name)
	assert.Equal(t, "21050066", got[0].WeaponName)
	assert.Equal(t, "T_IconRoleHead256_38_UI1507.webp", got[0].Icon)
}

func TestEchoes(t *testing.T) {
	reg := readyRegistry(t)
	payload := []any{map[string]any{
		"id":       float64(6000052),
		"set":      float64(7),
		"echoCost": float64(4),
		"mainStat": map[string]any{"name": "crit_rate", "value": float64(22)},
		"subStats": []any{
			"atk_pct",
			map[string]any{"stat": "crit_dmg"},
			map[string]any{"key": "energy_regen"},
			map[string]any{"name": "hp"},
		},
	}}

	got := Echoes(payload, reg)
	require.Len(t, got, 1)
	e := got[0]
	assert.Equal(t, "Crownless", e.Name)
	assert.Equal(t, "Moonlit Clouds", e.Sonata)
	assert.Equal(t, float64(4), e.Cost)
	assert.Equal(t, "Crit. Rate", e.MainStatLabel)
	assert.Len(t, e.SubStats, 4)
	assert.Equal(t, []string{"Atk Pct", "Crit Dmg", "Energy Regen"}, e.SubStatLabels)
	assert.Empty(t, e.AdditionalStats)
}

func TestEchoes_NotReady(t *testing.T) {
	payload := []any{map[string]any{"sonata": float64(7), "mainStat": "critRate"}}

	got := Echoes(payload, mapping.NewRegistry())
	require.Len(t, got, 1)
	assert.True(t, got[0].ID.IsZero())
	assert.Equal(t, "7", got[0].Sonata)
	assert.Equal(t, "Crit Rate", got[0].MainStatLabel)
	assert.Empty(t, got[0].SubStatLabels)
}

func TestItems_QuantitySynonyms(t *testing.T) {
	payload := []any{
		map[string]any{"itemId": float64(1), "qty": float64(3)},
		map[string]any{"id": float64(2), "name": "Shell Credit", "amount": float64(500)},
	}

	got := Items(payload, mapping.NewRegistry())
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Name)
	assert.Equal(t, float64(3), got[0].Quantity)
	assert.Equal(t, "Shell Credit", got[1].Name)
	assert.Equal(t, float64(500), got[1].Quantity)
}

func TestRescue(t *testing.T) {
	assert.True(t, Rescue([]any{map[string]any{"x": 1}, map[string]any{"quantity": 1}, map[string]any{"count": 2}}))
	assert.False(t, Rescue([]any{map[string]any{"x": 1}, map[string]any{"quantity": 1}}))
	assert.False(t, Rescue([]any{}))
	assert.False(t, Rescue("nope"))
}

func TestIngest_NoDedupDuplicates(t *testing.T) {
	st := store.New()
	reg := mapping.NewRegistry()
	doc := Document{
		Name:    "characters.json",
		Payload: []any{map[string]any{"name": "Zani", "level": float64(90)}, map[string]any{"name": "Lupa", "level": float64(80)}},
	}

	Ingest(st, reg, []Document{doc})
	res := Ingest(st, reg, []Document{doc})

	assert.Equal(t, []Result{{Name: "characters.json", Category: models.Characters, Added: 2}}, res)
	assert.Equal(t, 4, st.Counts().Characters)
}

func TestIngest_Dedup(t *testing.T) {
	st := store.New(store.WithDedup())
	doc := Document{Name: "w.json", Payload: []any{map[string]any{"id": float64(1), "rank": float64(5), "name": "A"}}}

	Ingest(st, mapping.NewRegistry(), []Document{doc, doc})
	assert.Equal(t, 1, st.Counts().Weapons)
}

func TestIngest_Classification(t *testing.T) {
	st := store.New()
	reg := mapping.NewRegistry()
	docs := []Document{
		{Name: "weapons_wuwainventorykamera.json", Payload: []any{}},
		{Name: "misc.json", Payload: []any{map[string]any{"x": 1}, map[string]any{"quantity": 1}, map[string]any{"count": 2}}},
		{Name: "junk.json", Payload: []any{map[string]any{"x": 1}}},
		{Name: "my_echo_dump.json", Payload: []any{map[string]any{"x": 1}}},
		{Name: "forced.json", Payload: []any{map[string]any{"x": 1}}, Category: models.Items},
		{Name: "resources.json", Payload: []any{map[string]any{"count": 3}}},
	}

	res := Ingest(st, reg, docs)
	want := []Result{
		{Name: "weapons_wuwainventorykamera.json", Category: models.Weapons},
		{Name: "misc.json", Category: models.Items, Added: 3, Rescued: true},
		{Name: "junk.json", Category: models.Unknown},
		{Name: "my_echo_dump.json", Category: models.Echoes, Added: 1},
		{Name: "forced.json", Category: models.Items, Added: 1},
		{Name: "resources.json", Category: models.Items, Added: 1},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Ingest() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, store.Counts{Echoes: 1, Items: 5}, st.Counts())
}
