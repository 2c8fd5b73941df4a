package mapping

import (
	"testing"

	"inventory-viewer/feature/inventory/models"

	"github.com/stretchr/testify/assert"
)

func TestResolve_NotReady(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Ready())
	assert.Equal(t, 1507, r.Resolve(models.Characters, 1507, NoNamespace))
	assert.Equal(t, "1507", r.Resolve(models.Characters, "1507", NoNamespace))

	name, ok := r.ResolveName(models.Characters, float64(1507), NoNamespace)
	assert.False(t, ok)
	assert.Equal(t, "1507", name)
}

func TestResolve_Characters(t *testing.T) {
	r := NewRegistry()
	report := r.Build(RawSet{SourceCharacters: map[string]any{"zani": float64(1507)}})

	assert.True(t, report.Ready)
	assert.Equal(t, 1, report.Added[SourceCharacters])
	assert.True(t, r.Ready())
	assert.Equal(t, "Zani", r.Resolve(models.Characters, 1507, NoNamespace))
	assert.Equal(t, "Zani", r.Resolve(models.Characters, "1507", NoNamespace))
	assert.Equal(t, 9999, r.Resolve(models.Characters, 9999, NoNamespace))
	assert.Equal(t, "zani", r.Resolve(models.Characters, "zani", NoNamespace))
}

func TestResolve_SonataNamespace(t *testing.T) {
	r := NewRegistry()
	r.Build(RawSet{
		SourceEchoes:      map[string]any{"crownless": float64(7)},
		SourceSonataNames: map[string]any{"moonlit_clouds": float64(7)},
	})

	assert.Equal(t, "Crownless", r.Resolve(models.Echoes, 7, NoNamespace))
	assert.Equal(t, "Moonlit Clouds", r.Resolve(models.Echoes, 7, Sonata))
	// The namespace only applies to echoes.
	assert.Equal(t, 7, r.Resolve(models.Characters, 7, Sonata))
}

func TestBuild_Weapons(t *testing.T) {
	r := NewRegistry()
	r.Build(RawSet{SourceWeapons: map[string]any{
		"verdant_summit": map[string]any{"id": float64(21050066), "rarity": float64(5)},
		"named":          map[string]any{"id": "21010011", "name": "Training Blade"},
		"no_id":          map[string]any{"name": "Ghost"},
		"bad":            "not-an-object",
	}})

	assert.Equal(t, "Verdant Summit", r.Resolve(models.Weapons, 21050066, NoNamespace))
	assert.Equal(t, "Training Blade", r.Resolve(models.Weapons, 21010011, NoNamespace))

	rarity, ok := r.Rarity("21050066")
	assert.True(t, ok)
	assert.Equal(t, float64(5), rarity)

	_, ok = r.Rarity("21010011")
	assert.False(t, ok)
	assert.Equal(t, 2, r.Status().Weapons)
}

func TestBuild_Items(t *testing.T) {
	r := NewRegistry()
	report := r.Build(RawSet{SourceItems: map[string]any{
		"shell_credit": map[string]any{"id": float64(2)},
		"astrite":      map[string]any{"id": float64(3), "name": "Astrite"},
		"broken":       map[string]any{"name": "No Id"},
	}})

	assert.Equal(t, 2, report.Added[SourceItems])
	assert.Equal(t, "Shell Credit", r.Resolve(models.Items, 2, NoNamespace))
	assert.Equal(t, "Astrite", r.Resolve(models.Items, 3, NoNamespace))
}

func TestBuild_EchoStats(t *testing.T) {
	r := NewRegistry()
	r.Build(RawSet{SourceEchoStats: map[string]any{"critRate": "Crit. Rate"}})

	assert.Equal(t, "Crit. Rate", r.StatLabel("critRate"))
	assert.Equal(t, "Energy Regen", r.StatLabel("energy_regen"))
}

func TestBuild_Merges(t *testing.T) {
	r := NewRegistry()
	r.Build(RawSet{SourceCharacters: map[string]any{"zani": float64(1507), "lupa": float64(1207)}})
	r.Build(RawSet{SourceCharacters: map[string]any{"zani_v2": float64(1507)}})

	assert.Equal(t, "Zani V 2", r.Resolve(models.Characters, 1507, NoNamespace))
	assert.Equal(t, "Lupa", r.Resolve(models.Characters, 1207, NoNamespace))
}

func TestBuild_EmptyDoesNotMakeReady(t *testing.T) {
	r := NewRegistry()
	report := r.Build(RawSet{
		SourceCharacters: map[string]any{"bad": "x"},
		SourceWeapons:    []any{},
	})
	assert.False(t, report.Ready)
	assert.Empty(t, report.Added)
	assert.False(t, r.Ready())
}

func TestBuild_Icons(t *testing.T) {
	r := NewRegistry()

	builtin, ok := r.Icon("1507")
	assert.True(t, ok)
	assert.Equal(t, "T_IconRoleHead256_38_UI1507.webp", builtin)

	report := r.Build(RawSet{SourceCharacterIcons: map[string]any{"files": []any{
		"Images/CharacterIcons/T_IconRoleHead256_99_UI1507.webp",
		`C:\icons\T_IconRoleHead256_50_UI1508.WEBP`,
		"T_IconRoleHead256_1_UI15070.webp",
		"readme.txt",
		float64(3),
	}}})
	assert.Equal(t, 2, report.Added[SourceCharacterIcons])

	// The built-in entry wins on collision.
	icon, _ := r.Icon("1507")
	assert.Equal(t, "T_IconRoleHead256_38_UI1507.webp", icon)

	// Ids without a built-in entry keep the manifest file.
	icon, ok = r.Icon("1508")
	assert.True(t, ok)
	assert.Equal(t, "T_IconRoleHead256_50_UI1508.WEBP", icon)

	icon, ok = r.Icon("zaira")
	assert.True(t, ok)
	assert.Equal(t, "T_IconRoleHead256_5_UIF1502.webp", icon)
}

func TestBuild_IconArray(t *testing.T) {
	r := NewRegistry()
	r.Build(RawSet{SourceCharacterIcons: []any{"T_IconRoleHead256_9_UI1701.webp"}})

	icon, ok := r.Icon("1701")
	assert.True(t, ok)
	assert.Equal(t, "T_IconRoleHead256_9_UI1701.webp", icon)
	assert.True(t, r.Ready())
}

func TestIDForName(t *testing.T) {
	r := NewRegistry()
	r.Build(RawSet{SourceCharacters: map[string]any{"zani": float64(1507)}})

	id, ok := r.IDForName(models.Characters, "Zani")
	assert.True(t, ok)
	assert.Equal(t, int64(1507), id)

	_, ok = r.IDForName(models.Characters, "Nobody")
	assert.False(t, ok)
}

func TestClassifyFilename(t *testing.T) {
	tests := []struct {
		name   string
		want   Source
		wantOK bool
	}{
		{"characters.json", SourceCharacters, true},
		{"CharacterIconsManifest.json", SourceCharacterIcons, true},
		{"weapons.json", SourceWeapons, true},
		{"echoStats.json", SourceEchoStats, true},
		{"echoes.json", SourceEchoes, true},
		{"sonataName.json", SourceSonataNames, true},
		{"items.json", SourceItems, true},
		{"resources.json", SourceItems, true},
		{"achievements.json", "", false},
		{"itemInfo.json", "", false},
		{"random.json", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyFilename(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
