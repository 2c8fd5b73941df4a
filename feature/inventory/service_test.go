package inventory

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"inventory-viewer/core/storage/mocks"
	"inventory-viewer/feature/inventory/mapping"
	"inventory-viewer/feature/inventory/models"
	"inventory-viewer/feature/inventory/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	charactersJSON = `{"1507": {"level": 90, "weapon": {"id": 21050066, "level": 90}}, "1207": {"level": 80}}`
	weaponsJSON    = `[{"21050066": {"level": 90, "rank": 5}}]`
	echoesJSON     = `[{"id": 6000052, "sonata": 7, "cost": 4, "mainStat": "crit_rate"}]`
	inventoryJSON  = `[{"id": 2, "quantity": 500}, {"id": 3, "count": 12}]`
)

func newTestService(t *testing.T, cfg Config, provider mapping.Provider) *Service {
	t.Helper()
	return NewService(cfg, provider, zap.NewNop())
}

func writeMappingDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"characters.json": `{"zani": 1507, "lupa": 1207}`,
		"weapons.json":    `{"verdant_summit": {"id": 21050066, "rarity": 5}}`,
		"sonataName.json": `{"moonlit_clouds": 7}`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}
	return root
}

func TestService_IngestFiles(t *testing.T) {
	svc := newTestService(t, Config{ParseWorkers: 2}, nil)

	report := svc.IngestFiles(context.Background(), []File{
		{Name: "characters_wuwainventorykamera.json", Data: []byte(charactersJSON)},
		{Name: "broken.json", Data: []byte(`{"oops"`)},
		{Name: "weapons.json", Data: []byte(weaponsJSON)},
		{Name: "echoes.json", Data: []byte(echoesJSON)},
		{Name: "inventory.json", Data: []byte(inventoryJSON)},
		{Name: "notes.json", Data: []byte(`{"hello": "world"}`)},
	})

	require.Len(t, report.Files, 6)
	assert.Equal(t, FileReport{Name: "characters_wuwainventorykamera.json", Category: models.Characters, Added: 2}, report.Files[0])
	assert.Equal(t, "broken.json", report.Files[1].Name)
	assert.NotEmpty(t, report.Files[1].Error)
	assert.Equal(t, models.Weapons, report.Files[2].Category)
	assert.Equal(t, models.Echoes, report.Files[3].Category)
	assert.Equal(t, models.Items, report.Files[4].Category)
	assert.Equal(t, FileReport{Name: "notes.json", Category: models.Unknown}, report.Files[5])
	assert.Equal(t, store.Counts{Characters: 2, Weapons: 1, Echoes: 1, Items: 2}, report.Counts)

	snap := svc.Snapshot()
	require.Len(t, snap.Weapons, 1)
	assert.Equal(t, models.ID("21050066"), snap.Weapons[0].ID)
	assert.Equal(t, float64(5), snap.Weapons[0].Rarity)
}

func TestService_RepeatedIngestDuplicates(t *testing.T) {
	svc := newTestService(t, Config{}, nil)
	files := []File{{Name: "characters.json", Data: []byte(charactersJSON)}}

	svc.IngestFiles(context.Background(), files)
	svc.IngestFiles(context.Background(), files)
	assert.Equal(t, 4, svc.Counts().Characters)
}

func TestService_Dedup(t *testing.T) {
	svc := newTestService(t, Config{Dedup: true}, nil)
	files := []File{{Name: "characters.json", Data: []byte(charactersJSON)}}

	svc.IngestFiles(context.Background(), files)
	report := svc.IngestFiles(context.Background(), files)
	assert.Equal(t, 0, report.Files[0].Added)
	assert.Equal(t, 2, svc.Counts().Characters)
}

func TestService_CanceledContext(t *testing.T) {
	svc := newTestService(t, Config{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := svc.IngestFiles(ctx, []File{{Name: "characters.json", Data: []byte(charactersJSON)}})
	assert.NotEmpty(t, report.Files[0].Error)
	assert.Equal(t, store.Counts{}, report.Counts)
}

func TestService_LoadMapping(t *testing.T) {
	svc := newTestService(t, Config{}, mapping.NewDirProvider(writeMappingDir(t)))
	assert.False(t, svc.MappingStatus().Ready)

	report, err := svc.LoadMapping(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Build.Ready)
	assert.Equal(t, 2, report.Build.Added[mapping.SourceCharacters])

	svc.IngestFiles(context.Background(), []File{
		{Name: "characters.json", Data: []byte(charactersJSON)},
		{Name: "echoes.json", Data: []byte(echoesJSON)},
	})
	snap := svc.Snapshot()
	require.Len(t, snap.Characters, 2)
	assert.Equal(t, "Lupa", snap.Characters[0].Name)
	assert.Equal(t, "Zani", snap.Characters[1].Name)
	assert.Equal(t, "Verdant Summit", snap.Characters[1].WeaponName)
	require.Len(t, snap.Echoes, 1)
	assert.Equal(t, "Moonlit Clouds", snap.Echoes[0].Sonata)
}

func TestService_LoadMapping_NoSource(t *testing.T) {
	svc := newTestService(t, Config{}, nil)
	_, err := svc.LoadMapping(context.Background())
	assert.ErrorIs(t, err, ErrNoMappingSource)
}

func TestService_LoadMapping_BucketUnavailable(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "mappings").Return(false, assert.AnError)

	svc := newTestService(t, Config{}, mapping.NewBucketProvider(client, "mappings", ""))
	_, err := svc.LoadMapping(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, svc.MappingStatus().Ready)
}

func TestService_UploadMapping(t *testing.T) {
	svc := newTestService(t, Config{}, nil)

	report := svc.UploadMapping(context.Background(), []File{
		{Name: "characters.json", Data: []byte(`{"zani": 1507}`)},
		{Name: "more_characters.json", Data: []byte(`{"lupa": 1207}`)},
		{Name: "echoes.json", Data: []byte(`{`)},
		{Name: "readme.txt", Data: []byte(`hi`)},
	})

	assert.True(t, report.Build.Ready)
	assert.Equal(t, 2, report.Build.Added[mapping.SourceCharacters])
	assert.Contains(t, report.Failed, "echoes.json")
	assert.Equal(t, []string{"readme.txt"}, report.Ignored)
	assert.Equal(t, 2, svc.MappingStatus().Characters)
}

func TestService_ResetAndRecords(t *testing.T) {
	svc := newTestService(t, Config{}, mapping.NewDirProvider(writeMappingDir(t)))
	_, err := svc.LoadMapping(context.Background())
	require.NoError(t, err)
	svc.IngestFiles(context.Background(), []File{
		{Name: "characters.json", Data: []byte(charactersJSON)},
		{Name: "inventory.json", Data: []byte(inventoryJSON)},
	})

	recs, err := svc.Records(models.Characters, "zan")
	require.NoError(t, err)
	chars := recs.([]models.Character)
	require.Len(t, chars, 1)
	assert.Equal(t, "Zani", chars[0].Name)

	recs, err = svc.Records(models.Characters, "1207")
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	_, err = svc.Records(models.Unknown, "")
	assert.Error(t, err)

	require.NoError(t, svc.ResetCategory(models.Items))
	assert.Equal(t, store.Counts{Characters: 2}, svc.Counts())
	assert.Error(t, svc.ResetCategory(models.Unknown))

	svc.Reset()
	assert.Equal(t, store.Counts{}, svc.Counts())
}

func TestService_EmptyCollectionsEncodeAsArrays(t *testing.T) {
	svc := newTestService(t, Config{}, nil)

	data, err := json.Marshal(svc.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"characters": [], "weapons": [], "echoes": [], "items": [],
		"counts": {"characters": 0, "weapons": 0, "echoes": 0, "items": 0}
	}`, string(data))

	recs, err := svc.Records(models.Characters, "")
	require.NoError(t, err)
	data, err = json.Marshal(recs)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	// A filter that matches nothing is still an empty array.
	svc.IngestFiles(context.Background(), []File{{Name: "inventory.json", Data: []byte(inventoryJSON)}})
	recs, err = svc.Records(models.Items, "no such item")
	require.NoError(t, err)
	data, err = json.Marshal(recs)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
