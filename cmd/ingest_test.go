package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestCmd_JSON(t *testing.T) {
	t.Setenv("MAPPING_SOURCE", "none")
	t.Setenv("LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "echoes_wuwainventorykamera.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"sonata": 7, "mainStat": "crit_rate"}]`), 0o644))

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"ingest", "--json", path})
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})

	require.NoError(t, RootCmd.Execute())

	var snap struct {
		Echoes []map[string]any `json:"echoes"`
		Counts map[string]int   `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	require.Len(t, snap.Echoes, 1)
	assert.Equal(t, "Crit Rate", snap.Echoes[0]["main_stat_label"])
	assert.Equal(t, 1, snap.Counts["echoes"])
}

func TestIngestCmd_RequiresFiles(t *testing.T) {
	RootCmd.SetArgs([]string{"ingest"})
	t.Cleanup(func() { RootCmd.SetArgs(nil) })

	assert.Error(t, RootCmd.Execute())
}
