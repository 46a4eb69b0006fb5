package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fileshred/internal/config"
)

func TestRecordUpdatesSummary(t *testing.T) {
	run := NewRun("test", false)

	run.Record(FileOutcome{Path: "a", Status: "SHREDDED", BytesWritten: 100})
	run.Record(FileOutcome{Path: "b", Status: "KEPT", BytesWritten: 50})
	run.Record(FileOutcome{Path: "c", Status: "FAILED"})
	run.Record(FileOutcome{Path: "d", Status: "SKIPPED"})

	assert.Equal(t, 4, run.Summary.Total)
	assert.Equal(t, 1, run.Summary.Shredded)
	assert.Equal(t, 1, run.Summary.Kept)
	assert.Equal(t, 1, run.Summary.Failed)
	assert.Equal(t, 1, run.Summary.Skipped)
	assert.Equal(t, int64(150), run.Summary.TotalBytes)
}

func TestFatalFlag(t *testing.T) {
	run := NewRun("test", false)
	assert.False(t, run.Fatal())
	run.SetFatal()
	assert.True(t, run.Fatal())
}

func TestRunIDUnique(t *testing.T) {
	assert.NotEqual(t, NewRun("test", false).ID, NewRun("test", false).ID)
}

func TestSaveWritesReport(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Reporting.Enabled = true
	cfg.Reporting.LocalPath = dir

	run := NewRun("test", false)
	run.Record(FileOutcome{Path: "a", Status: "SHREDDED"})
	run.Finish()

	require.NoError(t, Save(run, cfg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, run.ID, decoded["run_id"])
}

func TestSaveDisabledIsNoop(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Reporting.Enabled = false
	cfg.Reporting.LocalPath = dir

	require.NoError(t, Save(NewRun("test", false), cfg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
