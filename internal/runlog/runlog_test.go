package runlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2023, 10, 1, 9, 15, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		RunID:             "2f6c9f9e-9a58-4f91-b1a5-13a79cf61f3d",
		Timestamp:         testTime,
		ConfigPath:        "cashflow.yaml",
		Files:             2,
		Rows:              31,
		RowsSkipped:       1,
		DuplicatesDropped: 2,
		CategorizedPct:    93.55,
		Elapsed:           420 * time.Millisecond,
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, testEntry()))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 31, entries[0].Rows)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, testEntry()))

	e2 := testEntry()
	e2.RunID = "second"
	require.NoError(t, Append(dir, e2))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[1].RunID)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEntry()
	require.NoError(t, Append(dir, original))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, original.RunID, got.RunID)
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.ConfigPath, got.ConfigPath)
	assert.Equal(t, original.Files, got.Files)
	assert.Equal(t, original.Rows, got.Rows)
	assert.Equal(t, original.RowsSkipped, got.RowsSkipped)
	assert.Equal(t, original.DuplicatesDropped, got.DuplicatesDropped)
	assert.InDelta(t, original.CategorizedPct, got.CategorizedPct, 0.001)
	assert.Equal(t, original.Elapsed, got.Elapsed)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs", "runs.csv"), []byte(Header+"\n"), 0o644))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestMarshalUnmarshal(t *testing.T) {
	e := testEntry()
	row := MarshalEntry(e)
	require.Len(t, row, numFields)
	assert.Equal(t, "2023-10-01T09:15:00Z", row[colTimestamp])
	assert.Equal(t, "93.55", row[colPct])
	assert.Equal(t, "420", row[colElapsed])

	got, err := UnmarshalEntry(row)
	require.NoError(t, err)
	assert.Equal(t, e.RunID, got.RunID)
	assert.Equal(t, e.Elapsed, got.Elapsed)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 9 fields")
}
