package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `Date,Name,Amount
12-09-2023,Albert Heijn,"45,32"
13-09-2023,Spotify AB,"10,99"
`

func TestRead(t *testing.T) {
	ds, err := Read(strings.NewReader(testCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Name", "Amount"}, ds.Columns)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "45,32", ds.Rows[0][2])
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestRead_InconsistentFieldCount(t *testing.T) {
	_, err := Read(strings.NewReader("a,b,c\n1,2\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "export.csv", ds.File)
	assert.Equal(t, path, ds.Path)
	assert.Len(t, ds.Rows, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestResolve_Directory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o644))
	}

	files, err := Resolve([]string{dir})
	require.NoError(t, err)

	// Name order, non-CSV entries skipped.
	require.Len(t, files, 2)
	assert.Equal(t, "a.csv", filepath.Base(files[0]))
	assert.Equal(t, "b.csv", filepath.Base(files[1]))
}

func TestResolve_MixedFileAndDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "exports")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "a.csv"), []byte("x\n"), 0o644))
	single := filepath.Join(dir, "single.csv")
	require.NoError(t, os.WriteFile(single, []byte("x\n"), 0o644))

	files, err := Resolve([]string{single, sub})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, single, files[0])
}

func TestResolve_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Resolve([]string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestResolve_NothingFound(t *testing.T) {
	_, err := Resolve([]string{t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CSV files")
}
