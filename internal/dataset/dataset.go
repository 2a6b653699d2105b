// Package dataset loads bank export files into raw, untyped tables. Column
// meaning is resolved later against the configured candidates, so a Dataset
// keeps headers exactly as the bank wrote them.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Dataset is one loaded source file: arbitrary string column headers plus
// row-major cell values.
type Dataset struct {
	File    string // base name, used as the transaction source identifier
	Path    string
	Columns []string
	Rows    [][]string
}

// Load reads a CSV export into a Dataset. The first record is the header
// row; every data row must have the same number of fields.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	ds.File = filepath.Base(path)
	ds.Path = path
	return ds, nil
}

// Read parses CSV content into a Dataset without file metadata.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	return &Dataset{Columns: records[0], Rows: records[1:]}, nil
}

// Resolve expands the configured file locations into the ordered list of
// CSV files to load. Directories contribute their .csv entries in name
// order; explicit files must be CSVs. The order is stable and drives the
// deduplicator's which-copy-survives tie-break.
func Resolve(locations []string) ([]string, error) {
	var files []string
	for _, loc := range locations {
		info, err := os.Stat(loc)
		if err != nil {
			return nil, fmt.Errorf("locating %s: %w", loc, err)
		}

		if !info.IsDir() {
			if !isCSV(loc) {
				return nil, fmt.Errorf("file type of %s not supported, use .csv", loc)
			}
			files = append(files, loc)
			continue
		}

		entries, err := os.ReadDir(loc)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", loc, err)
		}
		for _, e := range entries {
			if e.IsDir() || !isCSV(e.Name()) {
				continue
			}
			files = append(files, filepath.Join(loc, e.Name()))
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no CSV files found within %v", locations)
	}
	return files, nil
}

func isCSV(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".csv")
}
