// Package runlog keeps an append-only audit log of pipeline runs, one CSV
// row per invocation. It exists for diagnosing categorization drift between
// runs; failures to write it never fail a run.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the run log.
type Entry struct {
	RunID             string // uuid, correlates log lines of one invocation
	Timestamp         time.Time
	ConfigPath        string
	Files             int
	Rows              int
	RowsSkipped       int
	DuplicatesDropped int
	CategorizedPct    float64
	Elapsed           time.Duration
}

// Header is the CSV header for runs.csv.
const Header = "run_id,timestamp,config,files,rows,rows_skipped,duplicates_dropped,categorized_pct,elapsed_ms"

const (
	numFields     = 9
	logDir        = "logs"
	logFile       = "logs/runs.csv"
	colRunID      = 0
	colTimestamp  = 1
	colConfig     = 2
	colFiles      = 3
	colRows       = 4
	colSkipped    = 5
	colDuplicates = 6
	colPct        = 7
	colElapsed    = 8
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colRunID] = e.RunID
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colConfig] = e.ConfigPath
	row[colFiles] = strconv.Itoa(e.Files)
	row[colRows] = strconv.Itoa(e.Rows)
	row[colSkipped] = strconv.Itoa(e.RowsSkipped)
	row[colDuplicates] = strconv.Itoa(e.DuplicatesDropped)
	row[colPct] = strconv.FormatFloat(e.CategorizedPct, 'f', 2, 64)
	row[colElapsed] = strconv.FormatInt(e.Elapsed.Milliseconds(), 10)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	files, err := strconv.Atoi(record[colFiles])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing files %q: %w", record[colFiles], err)
	}
	rows, err := strconv.Atoi(record[colRows])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing rows %q: %w", record[colRows], err)
	}
	skipped, err := strconv.Atoi(record[colSkipped])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing rows_skipped %q: %w", record[colSkipped], err)
	}
	dups, err := strconv.Atoi(record[colDuplicates])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing duplicates_dropped %q: %w", record[colDuplicates], err)
	}
	pct, err := strconv.ParseFloat(record[colPct], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing categorized_pct %q: %w", record[colPct], err)
	}
	elapsedMs, err := strconv.ParseInt(record[colElapsed], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing elapsed_ms %q: %w", record[colElapsed], err)
	}

	return Entry{
		RunID:             record[colRunID],
		Timestamp:         ts,
		ConfigPath:        record[colConfig],
		Files:             files,
		Rows:              rows,
		RowsSkipped:       skipped,
		DuplicatesDropped: dups,
		CategorizedPct:    pct,
		Elapsed:           time.Duration(elapsedMs) * time.Millisecond,
	}, nil
}

// Append writes an entry to <root>/logs/runs.csv, creating the file and
// header if needed.
func Append(root string, e Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := cw.Write(MarshalEntry(e)); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}
	return cw.Error()
}

// Read returns all entries from <root>/logs/runs.csv, or nil if the file
// does not exist.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(root, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
