// Package report persists aggregated tables. The pipeline talks to the
// Emitter interface only, so the output medium can change without touching
// the aggregation core.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JerBouma/PersonalFinance/internal/overview"
)

// Emitter receives the aggregator's tables and writes them out.
type Emitter interface {
	EmitOverview(table *overview.Table) error
	EmitTransactions(g overview.Granularity, entries []overview.Entry) error
}

// transactionsHeader is the header of a transactions overview file.
const transactionsHeader = "period,date,source_file,description,amount,category,keyword,certainty,duplicates"

const (
	txNumFields  = 9
	colPeriod    = 0
	colDate      = 1
	colSource    = 2
	colDesc      = 3
	colAmount    = 4
	colCategory  = 5
	colKeyword   = 6
	colCertainty = 7
	colDups      = 8
)

// CSVEmitter writes one CSV file per table under a report directory.
type CSVEmitter struct {
	dir      string
	currency string
}

// NewCSVEmitter creates an emitter rooted at dir. The currency is recorded
// in the overview amount header, display metadata only.
func NewCSVEmitter(dir, currency string) *CSVEmitter {
	return &CSVEmitter{dir: dir, currency: currency}
}

// EmitOverview writes <granularity>_overview.csv: one row per period, one
// column per category with the Totals column leading. Amounts are rendered
// with two decimals at this boundary only.
func (e *CSVEmitter) EmitOverview(table *overview.Table) error {
	return e.write(string(table.Granularity)+"_overview.csv", func(cw *csv.Writer) error {
		header := append([]string{"period"}, table.Categories...)
		if e.currency != "" {
			header[0] = "period (" + e.currency + ")"
		}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}

		for _, period := range table.Periods {
			row := make([]string, 0, len(table.Categories)+1)
			row = append(row, period)
			for _, cat := range table.Categories {
				row = append(row, table.Amount(period, cat).StringFixed(2))
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing period %s: %w", period, err)
			}
		}
		return cw.Error()
	})
}

// EmitTransactions writes <granularity>_transactions.csv: the audit-level
// per-transaction overview with matched category, keyword and certainty.
func (e *CSVEmitter) EmitTransactions(g overview.Granularity, entries []overview.Entry) error {
	return e.write(string(g)+"_transactions.csv", func(cw *csv.Writer) error {
		if err := WriteTransactions(cw, entries); err != nil {
			return err
		}
		return cw.Error()
	})
}

// WriteTransactions writes the transactions overview rows plus header.
func WriteTransactions(cw *csv.Writer, entries []overview.Entry) error {
	if err := cw.Write(strings.Split(transactionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, entry := range entries {
		if err := cw.Write(marshalEntry(entry)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return nil
}

func marshalEntry(entry overview.Entry) []string {
	t := entry.Transaction
	row := make([]string, txNumFields)
	row[colPeriod] = entry.Period
	row[colDate] = t.DateKey()
	row[colSource] = t.SourceFile
	row[colDesc] = t.Description
	row[colAmount] = t.Amount.StringFixed(2)
	row[colCategory] = t.Category
	row[colKeyword] = t.Keyword
	row[colCertainty] = strconv.Itoa(t.Certainty)
	row[colDups] = strconv.Itoa(t.Duplicates)
	return row
}

func (e *CSVEmitter) write(name string, fn func(*csv.Writer) error) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}
	path := filepath.Join(e.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := fn(cw); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
