package overview

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JerBouma/PersonalFinance/internal/config"
	"github.com/JerBouma/PersonalFinance/internal/model"
)

// TotalsColumn is the derived column summing all non-excluded categories.
const TotalsColumn = "Totals"

// Table is a period overview: summed amounts per (period, category) plus
// the derived Totals column. Periods are chronological; categories follow
// the table's declaration order with "Other" appended and Totals leading.
type Table struct {
	Granularity Granularity
	Periods     []string
	Categories  []string // TotalsColumn first, then declared order, then Other
	cells       map[string]map[string]decimal.Decimal
}

// Amount returns the summed amount for a (period, category) cell, zero when
// the bucket is empty.
func (t *Table) Amount(period, category string) decimal.Decimal {
	return t.cells[period][category]
}

// Build aggregates categorized, deduplicated transactions into a period
// overview. Summation is exact decimal addition; categories listed in
// exclusions keep their own column but stay out of Totals, so transfer-like
// categories never distort the net total.
func Build(txns []model.Transaction, g Granularity, categories config.CategoryTable, exclusions []string) *Table {
	excluded := make(map[string]bool, len(exclusions))
	for _, e := range exclusions {
		excluded[e] = true
	}

	table := &Table{
		Granularity: g,
		Categories:  append([]string{TotalsColumn}, append(categories.Names(), model.CategoryOther)...),
		cells:       make(map[string]map[string]decimal.Decimal),
	}

	starts := make(map[string]time.Time)
	for _, t := range txns {
		label := g.BucketLabel(t.Date)
		row, ok := table.cells[label]
		if !ok {
			row = make(map[string]decimal.Decimal)
			table.cells[label] = row
			starts[label] = g.bucketStart(t.Date)
			table.Periods = append(table.Periods, label)
		}
		row[t.Category] = row[t.Category].Add(t.Amount)
		if !excluded[t.Category] {
			row[TotalsColumn] = row[TotalsColumn].Add(t.Amount)
		}
	}

	sort.Slice(table.Periods, func(i, j int) bool {
		return starts[table.Periods[i]].Before(starts[table.Periods[j]])
	})
	return table
}

// Entry is one row of the per-transaction overview: a transaction annotated
// with its period bucket.
type Entry struct {
	Period      string
	Transaction model.Transaction
}

// Transactions builds the ungrouped per-transaction overview: every
// transaction with its period label, sorted by date (stable, so input order
// breaks date ties). Category, keyword and certainty ride along on the
// transaction for auditing.
func Transactions(txns []model.Transaction, g Granularity) []Entry {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	entries := make([]Entry, len(sorted))
	for i, t := range sorted {
		entries[i] = Entry{Period: g.BucketLabel(t.Date), Transaction: t}
	}
	return entries
}
