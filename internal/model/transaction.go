package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryOther is the reserved bucket for transactions whose best keyword
// match stays below the categorization threshold. It may not be declared as
// a category in the configuration.
const CategoryOther = "Other"

// Transaction is the canonical record every source row is normalized onto.
type Transaction struct {
	Date        time.Time
	Description string          // resolved description columns, space-joined
	Amount      decimal.Decimal // signed; negative = cost, positive = income
	SourceFile  string          // originating file, for dedup tie-breaks and diagnostics

	// Filled in by the category matcher.
	Category  string
	Keyword   string // empty when uncategorized
	Certainty int    // 0-100 similarity of the best keyword match

	// Filled in by the deduplicator: number of identical (date, description,
	// amount) rows within the same source file, 1 for a unique row.
	Duplicates int
}

// DateKey returns the calendar-date part of the transaction used in
// duplicate keys and report output.
func (t Transaction) DateKey() string {
	return t.Date.Format("2006-01-02")
}

// SameTriple reports whether two transactions carry the identical
// (date, description, amount) triple. Duplicate detection is exact on
// purpose; the fuzzy matcher plays no part in it.
func (t Transaction) SameTriple(o Transaction) bool {
	return t.Date.Equal(o.Date) && t.Description == o.Description && t.Amount.Equal(o.Amount)
}
