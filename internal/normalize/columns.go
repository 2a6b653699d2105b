// Package normalize turns raw dataset rows into canonical transactions. It
// resolves each dataset's arbitrary column headers onto the configured
// canonical fields, then parses dates, amounts and sign indicators.
package normalize

import (
	"fmt"
	"strings"

	"github.com/JerBouma/PersonalFinance/internal/config"
)

// Fields holds the resolved column indexes for one dataset. Header matching
// is case-insensitive; indexes refer to the dataset's column order.
type Fields struct {
	Date   int // index of the resolved date column
	Amount int // index of the resolved amount column

	// Description indexes in candidate order; empty when no description
	// candidate is present (rows then normalize to an empty description).
	Description []int

	// Sign is the resolved sign-indicator column, -1 when none applies.
	Sign        int
	Multipliers map[string]int
}

// ResolveColumns maps a dataset's headers onto the canonical fields using
// the configured candidate lists. Date and amount take the first candidate
// present and their absence is a configuration error; description takes
// every candidate present.
func ResolveColumns(columns []string, g config.GeneralConfig) (Fields, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		key := strings.ToLower(strings.TrimSpace(col))
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	fields := Fields{Sign: -1}

	var ok bool
	if fields.Date, ok = firstMatch(index, g.DateColumns); !ok {
		return Fields{}, fmt.Errorf("no date column found among candidates %v; set general.date_columns in the configuration", g.DateColumns)
	}
	if fields.Amount, ok = firstMatch(index, g.AmountColumns); !ok {
		return Fields{}, fmt.Errorf("no amount column found among candidates %v; set general.amount_columns in the configuration", g.AmountColumns)
	}

	for _, cand := range g.DescriptionColumns {
		if i, found := index[strings.ToLower(cand)]; found {
			fields.Description = append(fields.Description, i)
		}
	}

	for _, sc := range g.CostOrIncomeColumns.Entries() {
		if i, found := index[strings.ToLower(sc.Column)]; found {
			fields.Sign = i
			fields.Multipliers = sc.Multipliers
			break
		}
	}

	return fields, nil
}

func firstMatch(index map[string]int, candidates []string) (int, bool) {
	for _, cand := range candidates {
		if i, ok := index[strings.ToLower(cand)]; ok {
			return i, true
		}
	}
	return 0, false
}
