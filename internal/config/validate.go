package config

import (
	"fmt"
	"strings"

	"github.com/JerBouma/PersonalFinance/internal/model"
)

// knownOverviews are the period granularities a report can contain.
var knownOverviews = map[string]bool{
	"daily":     true,
	"weekly":    true,
	"monthly":   true,
	"quarterly": true,
	"yearly":    true,
}

// Validate checks the configuration eagerly so matching and aggregation
// never fail lazily on a malformed table. Configuration errors are fatal:
// the run must abort before any output is produced.
func (c *Config) Validate() error {
	g := c.General

	if len(g.DateColumns) == 0 {
		return fmt.Errorf("general.date_columns: at least one candidate column is required")
	}
	if len(g.AmountColumns) == 0 {
		return fmt.Errorf("general.amount_columns: at least one candidate column is required")
	}
	if g.DateFormat == "" {
		return fmt.Errorf("general.date_format: a date layout is required")
	}
	if g.DecimalSeparator != "," && g.DecimalSeparator != "." {
		return fmt.Errorf("general.decimal_separator: %q is not supported, use \",\" or \".\"", g.DecimalSeparator)
	}
	if g.CategorizationThreshold < 0 || g.CategorizationThreshold > 100 {
		return fmt.Errorf("general.categorization_threshold: %d is outside [0, 100]", g.CategorizationThreshold)
	}

	if c.Categories.Len() == 0 {
		return fmt.Errorf("categories: at least one category is required")
	}
	seen := make(map[string]bool)
	for _, e := range c.Categories.Entries() {
		if e.Name == model.CategoryOther {
			return fmt.Errorf("categories: %q is reserved for uncategorized transactions", model.CategoryOther)
		}
		if seen[e.Name] {
			return fmt.Errorf("categories: duplicate category %q", e.Name)
		}
		seen[e.Name] = true
		if len(e.Keywords) == 0 {
			return fmt.Errorf("categories: %s: keyword list is empty", e.Name)
		}
		for _, kw := range e.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("categories: %s: empty keyword", e.Name)
			}
		}
	}

	for _, excl := range g.CategoryExclusions {
		if excl != model.CategoryOther && !seen[excl] {
			return fmt.Errorf("general.category_exclusions: %q is not a declared category", excl)
		}
	}

	for _, sc := range g.CostOrIncomeColumns.Entries() {
		if len(sc.Multipliers) == 0 {
			return fmt.Errorf("general.cost_or_income_columns: %s: multiplier table is empty", sc.Column)
		}
	}

	for _, o := range c.Report.Overviews {
		if !knownOverviews[strings.ToLower(o)] {
			return fmt.Errorf("report.overviews: unknown period %q", o)
		}
	}

	return nil
}
