package normalize

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/JerBouma/PersonalFinance/internal/config"
	"github.com/JerBouma/PersonalFinance/internal/dataset"
	"github.com/JerBouma/PersonalFinance/internal/model"
)

// Result carries the normalized transactions of one dataset plus the number
// of rows excluded by row-level parse failures.
type Result struct {
	Transactions []model.Transaction
	Skipped      int
}

// Rows normalizes every row of a dataset into canonical transactions.
// Row-level failures (unparseable date or amount) exclude the row and log a
// diagnostic with file, row index and raw value; they never fail the run.
func Rows(ds *dataset.Dataset, fields Fields, g config.GeneralConfig) Result {
	var res Result
	unknownSigns := make(map[string]bool)

	for i, row := range ds.Rows {
		date, err := time.Parse(g.DateFormat, strings.TrimSpace(row[fields.Date]))
		if err != nil {
			log.Warn("skipping row: unparseable date",
				"file", ds.File, "row", i+2, "value", row[fields.Date])
			res.Skipped++
			continue
		}

		amount, err := ParseAmount(row[fields.Amount], g.DecimalSeparator)
		if err != nil {
			log.Warn("skipping row: unparseable amount",
				"file", ds.File, "row", i+2, "value", row[fields.Amount])
			res.Skipped++
			continue
		}

		if fields.Sign >= 0 {
			value := strings.TrimSpace(row[fields.Sign])
			multiplier, ok := fields.Multipliers[value]
			if !ok {
				// Unknown indicator values fall back to the configured
				// default so they never zero the amount.
				multiplier = g.DefaultMultiplier
				if value != "" && !unknownSigns[value] {
					unknownSigns[value] = true
					log.Warn("sign indicator value not in multiplier table, using default",
						"file", ds.File, "value", value, "multiplier", multiplier)
				}
			}
			amount = amount.Mul(decimal.NewFromInt(int64(multiplier)))
		}

		res.Transactions = append(res.Transactions, model.Transaction{
			Date:        date,
			Description: joinDescription(row, fields.Description),
			Amount:      amount,
			SourceFile:  ds.File,
		})
	}

	return res
}

// ParseAmount parses a raw cell value into a signed decimal under the
// configured decimal-separator convention. With "," the "." is a thousands
// separator and vice versa.
func ParseAmount(raw, decimalSeparator string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if decimalSeparator == "," {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	return decimal.NewFromString(s)
}

// joinDescription concatenates the resolved description cells in candidate
// order, single-space separated, skipping empty cells.
func joinDescription(row []string, indexes []int) string {
	parts := make([]string, 0, len(indexes))
	for _, i := range indexes {
		if cell := strings.TrimSpace(row[i]); cell != "" {
			parts = append(parts, cell)
		}
	}
	return strings.Join(parts, " ")
}
