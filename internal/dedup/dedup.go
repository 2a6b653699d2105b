// Package dedup collapses duplicate transactions caused by overlapping
// export windows. Equality is the exact (date, description, amount) triple;
// fuzzy matching plays no part here.
package dedup

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JerBouma/PersonalFinance/internal/model"
)

// Stats summarizes what Collapse did.
type Stats struct {
	Kept          int
	Dropped       int
	DroppedByFile map[string]int
}

// Collapse applies the two duplicate policies to a stable-ordered
// transaction collection:
//
//   - Intra-file: identical triples within one file are legitimate separate
//     transactions. They are kept and annotated with the triple's in-file
//     occurrence count.
//   - Inter-file: a triple seen in more than one file is the same
//     real-world transaction exported twice. Only the occurrences from the
//     first file (in input order) that contains the triple survive; copies
//     from later files are dropped so nothing is double-counted.
//
// When disabled, the collection passes through unchanged.
func Collapse(txns []model.Transaction, enabled bool) ([]model.Transaction, Stats) {
	stats := Stats{DroppedByFile: make(map[string]int)}
	if !enabled {
		stats.Kept = len(txns)
		return txns, stats
	}

	inFileCount := make(map[string]int)
	firstFile := make(map[string]string)
	for _, t := range txns {
		k := key(t)
		inFileCount[t.SourceFile+"\x1f"+k]++
		if _, ok := firstFile[k]; !ok {
			firstFile[k] = t.SourceFile
		}
	}

	kept := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		k := key(t)
		if firstFile[k] != t.SourceFile {
			stats.Dropped++
			stats.DroppedByFile[t.SourceFile]++
			continue
		}
		t.Duplicates = inFileCount[t.SourceFile+"\x1f"+k]
		kept = append(kept, t)
	}
	stats.Kept = len(kept)
	return kept, stats
}

// key builds the exact-triple equality key. The amount is canonicalized so
// differing scales of the same value ("100.5" vs "100.50") compare equal.
func key(t model.Transaction) string {
	return t.DateKey() + "\x1f" + t.Description + "\x1f" + canonicalAmount(t.Amount)
}

func canonicalAmount(d decimal.Decimal) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
