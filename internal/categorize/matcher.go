package categorize

import (
	"sort"

	"github.com/JerBouma/PersonalFinance/internal/config"
	"github.com/JerBouma/PersonalFinance/internal/model"
)

// Matcher assigns categories by scoring descriptions against every
// (category, keyword) pair in the table. It also remembers the best score
// each keyword ever reached so dead keywords can be reported after a run.
type Matcher struct {
	table       config.CategoryTable
	threshold   int
	similarity  Func
	keywordBest map[string]int
}

// NewMatcher creates a Matcher using the default Similarity function.
func NewMatcher(table config.CategoryTable, threshold int) *Matcher {
	return NewMatcherFunc(table, threshold, Similarity)
}

// NewMatcherFunc creates a Matcher with a custom scoring function.
func NewMatcherFunc(table config.CategoryTable, threshold int, similarity Func) *Matcher {
	return &Matcher{
		table:       table,
		threshold:   threshold,
		similarity:  similarity,
		keywordBest: make(map[string]int),
	}
}

// Match returns the best-matching category and keyword for a description
// plus the 0-100 certainty of that match. Pairs are scored in table
// declaration order and only a strictly better score replaces the current
// best, so earlier pairs win ties and results are reproducible run to run.
// When nothing clears the threshold the category is "Other", the keyword is
// empty and the certainty is the best score found, so near-misses stay
// auditable.
func (m *Matcher) Match(description string) (category, keyword string, certainty int) {
	best := 0
	bestCategory := model.CategoryOther
	bestKeyword := ""

	for _, entry := range m.table.Entries() {
		for _, kw := range entry.Keywords {
			score := m.similarity(description, kw)
			if prev, ok := m.keywordBest[kw]; !ok || score > prev {
				m.keywordBest[kw] = score
			}
			if score > best {
				best = score
				bestCategory = entry.Name
				bestKeyword = kw
			}
		}
	}

	if best >= m.threshold && bestKeyword != "" {
		return bestCategory, bestKeyword, best
	}
	return model.CategoryOther, "", best
}

// Apply categorizes every transaction in place.
func (m *Matcher) Apply(txns []model.Transaction) {
	for i := range txns {
		txns[i].Category, txns[i].Keyword, txns[i].Certainty = m.Match(txns[i].Description)
	}
}

// KeywordScore pairs a keyword with the best score it reached.
type KeywordScore struct {
	Keyword string
	Score   int
}

// Misses returns the keywords that never cleared the threshold in any
// Match call so far, lowest score first. Users prune or fix these to keep
// their tables compact.
func (m *Matcher) Misses() []KeywordScore {
	var misses []KeywordScore
	for _, entry := range m.table.Entries() {
		for _, kw := range entry.Keywords {
			if score, ok := m.keywordBest[kw]; ok && score < m.threshold {
				misses = append(misses, KeywordScore{Keyword: kw, Score: score})
			}
		}
	}
	sort.SliceStable(misses, func(i, j int) bool { return misses[i].Score < misses[j].Score })
	return misses
}
