// Package categorize assigns transactions to categories by fuzzy keyword
// matching. A keyword table is scanned in declaration order and the best
// scoring (category, keyword) pair wins when it clears the configured
// threshold; everything else falls back to the reserved "Other" bucket.
package categorize

import (
	"math"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Func scores a description against a keyword on a 0-100 scale. The matcher
// takes it as a parameter so threshold and tie-break logic can be tested
// against literal scores.
type Func func(description, keyword string) int

// Similarity is the default scoring function: a case-insensitive windowed
// Levenshtein ratio. The shorter string is compared against every
// equal-length rune window of the longer and the best ratio wins, so a
// keyword fully contained in a longer description scores 100 instead of
// being penalized for the length difference.
func Similarity(description, keyword string) int {
	a := []rune(strings.ToLower(description))
	b := []rune(strings.ToLower(keyword))

	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	var best float64
	for i := 0; i+len(short) <= len(long); i++ {
		r := levenshtein.RatioForStrings(short, long[i:i+len(short)], levenshtein.DefaultOptions)
		if r > best {
			best = r
		}
		if best == 1 {
			break
		}
	}
	return int(math.Round(best * 100))
}
