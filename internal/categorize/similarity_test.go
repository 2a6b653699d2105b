package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_ExactMatch(t *testing.T) {
	assert.Equal(t, 100, Similarity("Supermarket", "Supermarket"))
}

func TestSimilarity_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 100, Similarity("SPOTIFY AB", "spotify ab"))
}

func TestSimilarity_SubstringContainment(t *testing.T) {
	// A keyword fully contained in a longer description scores 100; it is
	// not penalized for the length difference.
	assert.Equal(t, 100, Similarity("ALBERT HEIJN 1234 AMS", "Albert Heijn"))
	assert.Equal(t, 100, Similarity("Spotify AB", "Spotify"))
	assert.Equal(t, 100, Similarity("NS GROEP IZA E-TICKET", "NS Groep"))
}

func TestSimilarity_ApproximateMatch(t *testing.T) {
	// Pinned score: the best 11-rune window of the description against
	// "supermarket" leaves one insertion and one deletion across 22 runes.
	assert.Equal(t, 91, Similarity("Rick's Super Market", "Supermarket"))
}

func TestSimilarity_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0, Similarity("", "Supermarket"))
	assert.Equal(t, 0, Similarity("Supermarket", ""))
	assert.Equal(t, 0, Similarity("", ""))
}

func TestSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"abc", "xyz"},
		{"Albert Heijn", "Jumbo"},
		{"a", "some long description"},
		{"Tikkie van Jan", "Tikkie"},
	}
	for _, p := range pairs {
		score := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}
