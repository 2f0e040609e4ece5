package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSpeller() *Speller {
	return NewSpeller(map[string]int64{
		"chicken": 100,
		"soup":    80,
		"sour":    40,
		"pie":     60,
	})
}

func TestNormalizeCorrectsMisspelledQuery(t *testing.T) {
	s := testSpeller()
	assert.Equal(t, "chicken soup", s.Normalize("chiken soupp"))
}

func TestNormalizeKeepsKnownWords(t *testing.T) {
	s := testSpeller()
	assert.Equal(t, "chicken pie", s.Normalize("chicken pie"))
}

func TestNormalizeKeepsUnknownWordsVerbatim(t *testing.T) {
	// Nothing within edit distance 2; token survives untouched.
	s := testSpeller()
	assert.Equal(t, "xylophone soup", s.Normalize("xylophone soupp"))
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	s := testSpeller()
	assert.Equal(t, "chicken soup", s.Normalize("  chicken   soup "))
}

func TestCorrectionPrefersHigherFrequency(t *testing.T) {
	// "soupr" is one edit from both "soup" and "sour"; "soup" has the
	// higher corpus frequency and must win deterministically.
	s := testSpeller()
	assert.Equal(t, "soup", s.Normalize("soupr"))
}

func TestCorrectionDistanceTwo(t *testing.T) {
	s := testSpeller()
	assert.Equal(t, "chicken", s.Normalize("chikn"))
}

func TestParseFrequencyDict(t *testing.T) {
	freq, err := ParseFrequencyDict([]byte("chicken 100\n# comment\n\nsoup 80\nSOUP 5\n"))
	assert.NoError(t, err)
	assert.Equal(t, int64(100), freq["chicken"])
	assert.Equal(t, int64(85), freq["soup"])
}
