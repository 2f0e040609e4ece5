package search

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// Embed returns a small deterministic embedding for the given text:
// total length, vowel count and consonant count. It only has to give
// the index a stable relevance ordering for near-identical keyword
// matches, so it stays deliberately cheap.
func Embed(text string) pgvector.Vector {
	text = strings.ToLower(text)
	var vowels, consonants float32
	for _, r := range text {
		if strings.ContainsRune("aeiou", r) {
			vowels++
		} else if r >= 'a' && r <= 'z' {
			consonants++
		}
	}
	length := float32(len(text))
	return pgvector.NewVector([]float32{length, vowels, consonants})
}
