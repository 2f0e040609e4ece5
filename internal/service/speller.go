package service

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
)

const spellAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Speller corrects query tokens against a word-frequency dictionary.
// A token within edit distance 2 of a dictionary word is replaced by
// the most frequent candidate; anything else is kept verbatim. The
// dictionary is loaded once at startup and never mutated, so a single
// Speller is safe for concurrent use.
type Speller struct {
	freq map[string]int64
}

func NewSpeller(freq map[string]int64) *Speller {
	return &Speller{freq: freq}
}

// ParseFrequencyDict reads "word count" lines, one per line. Blank
// lines and lines starting with '#' are skipped.
func ParseFrequencyDict(data []byte) (map[string]int64, error) {
	freq := make(map[string]int64)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		word := strings.ToLower(parts[0])
		count := int64(1)
		if len(parts) > 1 {
			if n, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
				count = n
			}
		}
		freq[word] += count
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return freq, nil
}

// Normalize corrects each whitespace-separated token of query and
// rejoins them with single spaces. Token order is preserved and no
// token is ever dropped.
func (s *Speller) Normalize(query string) string {
	words := strings.Fields(query)
	for i, w := range words {
		words[i] = s.correction(w)
	}
	return strings.Join(words, " ")
}

// correction returns the best dictionary candidate for word, or word
// itself when nothing within edit distance 2 is known. Candidates at
// distance 1 always beat candidates at distance 2; among equally
// distant candidates the highest corpus frequency wins, ties broken by
// lexicographic order so correction is deterministic.
func (s *Speller) correction(word string) string {
	lower := strings.ToLower(word)
	if _, ok := s.freq[lower]; ok {
		return word
	}

	if best := s.bestKnown(edits1(lower)); best != "" {
		return best
	}
	candidates := make(map[string]bool)
	for e1 := range edits1(lower) {
		for e2 := range edits1(e1) {
			candidates[e2] = true
		}
	}
	if best := s.bestKnown(candidates); best != "" {
		return best
	}
	return word
}

func (s *Speller) bestKnown(candidates map[string]bool) string {
	best := ""
	var bestFreq int64 = -1
	for c := range candidates {
		f, ok := s.freq[c]
		if !ok {
			continue
		}
		if f > bestFreq || (f == bestFreq && c < best) {
			best, bestFreq = c, f
		}
	}
	return best
}

// edits1 returns every string one edit away from word: deletions,
// transpositions, replacements and insertions.
func edits1(word string) map[string]bool {
	edits := make(map[string]bool)
	for i := 0; i <= len(word); i++ {
		left, right := word[:i], word[i:]
		if len(right) > 0 {
			edits[left+right[1:]] = true
		}
		if len(right) > 1 {
			edits[left+string(right[1])+string(right[0])+right[2:]] = true
		}
		for _, c := range spellAlphabet {
			if len(right) > 0 {
				edits[left+string(c)+right[1:]] = true
			}
			edits[left+string(c)+right] = true
		}
	}
	return edits
}
