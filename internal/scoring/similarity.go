package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-matcher/internal/types"
)

const (
	// similarityThreshold is the minimum similarity for a candidate mission
	// to count toward a job mission.
	similarityThreshold = 0.6
	// sameCategorySimilarity is assigned when both missions share a
	// category.
	sameCategorySimilarity = 0.8
	// wordOverlapCap bounds the text-overlap similarity below a perfect
	// match, which category agreement alone cannot reach either.
	wordOverlapCap = 0.95
	// minOverlapWordLength keeps stop words out of the overlap ratio; only
	// words longer than 3 characters count.
	minOverlapWordLength = 4
)

// missionSimilarity estimates how close a candidate mission is to a job
// mission: identical categories short-circuit to 0.8, anything else falls
// back to a word-overlap ratio over the longer text.
func missionSimilarity(candidate, job types.Mission) float64 {
	if candidate.Category == job.Category {
		return sameCategorySimilarity
	}
	return wordOverlap(candidate.Text, job.Text)
}

// wordOverlap is the ratio of shared significant words over the longer
// text's significant-word count, capped at 0.95.
func wordOverlap(a, b string) float64 {
	wordsA := significantWords(a)
	wordsB := significantWords(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	longer := len(wordsA)
	if len(wordsB) > longer {
		longer = len(wordsB)
	}

	shared := 0
	for w := range wordsA {
		if wordsB[w] {
			shared++
		}
	}

	ratio := float64(shared) / float64(longer)
	if ratio > wordOverlapCap {
		return wordOverlapCap
	}
	return ratio
}

// significantWords lowercases text and keeps the distinct words long enough
// to carry meaning.
func significantWords(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,;:()'\"")
		if utf8.RuneCountInString(w) >= minOverlapWordLength {
			words[w] = true
		}
	}
	return words
}
