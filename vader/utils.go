package vader

import (
	"math"
	"strings"
)

// Normalize the score to be between -1 and 1 using an alpha that
// approximates the max expected value
func Normalize(score float64) float64 {
	normalizedScore := score / math.Sqrt((score*score)+float64(Alpha))

	if normalizedScore < -1.0 {
		return -1.0
	} else if normalizedScore > 1.0 {
		return 1.0
	} else {
		return normalizedScore
	}
}

// lookbackIndex returns the position distance tokens left of i. A negative
// position wraps around to the end of the sequence, so the result may still
// be out of range for sequences shorter than distance; callers bounds-check.
func lookbackIndex(i, distance, length int) int {
	idx := i - distance
	if idx < 0 {
		idx = length - (-idx)
	}

	return idx
}

// Determine if input contains negation words
func (sia *SentimentIntensityAnalyzer) negated(inputWords []string) bool {
	for _, word := range inputWords {
		if sia.lang.IsNegation(word) {
			return true
		}
		if _, ok := sia.negations[word]; ok {
			return true
		}
		if strings.HasSuffix(word, "n't") {
			return true
		}
	}

	return hasAtLeast(inputWords)
}

// hasAtLeast reports whether the first "least" is preceded by "at".
func hasAtLeast(words []string) bool {
	for i, word := range words {
		if word == "least" {
			return i > 0 && words[i-1] == "at"
		}
	}

	return false
}
