package vader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/drankou/go-sentiment/lexicon"
)

// sentiments computes one valence per token in a single left-to-right pass.
func (sia *SentimentIntensityAnalyzer) sentiments(sentiText *SentiText) []float64 {
	words := sentiText.wordsAndEmoticonsLower
	sentiments := make([]float64, 0, len(words))

	for i, word := range words {
		// booster words and "kind of" carry no valence of their own
		if _, ok := sia.lang.Booster(word); ok {
			sentiments = append(sentiments, 0)
			continue
		}
		if i < len(words)-1 && word == "kind" && words[i+1] == "of" {
			sentiments = append(sentiments, 0)
			continue
		}

		sentiments = append(sentiments, sia.sentimentValence(sentiText, i))
	}

	return sentiments
}

func (sia *SentimentIntensityAnalyzer) sentimentValence(sentiText *SentiText, i int) float64 {
	tokens := sentiText.wordsAndEmoticons
	words := sentiText.wordsAndEmoticonsLower

	valence, ok := sia.lang.Valence(words[i])
	if !ok {
		return 0
	}

	//check if sentiment laden word is in ALL CAPS (while others aren't)
	if sia.lang.IsUpper(tokens[i]) && sentiText.isCapDiff {
		if valence > 0 {
			valence += C_INCR
		} else {
			valence -= C_INCR
		}
	}

	for startIndex := 0; startIndex < 3; startIndex++ {
		j := lookbackIndex(i, startIndex+1, len(words))
		if i <= startIndex || j < 0 || j >= len(words) {
			continue
		}
		// sentiment words are not modifiers of other sentiment words
		if _, ok := sia.lang.Valence(words[j]); ok {
			continue
		}

		// dampen the scalar modifier of preceding words and emoticons
		// (excluding the ones that immediately preceed the item) based
		// on their distance from the current item.
		s := sia.scalarIncDec(tokens[j], valence, sentiText.isCapDiff)
		if startIndex == 1 && s != 0 {
			s *= Distance2Scalar
		}
		if startIndex == 2 && s != 0 {
			s *= Distance3Scalar
		}

		valence += s
		valence = sia.negationCheck(valence, words, startIndex, i, j)
		if startIndex == 2 {
			valence = sia.specialIdiomsCheck(valence, words, i)
		}
	}

	return sia.leastCheck(valence, words, i)
}

// Check if the preceding words increase, decrease, or negate/nullify the
// valence
func (sia *SentimentIntensityAnalyzer) scalarIncDec(word string, valence float64, isCapDiff bool) float64 {
	var scalar float64

	if value, ok := sia.lang.Booster(strings.ToLower(word)); ok {
		scalar = value
		if valence < 0 {
			scalar *= -1
		}
		//check if booster/dampener word is in ALLCAPS (while others aren't)
		if sia.lang.IsUpper(word) && isCapDiff {
			if valence > 0 {
				scalar += C_INCR
			} else {
				scalar -= C_INCR
			}
		}
	}

	return scalar
}

// negationCheck applies the negation scalars for the word startIndex+1 positions back.
func (sia *SentimentIntensityAnalyzer) negationCheck(valence float64, words []string, startIndex, i, j int) float64 {
	switch startIndex {
	case 0:
		if sia.negated([]string{words[j]}) { // 1 word preceding lexicon word (w/o stopwords)
			return valence * N_SCALAR
		}
	case 1:
		if words[i-2] == "never" && isSoOrThis(words[i-1]) {
			return valence * NeverSoScalar
		} else if sia.negated([]string{words[j]}) { // 2 words preceding the lexicon word position
			return valence * N_SCALAR
		}
	case 2:
		if (words[i-3] == "never" && isSoOrThis(words[i-2])) || isSoOrThis(words[i-1]) {
			return valence * NeverSoScalar3
		} else if sia.negated([]string{words[j]}) { //3 words preceding the lexicon word position
			return valence * N_SCALAR
		}
	}

	return valence
}

func isSoOrThis(word string) bool {
	return word == "so" || word == "this"
}

// specialIdiomsCheck overrides the valence with the one of a sentiment laden
// idiom around i. Only called with i >= 3.
func (sia *SentimentIntensityAnalyzer) specialIdiomsCheck(valence float64, words []string, i int) float64 {
	oneZero := fmt.Sprintf("%s %s", words[i-1], words[i])
	twoOneZero := fmt.Sprintf("%s %s %s", words[i-2], words[i-1], words[i])
	twoOne := fmt.Sprintf("%s %s", words[i-2], words[i-1])
	threeTwoOne := fmt.Sprintf("%s %s %s", words[i-3], words[i-2], words[i-1])
	threeTwo := fmt.Sprintf("%s %s", words[i-3], words[i-2])
	sequences := []string{oneZero, twoOneZero, twoOne, threeTwoOne, threeTwo}

	for _, seq := range sequences {
		if value, ok := sia.lang.Idiom(seq); ok {
			valence = value
			break
		}
	}

	if len(words)-1 > i {
		zeroOne := fmt.Sprintf("%s %s", words[i], words[i+1])
		if value, ok := sia.lang.Idiom(zeroOne); ok {
			valence = value
		}
	}

	if len(words)-1 > i+1 {
		zeroOneTwo := fmt.Sprintf("%s %s %s", words[i], words[i+1], words[i+2])
		if value, ok := sia.lang.Idiom(zeroOneTwo); ok {
			valence = value
		}
	}

	// check for booster/dampener bi-grams such as 'sort of' or 'kind of'
	_, boostedThreeTwo := sia.lang.Booster(threeTwo)
	_, boostedTwoOne := sia.lang.Booster(twoOne)
	if boostedThreeTwo || boostedTwoOne {
		valence += lexicon.B_DECR
	}

	return valence
}

// check for negation case using "least"
func (sia *SentimentIntensityAnalyzer) leastCheck(valence float64, words []string, i int) float64 {
	if i == 0 || words[i-1] != "least" {
		return valence
	}
	if _, ok := sia.lang.Valence(words[i-1]); ok {
		return valence
	}
	if i > 1 && (words[i-2] == "at" || words[i-2] == "very") {
		return valence
	}

	return valence * N_SCALAR
}

// butCheck re-weights valences around the first contrastive conjunction
// "but" (or "BUT"). The input slice is left untouched.
func butCheck(wordsAndEmoticons []string, sentiments []float64) []float64 {
	adjusted := slices.Clone(sentiments)

	wi := slices.Index(wordsAndEmoticons, "but")
	if wi < 0 {
		wi = slices.Index(wordsAndEmoticons, "BUT")
	}
	if wi < 0 {
		return adjusted
	}

	for si, sentiment := range sentiments {
		if si < wi {
			adjusted[si] = sentiment * ButBeforeScalar
		} else if si > wi {
			adjusted[si] = sentiment * ButAfterScalar
		}
	}

	return adjusted
}
