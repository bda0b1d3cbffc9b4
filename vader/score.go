package vader

import (
	"math"
	"strings"

	"github.com/gonum/floats"
)

// Polarity is the result of scoring one text. Negative, Neutral and
// Positive are proportions summing to 1 (within rounding); Compound is the
// normalized, weighted composite score in [-1, 1].
type Polarity struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
	Compound float64 `json:"compound"`
}

// Map returns the polarity keyed by negative, neutral, positive and compound.
func (p Polarity) Map() map[string]float64 {
	return map[string]float64{
		KeyNegative: p.Negative,
		KeyNeutral:  p.Neutral,
		KeyPositive: p.Positive,
		KeyCompound: p.Compound,
	}
}

// add emphasis from exclamation points and question marks
func punctuationEmphasis(text string) float64 {
	return amplifyEP(text) + amplifyQM(text)
}

// check for added emphasis resulting from exclamation points (up to 4 of them)
func amplifyEP(text string) float64 {
	epCount := strings.Count(text, "!")
	if epCount > MaxEM {
		epCount = MaxEM
	}

	return float64(epCount) * ExclamationIncr
}

// check for added emphasis resulting from question marks (2 or 3+)
func amplifyQM(text string) float64 {
	qmCount := strings.Count(text, "?")
	if qmCount > 1 {
		if qmCount <= MaxQM {
			return float64(qmCount) * QuestionIncr
		}
		return QuestionMaxIncr
	}

	return 0.0
}

// want separate positive versus negative sentiment scores
func siftSentimentScores(sentiments []float64) (float64, float64, float64) {
	posSum := 0.0
	negSum := 0.0
	neuCount := 0.0

	for _, sentiment := range sentiments {
		if sentiment > 0 {
			posSum += sentiment + 1 //compensates for neutral words that are counted as 1
		} else if sentiment < 0 {
			negSum += sentiment - 1 //when used with math.Abs(), compensates for neutrals
		} else {
			neuCount++
		}
	}

	return posSum, negSum, neuCount
}

func scoreValence(sentiments []float64, text string) Polarity {
	if len(sentiments) == 0 {
		return Polarity{}
	}

	sumS := floats.Sum(sentiments)

	// compute and add emphasis from punctuation in text
	punctEmphAmplifier := punctuationEmphasis(text)
	if sumS > 0 {
		sumS += punctEmphAmplifier
	} else if sumS < 0 {
		sumS -= punctEmphAmplifier
	}
	compound := Normalize(sumS)

	// discriminate between positive, negative and neutral sentiment scores
	posSum, negSum, neuCount := siftSentimentScores(sentiments)
	if posSum > math.Abs(negSum) {
		posSum += punctEmphAmplifier
	} else if posSum < math.Abs(negSum) {
		negSum -= punctEmphAmplifier
	}

	total := posSum + math.Abs(negSum) + neuCount

	return Polarity{
		Negative: floats.Round(math.Abs(negSum/total), 3),
		Neutral:  floats.Round(math.Abs(neuCount/total), 3),
		Positive: floats.Round(math.Abs(posSum/total), 3),
		Compound: floats.Round(compound, 4),
	}
}
