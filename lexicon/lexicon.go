package lexicon

import (
	"regexp"
	"strings"
	"unicode"
)

// Language is the set of read-only tables the analyzer consults while scoring.
// Implementations must not change after construction.
type Language interface {
	// Code is the language code, e.g. "en".
	Code() string
	// Valence returns the sentiment valence of a lower-cased word.
	Valence(word string) (float64, bool)
	// IsNegation reports whether a lower-cased word negates what follows it.
	IsNegation(word string) bool
	// Booster returns the increment (or decrement) of a lower-cased
	// booster/dampener word or phrase.
	Booster(word string) (float64, bool)
	// Idiom returns the fixed valence of a lower-cased sentiment laden phrase.
	Idiom(phrase string) (float64, bool)
	// Punctuation is the list of marks that may be glued to a word.
	Punctuation() []string
	// IsUpper reports whether a token is written in capitals for emphasis.
	IsUpper(token string) bool
}

// Tables holds the raw data a Lexicon is built from.
type Tables struct {
	Valences    map[string]float64
	Negations   []string
	Boosters    map[string]float64
	Idioms      map[string]float64
	Punctuation []string
}

// Lexicon is an immutable Language backed by in-memory maps.
type Lexicon struct {
	code        string
	valences    map[string]float64
	negations   map[string]struct{}
	boosters    map[string]float64
	idioms      map[string]float64
	punctuation []string
}

var letterRegexp = regexp.MustCompile(`[a-zA-Z]`)

// New builds a Lexicon from tables. Every table is copied, so the caller
// may reuse or modify them afterwards.
func New(code string, t Tables) *Lexicon {
	l := &Lexicon{
		code:        code,
		valences:    make(map[string]float64, len(t.Valences)),
		negations:   make(map[string]struct{}, len(t.Negations)),
		boosters:    make(map[string]float64, len(t.Boosters)),
		idioms:      make(map[string]float64, len(t.Idioms)),
		punctuation: append([]string(nil), t.Punctuation...),
	}

	for word, valence := range t.Valences {
		l.valences[word] = valence
	}
	for _, word := range t.Negations {
		l.negations[word] = struct{}{}
	}
	for word, value := range t.Boosters {
		l.boosters[word] = value
	}
	for phrase, valence := range t.Idioms {
		l.idioms[phrase] = valence
	}

	return l
}

func (l *Lexicon) Code() string {
	return l.code
}

func (l *Lexicon) Valence(word string) (float64, bool) {
	v, ok := l.valences[word]
	return v, ok
}

func (l *Lexicon) IsNegation(word string) bool {
	_, ok := l.negations[word]
	return ok
}

func (l *Lexicon) Booster(word string) (float64, bool) {
	v, ok := l.boosters[word]
	return v, ok
}

func (l *Lexicon) Idiom(phrase string) (float64, bool) {
	v, ok := l.idioms[phrase]
	return v, ok
}

// Punctuation returns a copy of the punctuation list.
func (l *Lexicon) Punctuation() []string {
	return append([]string(nil), l.punctuation...)
}

// Size is the number of words with a valence.
func (l *Lexicon) Size() int {
	return len(l.valences)
}

// IsUpper is false for URLs, for tokens without a letter and for tokens
// holding any lower case rune.
func (l *Lexicon) IsUpper(token string) bool {
	lower := strings.ToLower(token)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return false
	}
	if !letterRegexp.MatchString(token) {
		return false
	}
	for _, r := range token {
		if unicode.IsLower(r) {
			return false
		}
	}

	return true
}
