package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// Tokenizer turns raw text into an ordered token sequence.
type Tokenizer interface {
	// SplitWhitespace splits on whitespace, keeping attached punctuation.
	SplitWhitespace(text string) []string
	// StripPunctuationAndSplit removes punctuation and then splits on whitespace.
	StripPunctuationAndSplit(text string) []string
}

// DefaultMinLength drops single character tokens.
const DefaultMinLength = 2

// English is a plain text tokenizer. Punctuation stripping keeps
// contractions ("can't"), URLs ("example.com") and abbreviations
// ("J.R.R." becomes "J.R.R").
type English struct {
	MinLength int
	MaxLength int // 0 means unbounded
}

func NewEnglish() *English {
	return &English{MinLength: DefaultMinLength}
}

func (e *English) SplitWhitespace(text string) []string {
	return FilterBySize(strings.Fields(text), e.MinLength, e.MaxLength)
}

func (e *English) StripPunctuationAndSplit(text string) []string {
	return FilterBySize(strings.Fields(stripPunctuation(text)), e.MinLength, e.MaxLength)
}

// FilterBySize returns the tokens whose rune length lies in [min, max].
// A max of 0 means no upper bound.
func FilterBySize(tokens []string, min, max int) []string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		n := utf8.RuneCountInString(t)
		if n < min || (max > 0 && n > max) {
			continue
		}
		kept = append(kept, t)
	}

	return kept
}

// stripPunctuation replaces ASCII punctuation with spaces. A dot or apostrophe
// survives only when it sits between two word characters.
func stripPunctuation(text string) string {
	runes := []rune(text)
	out := make([]rune, len(runes))

	for k, r := range runes {
		out[k] = r
		if !isPunct(r) {
			continue
		}
		if r != '.' && r != '\'' {
			out[k] = ' '
			continue
		}

		atStart := k == 0 || isSpace(runes[k-1]) || isPunct(runes[k-1])
		atEnd := k == len(runes)-1 || isSpace(runes[k+1]) || isPunct(runes[k+1])
		if atStart || atEnd {
			out[k] = ' '
		}
	}

	return string(out)
}

// isPunct matches the POSIX punct class: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
func isPunct(r rune) bool {
	return r < utf8.RuneSelf && strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", r)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
