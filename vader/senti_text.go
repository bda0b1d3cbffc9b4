package vader

import (
	"slices"
	"strings"

	"github.com/drankou/go-sentiment/lexicon"
	"github.com/drankou/go-sentiment/tokenizer"
)

// SentiText holds the canonical token sequence of one text and whether
// capitalized words stand out in it. It is not modified after NewSentiText.
type SentiText struct {
	wordsAndEmoticons      []string
	wordsAndEmoticonsLower []string
	isCapDiff              bool
}

func NewSentiText(text string, tok tokenizer.Tokenizer, lang lexicon.Language) *SentiText {
	wordsOnly := tok.StripPunctuationAndSplit(text)
	wordsAndEmoticons := mergeTokens(wordsOnly, tok.SplitWhitespace(text), lang.Punctuation())

	wordsAndEmoticonsLower := make([]string, 0, len(wordsAndEmoticons))
	for _, w := range wordsAndEmoticons {
		wordsAndEmoticonsLower = append(wordsAndEmoticonsLower, strings.ToLower(w))
	}

	return &SentiText{
		wordsAndEmoticons:      wordsAndEmoticons,
		wordsAndEmoticonsLower: wordsAndEmoticonsLower,
		isCapDiff:              IsAllCapDiff(wordsAndEmoticons, lang),
	}
}

// WordsAndEmoticons returns a copy of the token sequence.
func (st *SentiText) WordsAndEmoticons() []string {
	return slices.Clone(st.wordsAndEmoticons)
}

// IsCapDiff reports whether some, but not all, tokens are in ALL CAPS.
func (st *SentiText) IsCapDiff() bool {
	return st.isCapDiff
}

func (st *SentiText) Len() int {
	return len(st.wordsAndEmoticons)
}

// mergeTokens replaces "word!" and "!word" in the whitespace split with the
// bare word when the word survived punctuation stripping. Emoticons match no
// stripped word and are kept as they are.
func mergeTokens(wordsOnly, wordsAndEmoticons, punctuation []string) []string {
	words := make(map[string]struct{}, len(wordsOnly))
	for _, w := range wordsOnly {
		words[w] = struct{}{}
	}

	merged := make([]string, len(wordsAndEmoticons))
	for i, token := range wordsAndEmoticons {
		merged[i] = token
		for _, p := range punctuation {
			if w, ok := strings.CutSuffix(token, p); ok && isWord(words, w) {
				merged[i] = w
				break
			}
			if w, ok := strings.CutPrefix(token, p); ok && isWord(words, w) {
				merged[i] = w
				break
			}
		}
	}

	return merged
}

func isWord(words map[string]struct{}, w string) bool {
	_, ok := words[w]
	return ok
}

// IsAllCapDiff checks whether just some words in the input are ALL CAPS
// (e.g. [GET, THE, HELL, OUT] is false, [GET, the, HELL, OUT] is true).
func IsAllCapDiff(words []string, lang lexicon.Language) bool {
	allCaps := 0
	for _, word := range words {
		if lang.IsUpper(word) {
			allCaps++
		}
	}

	return allCaps > 0 && allCaps < len(words)
}
