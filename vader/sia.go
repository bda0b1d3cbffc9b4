package vader

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/drankou/go-sentiment/lexicon"
	"github.com/drankou/go-sentiment/tokenizer"
)

// SentimentIntensityAnalyzer gives a sentiment intensity score to sentences.
// It holds no per-text state and is safe for concurrent use as long as its
// Language is not modified.
type SentimentIntensityAnalyzer struct {
	lang      lexicon.Language
	tokenizer tokenizer.Tokenizer
	negations map[string]struct{}
	logger    *slog.Logger
}

type Option func(sia *SentimentIntensityAnalyzer)

// WithLanguage sets the lexicon. Defaults to lexicon.English.
func WithLanguage(lang lexicon.Language) Option {
	return func(sia *SentimentIntensityAnalyzer) {
		sia.lang = lang
	}
}

// WithTokenizer sets the tokenizer. Defaults to tokenizer.NewEnglish.
func WithTokenizer(tok tokenizer.Tokenizer) Option {
	return func(sia *SentimentIntensityAnalyzer) {
		sia.tokenizer = tok
	}
}

// WithNegations adds negation words on top of the ones of the language.
func WithNegations(words ...string) Option {
	return func(sia *SentimentIntensityAnalyzer) {
		for _, w := range words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				sia.negations[w] = struct{}{}
			}
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(sia *SentimentIntensityAnalyzer) {
		sia.logger = logger
	}
}

// NewSentimentIntensityAnalyzer returns an analyzer with the English lexicon
// and tokenizer unless options say otherwise.
func NewSentimentIntensityAnalyzer(opts ...Option) (*SentimentIntensityAnalyzer, error) {
	sia := &SentimentIntensityAnalyzer{
		negations: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(sia)
	}

	if sia.lang == nil {
		lang, err := lexicon.English()
		if err != nil {
			return nil, err
		}
		sia.lang = lang
	}
	if sia.tokenizer == nil {
		sia.tokenizer = tokenizer.NewEnglish()
	}
	if sia.logger == nil {
		sia.logger = slog.Default()
	}

	return sia, nil
}

// NewForLanguage returns an analyzer for one of the built-in languages.
func NewForLanguage(code string, opts ...Option) (*SentimentIntensityAnalyzer, error) {
	lang, err := lexicon.Get(code)
	if err != nil {
		return nil, fmt.Errorf("analyzer for %q: %w", code, err)
	}

	return NewSentimentIntensityAnalyzer(append([]Option{WithLanguage(lang)}, opts...)...)
}

// Language returns the lexicon the analyzer scores with.
func (sia *SentimentIntensityAnalyzer) Language() lexicon.Language {
	return sia.lang
}

// Return a float for sentiment strength based on the input text.
// Positive values are positive valence, negative value are negative valence.
func (sia *SentimentIntensityAnalyzer) PolarityScores(text string) map[string]float64 {
	return sia.Score(text).Map()
}

// Score computes the polarity of text.
func (sia *SentimentIntensityAnalyzer) Score(text string) Polarity {
	return scoreValence(sia.Valences(text), text)
}

// Valences returns the valence of every token of text after the
// contrastive conjunction adjustment, i.e. what Score aggregates.
func (sia *SentimentIntensityAnalyzer) Valences(text string) []float64 {
	return sia.valences(NewSentiText(text, sia.tokenizer, sia.lang))
}

func (sia *SentimentIntensityAnalyzer) valences(sentiText *SentiText) []float64 {
	sentiments := sia.sentiments(sentiText)
	adjusted := butCheck(sentiText.wordsAndEmoticons, sentiments)

	if sia.logger.Enabled(context.Background(), slog.LevelDebug) {
		sia.logger.Debug("sentiment valences",
			"tokens", sentiText.wordsAndEmoticons,
			"cap_diff", sentiText.isCapDiff,
			"first_pass", sentiments,
			"after_conjunctions", adjusted,
		)
	}

	return adjusted
}

// Analysis is the stateful form of the analyzer: the polarity of the current
// text is computed on first request and kept until the text changes.
// An Analysis must not be shared between goroutines.
type Analysis struct {
	sia       *SentimentIntensityAnalyzer
	text      string
	sentiText *SentiText
	polarity  *Polarity
}

func (sia *SentimentIntensityAnalyzer) NewAnalysis() *Analysis {
	return &Analysis{sia: sia}
}

// SetText sets the text and resets the polarity.
func (a *Analysis) SetText(text string) {
	a.text = text
	a.sentiText = NewSentiText(text, a.sia.tokenizer, a.sia.lang)
	a.polarity = nil
}

func (a *Analysis) Text() string {
	return a.text
}

// Polarity returns the polarity of the current text, or false if no text
// was set.
func (a *Analysis) Polarity() (Polarity, bool) {
	if a.sentiText == nil {
		return Polarity{}, false
	}
	if a.polarity == nil {
		p := scoreValence(a.sia.valences(a.sentiText), a.text)
		a.polarity = &p
	}

	return *a.polarity, true
}
