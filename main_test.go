package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drankou/go-sentiment/internal/config"
	"github.com/drankou/go-sentiment/internal/hermes"
	"github.com/drankou/go-sentiment/lexicon"
)

func testConfig() config.Config {
	return config.Config{Language: "en", LogLevel: "info", Port: 8760, Subject: config.DefaultSubject}
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg := testConfig()
	cfg.Negations = []string{"lacks"}

	opts, rest, err := parseFlags(newFlagSet(), []string{"good", "bad"}, cfg)
	require.NoError(t, err)

	assert.Equal(t, "en", opts.Language)
	assert.Empty(t, opts.LexiconPath)
	assert.Equal(t, []string{"lacks"}, opts.Negations)
	assert.Equal(t, 8760, opts.Port)
	assert.False(t, opts.JSON)
	assert.Equal(t, []string{"good", "bad"}, rest)
}

func TestParseFlags_Overrides(t *testing.T) {
	opts, rest, err := parseFlags(newFlagSet(), []string{"-port", "9000", "-json", "-lexicon", "x.txt", "text"}, testConfig())
	require.NoError(t, err)

	assert.Equal(t, 9000, opts.Port)
	assert.True(t, opts.JSON)
	assert.Equal(t, "x.txt", opts.LexiconPath)
	assert.Equal(t, []string{"text"}, rest)
}

func TestParseFlags_LexiconNeedsEnglish(t *testing.T) {
	_, _, err := parseFlags(newFlagSet(), []string{"-lang", "xx", "-lexicon", "x.txt"}, testConfig())
	assert.Error(t, err)
}

func TestNewAnalyzer_UnknownLanguage(t *testing.T) {
	_, err := newAnalyzer(Options{Language: "xx"})
	assert.ErrorIs(t, err, lexicon.ErrUnknownLanguage)
}

func TestNewAnalyzer_CustomLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.txt")
	require.NoError(t, os.WriteFile(path, []byte("yummy\t2.0\t0.5\n"), 0o644))

	sia, err := newAnalyzer(Options{Language: "en", LexiconPath: path})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 2}, sia.Valences("eat yummy"))
	assert.Equal(t, []float64{0, 0}, sia.Valences("eat good"))
}

func TestNewAnalyzer_MissingLexicon(t *testing.T) {
	_, err := newAnalyzer(Options{Language: "en", LexiconPath: filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)
}

func TestNewAnalyzer_EmptyLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o644))

	_, err := newAnalyzer(Options{Language: "en", LexiconPath: path})
	assert.ErrorIs(t, err, lexicon.ErrEmptyLexicon)
}

func TestRunScore_Args(t *testing.T) {
	var out bytes.Buffer
	err := runScore(testConfig(), []string{"-json", "The food here is good", "The food here is not good"}, strings.NewReader(""), &out)
	require.NoError(t, err)

	dec := json.NewDecoder(&out)
	var first, second hermes.ScoreResponse
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.Equal(t, "The food here is good", first.Text)
	assert.Equal(t, 0.4404, first.Polarity.Compound)
	assert.Equal(t, -0.3412, second.Polarity.Compound)
}

func TestRunScore_Stdin(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("Great\n\n   \nVADER is smart, handsome, and funny.\n")

	err := runScore(testConfig(), nil, in, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Great : "))
	assert.Contains(t, lines[1], "compound:0.8316")
}

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDemo(testConfig(), nil, &out))

	for _, sentence := range append(demoSentences, trickySentences...) {
		assert.Contains(t, out.String(), sentence+" : ")
	}
}
