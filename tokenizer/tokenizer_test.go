package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnglish_SplitWhitespace(t *testing.T) {
	tok := NewEnglish()

	got := tok.SplitWhitespace("  VADER is  smart, a :) \t funny!\n")
	assert.Equal(t, []string{"VADER", "is", "smart,", ":)", "funny!"}, got)
}

func TestEnglish_StripPunctuationAndSplit(t *testing.T) {
	tok := NewEnglish()

	tests := []struct {
		text string
		want []string
	}{
		{"Hello, world! :)", []string{"Hello", "world"}},
		{"I can't stop. J.R.R. Tolkien's book", []string{"can't", "stop", "J.R.R", "Tolkien's", "book"}},
		{"visit example.com...", []string{"visit", "example.com"}},
		{"'quoted' words", []string{"quoted", "words"}},
		{"well-known (really)", []string{"well", "known", "really"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tok.StripPunctuationAndSplit(tt.text), tt.text)
	}
}

func TestFilterBySize(t *testing.T) {
	tokens := []string{"a", "ab", "abc", "abcd", "é", "éé"}

	assert.Equal(t, []string{"ab", "abc", "abcd", "éé"}, FilterBySize(tokens, 2, 0))
	assert.Equal(t, []string{"ab", "abc", "éé"}, FilterBySize(tokens, 2, 3))
	assert.Empty(t, FilterBySize(nil, 2, 0))
}

func TestEnglish_CustomMinLength(t *testing.T) {
	tok := &English{MinLength: 1}

	assert.Equal(t, []string{"I", "am", "ok"}, tok.SplitWhitespace("I am ok"))
}
