package lexicon

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownLanguage = errors.New("unknown language")

var registry = map[string]func() (*Lexicon, error){
	"en": English,
}

// Available lists the codes of the built-in languages.
func Available() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes
}

// Get returns the built-in lexicon for a language code.
func Get(code string) (*Lexicon, error) {
	load, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}

	return load()
}
