package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned when a lexicon line has no valence or the
// valence is not a number.
var ErrMalformedLine = errors.New("malformed lexicon line")

// ErrEmptyLexicon is returned when a lexicon holds no entries at all.
var ErrEmptyLexicon = errors.New("empty lexicon")

// ParseValences reads tab separated "token<TAB>valence[<TAB>...]" lines.
// Blank lines are skipped; any other bad line fails the whole load, and so
// does input without a single entry.
func ParseValences(r io.Reader) (map[string]float64, error) {
	valences := make(map[string]float64)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := strings.Split(line, "\t")
		if len(values) < 2 {
			return nil, fmt.Errorf("line %d: %w: missing valence", lineNo, ErrMalformedLine)
		}

		word := strings.TrimSpace(values[0])
		measure, err := strconv.ParseFloat(strings.TrimSpace(values[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", lineNo, ErrMalformedLine, err)
		}

		valences[word] = measure
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	if len(valences) == 0 {
		return nil, ErrEmptyLexicon
	}

	return valences, nil
}

// LoadValences parses the lexicon file at path.
func LoadValences(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	valences, err := ParseValences(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return valences, nil
}
