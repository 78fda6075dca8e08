package aiquiz

import (
	"errors"
	"strings"
)

var (
	errNoOpeningBracket = errors.New("no '[' in model output")
	errUnbalanced       = errors.New("no matching ']' for the first '['")
)

// ExtractJSONArray returns the first top-level JSON array in text, starting at
// the first '['. Brackets inside JSON strings do not count toward nesting.
func ExtractJSONArray(text string) (string, error) {
	start := strings.IndexByte(text, '[')
	if start < 0 {
		return "", newError(KindNoJSONFound, errNoOpeningBracket)
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", newError(KindNoJSONFound, errUnbalanced)
}
