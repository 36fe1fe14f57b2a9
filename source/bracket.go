package source

import "fmt"

// bracketSpan scans exactly one top-level form from offset and returns the
// span from offset through the form's balanced close. The scanner
// understands double-quoted strings with backslash escapes, line comments
// introduced by ';', and '?'-prefixed character constants, so delimiters
// inside any of those never affect balance.
func bracketSpan(text string, offset int) (string, error) {
	i := offset

	// Leading whitespace belongs to the span; the first form may start a
	// few bytes past the recorded offset.
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	if i >= len(text) {
		return "", fmt.Errorf("%w: no form at offset %d", ErrMalformedSource, offset)
	}

	if !isOpen(text[i]) {
		// A bare atom: the form ends at the next delimiter.
		end := i
		for end < len(text) && !isSpace(text[end]) && !isOpen(text[end]) &&
			!isClose(text[end]) && text[end] != ';' {
			end++
		}
		return text[offset:end], nil
	}

	depth := 0
	for ; i < len(text); i++ {
		switch c := text[i]; {
		case c == '"':
			j, ok := skipString(text, i)
			if !ok {
				return "", fmt.Errorf("%w: unterminated string at offset %d", ErrMalformedSource, i)
			}
			i = j
		case c == ';':
			for i < len(text) && text[i] != '\n' {
				i++
			}
		case c == '?':
			// Character constant: the next byte (two for an escape) is
			// literal, including '(' and ')'.
			if i+1 < len(text) {
				i++
				if text[i] == '\\' && i+1 < len(text) {
					i++
				}
			}
		case isOpen(c):
			depth++
		case isClose(c):
			depth--
			if depth == 0 {
				return text[offset : i+1], nil
			}
			if depth < 0 {
				return "", fmt.Errorf("%w: unbalanced close at offset %d", ErrMalformedSource, i)
			}
		}
	}
	return "", fmt.Errorf("%w: form at offset %d never closes", ErrMalformedSource, offset)
}

// skipString advances past a double-quoted string starting at i and returns
// the index of the closing quote.
func skipString(text string, i int) (int, bool) {
	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			j++
		case '"':
			return j, true
		}
	}
	return 0, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isOpen(c byte) bool { return c == '(' || c == '[' }

func isClose(c byte) bool { return c == ')' || c == ']' }
