package source

import "fmt"

// blockSpan scans a block-structured definition from offset: the
// declaration through its balanced parameter list, the brace-delimited
// body, and an immediately following statement delimiter when one is
// present. Trailing unrelated statements are never included.
func blockSpan(text string, offset int) (string, error) {
	// Declaration: everything up to and including the parameter list.
	i, err := skipParenGroup(text, offset)
	if err != nil {
		return "", err
	}

	// Body: the next balanced brace block.
	i = skipBlank(text, i)
	if i >= len(text) || text[i] != '{' {
		return "", fmt.Errorf("%w: expected body block after declaration at offset %d",
			ErrMalformedSource, offset)
	}
	i, err = skipBraceGroup(text, i)
	if err != nil {
		return "", err
	}
	end := i

	// Statement delimiter, when the definition carries one.
	j := skipBlank(text, end)
	if j < len(text) && text[j] == ';' {
		end = j + 1
	}

	return text[offset:end], nil
}

// skipParenGroup advances from start past the first balanced parenthesized
// group and returns the index just after its close.
func skipParenGroup(text string, start int) (int, error) {
	depth := 0
	for i := start; i < len(text); i++ {
		c := text[i]
		next, skipped, err := skipCodeAtom(text, i)
		if err != nil {
			return 0, err
		}
		if skipped {
			i = next
			continue
		}
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
			if depth < 0 {
				return 0, fmt.Errorf("%w: unbalanced close at offset %d", ErrMalformedSource, i)
			}
		case '{', '}':
			if depth == 0 {
				return 0, fmt.Errorf("%w: no parameter list before block at offset %d",
					ErrMalformedSource, i)
			}
		}
	}
	return 0, fmt.Errorf("%w: declaration at offset %d has no parameter list",
		ErrMalformedSource, start)
}

// skipBraceGroup advances from the opening brace at start past its
// balanced close and returns the index just after it.
func skipBraceGroup(text string, start int) (int, error) {
	depth := 0
	for i := start; i < len(text); i++ {
		c := text[i]
		next, skipped, err := skipCodeAtom(text, i)
		if err != nil {
			return 0, err
		}
		if skipped {
			i = next
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: block at offset %d never closes", ErrMalformedSource, start)
}

// skipCodeAtom handles the lexical islands of block-structured code whose
// content must not affect balance: string and character literals, line
// comments, and block comments. It reports whether i pointed into such an
// island and, if so, the index of its final byte.
func skipCodeAtom(text string, i int) (next int, skipped bool, err error) {
	switch text[i] {
	case '"', '\'':
		quote := text[i]
		for j := i + 1; j < len(text); j++ {
			switch text[j] {
			case '\\':
				j++
			case quote:
				return j, true, nil
			}
		}
		return 0, false, fmt.Errorf("%w: unterminated literal at offset %d", ErrMalformedSource, i)
	case '/':
		if i+1 >= len(text) {
			return 0, false, nil
		}
		switch text[i+1] {
		case '/':
			j := i + 2
			for j < len(text) && text[j] != '\n' {
				j++
			}
			return j - 1, true, nil
		case '*':
			for j := i + 2; j+1 < len(text); j++ {
				if text[j] == '*' && text[j+1] == '/' {
					return j + 1, true, nil
				}
			}
			return 0, false, fmt.Errorf("%w: unterminated comment at offset %d", ErrMalformedSource, i)
		}
	}
	return 0, false, nil
}

// skipBlank advances past whitespace.
func skipBlank(text string, i int) int {
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	return i
}
