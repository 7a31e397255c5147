// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

package globtrail

// tokenKind discriminates the variants a compiled pattern is built from.
type tokenKind int

const (
	tokenChar tokenKind = iota
	tokenAnyChar
	tokenAnySequence
	tokenAnyRecursiveSequence
	tokenAnyWithin
	tokenAnyExcept
)

// token is one element of a tokenized pattern. char is only meaningful for
// tokenChar; specs is only meaningful for tokenAnyWithin/tokenAnyExcept.
type token struct {
	kind  tokenKind
	char  rune
	specs []charSpecifier
}

// tokenize turns a raw pattern string into a token sequence, or returns a
// *PatternError pinpointing the first offending rune.
func tokenize(pattern string) ([]token, *PatternError) {
	chars := []rune(pattern)
	tokens := make([]token, 0, len(chars))

	for i := 0; i < len(chars); {
		switch chars[i] {
		case '?':
			tokens = append(tokens, token{kind: tokenAnyChar})
			i++

		case '*':
			old := i
			for i < len(chars) && chars[i] == '*' {
				i++
			}
			count := i - old

			switch {
			case count > 2:
				return nil, newPatternError(old+2, "wildcards are either regular `*` or recursive `**`")
			case count == 2:
				valid, err := validateRecursivePlacement(chars, old, &i)
				if err != nil {
					return nil, err
				}
				if valid {
					// collapse consecutive any-recursive-sequence tokens
					if len(tokens) == 0 || tokens[len(tokens)-1].kind != tokenAnyRecursiveSequence {
						tokens = append(tokens, token{kind: tokenAnyRecursiveSequence})
					}
				}
			default:
				tokens = append(tokens, token{kind: tokenAnySequence})
			}

		case '[':
			tok, next, err := tokenizeBracket(chars, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next

		default:
			tokens = append(tokens, token{kind: tokenChar, char: chars[i]})
			i++
		}
	}

	return tokens, nil
}

// validateRecursivePlacement enforces that a `**` run (which started at
// chars[old] and has been fully consumed up to *i) forms a whole path
// component: preceded by the start of the pattern or a separator, and
// followed by a separator or the end of the pattern. On success it
// advances *i past a trailing separator and returns true; any other case
// is reported as a *PatternError.
func validateRecursivePlacement(chars []rune, old int, i *int) (bool, *PatternError) {
	beginsComponent := old == 0 || isSeparator(chars[old-1])
	if !beginsComponent {
		return false, newPatternError(old-1, "recursive wildcards must form a single path component")
	}

	if *i < len(chars) && isSeparator(chars[*i]) {
		*i++
		return true, nil
	}

	if *i == len(chars) {
		return true, nil
	}

	return false, newPatternError(*i, "recursive wildcards must form a single path component")
}

// indexRune returns the index of the first occurrence of r in chars, or -1.
func indexRune(chars []rune, r rune) int {
	for i, c := range chars {
		if c == r {
			return i
		}
	}
	return -1
}

// tokenizeBracket parses a bracket class starting at chars[i] (which must
// be '['), returning the emitted token and the index just past the class.
//
// A `[` immediately followed by `!` opens a negated class; the search for
// the closing `]` begins one past the third character, which lets a
// literal `]` be the first class member (`[!]]` matches anything except
// `]`). An unnegated class searches one past the second character for the
// same reason (`[]]` matches literal `]`). If no closing `]` is found (or
// there isn't room for one), the `[` is a syntax error.
func tokenizeBracket(chars []rune, i int) (token, int, *PatternError) {
	n := len(chars)
	negated := i+1 < n && chars[i+1] == '!'

	if negated && i <= n-4 {
		if j := indexRune(chars[i+3:], ']'); j >= 0 {
			body := chars[i+2 : i+3+j]
			return token{kind: tokenAnyExcept, specs: parseCharClass(body)}, i + j + 4, nil
		}
	} else if !negated && i <= n-3 {
		if j := indexRune(chars[i+2:], ']'); j >= 0 {
			body := chars[i+1 : i+2+j]
			return token{kind: tokenAnyWithin, specs: parseCharClass(body)}, i + j + 3, nil
		}
	}

	return token{}, 0, newPatternError(i, "invalid range pattern")
}
