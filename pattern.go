// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

package globtrail

import (
	"regexp"
	"strings"
)

// Pattern is a compiled glob expression. It holds the original pattern
// string and an anchored regex derived from it; both Matches and
// MatchesPath require the full input to match, never a substring.
type Pattern struct {
	original string
	re       *regexp.Regexp
}

// Compile parses and compiles a single glob pattern (one path component or
// a whole multi-component pattern — Compile itself does not split on path
// separators; see buildSelectorChain for that).
func Compile(pattern string) (*Pattern, error) {
	tokens, perr := tokenize(pattern)
	if perr != nil {
		return nil, perr
	}

	body := compileTokens(tokens)

	// \A/\z anchor both ends regardless of any inline flag a future token
	// kind might set, the same reason the original reached for \z instead
	// of $. (?s) makes any-char/any-recursive tokens' `.` cross separators;
	// nothing here ever uses ^/$, so multiline mode buys nothing and is
	// dropped.
	re, err := regexp.Compile("(?s)\\A(?:" + body + ")\\z")
	if err != nil {
		return nil, newPatternError(0, err.Error())
	}

	return &Pattern{original: pattern, re: re}, nil
}

// String returns the pattern's original source text.
func (p *Pattern) String() string {
	return p.original
}

// RegexString returns the compiled regex source, primarily useful for
// golden-testing the compiler itself.
func (p *Pattern) RegexString() string {
	return p.re.String()
}

// Matches reports whether s satisfies the pattern in full.
func (p *Pattern) Matches(s string) bool {
	return p.re.MatchString(s)
}

// MatchesPath reports whether path satisfies the pattern in full. In Go, a
// filesystem path is already a plain string, so this simply delegates;
// the method exists to mirror the spec's distinct match-against-path
// operation (which in a language with a dedicated path type would first
// derive a string from the path).
func (p *Pattern) MatchesPath(path string) bool {
	return p.Matches(path)
}

// Equal reports whether p and other compile to the same regex source text.
// Equal patterns match the same set of strings; patterns that compile to
// different regex text (such as "[a]" and "a") compare unequal even when
// they match the same strings.
func (p *Pattern) Equal(other *Pattern) bool {
	if other == nil {
		return false
	}
	return p.re.String() == other.re.String()
}

// Escape wraps each of `? * [ ]` in a trivial bracket class so the result,
// when compiled, matches s literally.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, c := range s {
		switch c {
		case '?', '*', '[', ']':
			b.WriteByte('[')
			b.WriteRune(c)
			b.WriteByte(']')
		default:
			b.WriteRune(c)
		}
	}

	return b.String()
}

// compileTokens emits a regex source fragment (without anchors) from a
// token sequence.
func compileTokens(tokens []token) string {
	var b strings.Builder

	for _, t := range tokens {
		switch t.kind {
		case tokenChar:
			b.WriteString(escapeRegexChar(t.char))
		case tokenAnyChar:
			b.WriteByte('.')
		case tokenAnySequence:
			b.WriteString("[^")
			b.WriteString(escapeRegexChar(pathSeparator))
			b.WriteString("]*")
		case tokenAnyRecursiveSequence:
			b.WriteString(".*")
		case tokenAnyWithin:
			b.WriteByte('[')
			emitCharSpecs(&b, t.specs)
			b.WriteByte(']')
		case tokenAnyExcept:
			b.WriteString("[^")
			emitCharSpecs(&b, t.specs)
			b.WriteByte(']')
		}
	}

	return b.String()
}

// emitCharSpecs writes a list of char specifiers as a regex class body. A
// lone backslash singleton is doubled; range bounds are written verbatim.
func emitCharSpecs(b *strings.Builder, specs []charSpecifier) {
	for _, s := range specs {
		if s.isRange {
			b.WriteRune(s.lo)
			b.WriteByte('-')
			b.WriteRune(s.hi)
			continue
		}

		if s.lo == '\\' {
			b.WriteString(`\\`)
			continue
		}

		b.WriteRune(s.lo)
	}
}

// escapeRegexChar escapes c if it is a regex metacharacter, else returns it
// unchanged.
func escapeRegexChar(c rune) string {
	switch c {
	case '\\', '.', '+', '*', '?', '(', ')', '|', '[', ']', '{', '}', '^', '$':
		return "\\" + string(c)
	default:
		return string(c)
	}
}
