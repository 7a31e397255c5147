// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

package globtrail

import (
	"errors"
	"fmt"
)

// Sentinel errors for globtrail operations.
var (
	// ErrUnsupportedPattern indicates a pattern whose filesystem root uses a
	// platform feature this package does not support (a Windows verbatim
	// `\\?\` prefix).
	ErrUnsupportedPattern = errors.New("unsupported pattern")
)

// PatternError is a pattern syntax error produced while tokenizing or
// compiling a pattern. Pos is the 0-based character offset of the first
// offending rune in the original pattern string.
type PatternError struct {
	Pos int
	Msg string
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("glob: syntax error at position %d: %s", e.Pos, e.Msg)
}

// newPatternError builds a *PatternError, the only constructor used
// throughout the tokenizer and compiler so every syntax failure carries the
// same shape.
func newPatternError(pos int, msg string) *PatternError {
	return &PatternError{Pos: pos, Msg: msg}
}
