// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

//go:build windows

package globtrail

// pathSeparator is the platform's primary path separator used when
// compiling the "any-sequence" token to a regex character class.
const pathSeparator rune = '\\'

// isSeparator reports whether r splits a pattern into path components.
// Windows patterns accept both `/` and `\` as separators, matching how
// Windows paths are written in practice; generalizing beyond what this
// reports is left unspecified (see the Open Question decisions in
// SPEC_FULL.md).
func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}
