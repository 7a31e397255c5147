// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

//go:build !windows

package globtrail

// pathSeparator is the platform's primary path separator used when
// compiling the "any-sequence" token to a regex character class.
const pathSeparator rune = '/'

// isSeparator reports whether r splits a pattern into path components.
func isSeparator(r rune) bool {
	return r == '/'
}
