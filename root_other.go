// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

//go:build !windows

package globtrail

// extractRoot splits off the platform-specific root of pattern: on Unix,
// a single leading `/` is the whole root, and everything is relative to
// the working directory otherwise. It returns the root (empty string for
// a relative pattern), the number of bytes of pattern it consumed, and an
// error for roots this package does not support.
func extractRoot(pattern string) (string, int, error) {
	if len(pattern) > 0 && pattern[0] == '/' {
		return "/", 1, nil
	}
	return "", 0, nil
}
