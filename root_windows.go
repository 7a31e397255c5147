// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

//go:build windows

package globtrail

import (
	"os"
	"path/filepath"
	"strings"
)

// extractRoot splits off the platform-specific root of pattern: a drive
// letter (`C:\`), a UNC share (`\\server\share\`), or a leading separator
// meaning "this drive's root". A verbatim-prefixed pattern (`\\?\...`) is
// rejected outright — see SPEC_FULL.md's SUPPLEMENTED FEATURES #3 on
// Windows verbatim paths, which this package does not attempt to support.
func extractRoot(pattern string) (string, int, error) {
	if strings.HasPrefix(pattern, `\\?\`) {
		return "", 0, ErrUnsupportedPattern
	}

	vol := filepath.VolumeName(pattern)
	if vol == "" {
		if len(pattern) > 0 && isSeparator(rune(pattern[0])) {
			return string(pattern[0]), 1, nil
		}
		return "", 0, nil
	}

	rest := pattern[len(vol):]
	if len(rest) > 0 && isSeparator(rune(rest[0])) {
		return vol + string(rest[0]), len(vol) + 1, nil
	}

	// Volume-relative pattern, e.g. "C:assets/*.paa": resolve the root
	// against the current working directory rather than assuming the
	// drive's own root.
	cwd, err := os.Getwd()
	if err != nil {
		return "", 0, err
	}
	return cwd, len(vol), nil
}
