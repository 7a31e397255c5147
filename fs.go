// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

package globtrail

import "os"

// The functions in this file are the narrow filesystem interface the spec
// treats as an external collaborator: list a directory, test whether a
// path is a directory, test whether a path exists. They call straight into
// os/path-filepath, the same way pathrules' own provider.go does — no VFS
// abstraction layer, because a read-only directory walk has no worktree or
// staged-file concept to abstract over (see the DOMAIN STACK section of
// SPEC_FULL.md).

// fsIsDir reports whether path exists and is a directory.
func fsIsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// fsExists reports whether path exists at all.
func fsExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// fsListNames lists the entry names (not full paths) of a directory. A
// failing read is returned as an error; callers in this package treat that
// as an empty listing and silently skip the subtree, per the spec's
// absorbed-I/O-error policy.
func fsListNames(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names, nil
}
