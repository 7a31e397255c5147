// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

package globtrail

import "path/filepath"

// dirWalker is a resumable depth-first directory walk with one-step
// lookahead. Only directories are ever pushed onto the stack (the root is
// required to already be one — see newDirWalker's callers), so every path
// it yields is itself a directory; a Recursive selector relies on that to
// skip a separate directory-only filter at the Terminating hand-off.
type dirWalker struct {
	stack  []string
	peeked *string
}

// newDirWalker starts a walk rooted at root. Callers must only call this
// once fsIsDir(root) is known to hold.
func newDirWalker(root string) *dirWalker {
	return &dirWalker{stack: []string{root}}
}

// peek returns the next directory without consuming it.
func (w *dirWalker) peek() (string, bool) {
	if w.peeked == nil {
		v, ok := w.advance()
		if !ok {
			return "", false
		}
		w.peeked = &v
	}
	return *w.peeked, true
}

// next consumes and returns the next directory.
func (w *dirWalker) next() (string, bool) {
	if w.peeked != nil {
		v := *w.peeked
		w.peeked = nil
		return v, true
	}
	return w.advance()
}

// advance pops one directory off the stack, pushes every subdirectory it
// contains, and returns the popped path. A listing that fails to read is
// treated as empty — the affected subtree is silently skipped rather than
// surfaced as an error, per the package's absorbed-I/O-error policy.
func (w *dirWalker) advance() (string, bool) {
	if len(w.stack) == 0 {
		return "", false
	}

	n := len(w.stack) - 1
	dir := w.stack[n]
	w.stack = w.stack[:n]

	if names, err := fsListNames(dir); err == nil {
		for _, name := range names {
			full := filepath.Join(dir, name)
			if fsIsDir(full) {
				w.stack = append(w.stack, full)
			}
		}
	}

	return dir, true
}
