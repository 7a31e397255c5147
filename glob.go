// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

package globtrail

// Paths is a lazy, resumable iterator over the filesystem paths matching a
// pattern compiled by Glob. It holds no buffered results: each call to
// Next walks exactly as much of the filesystem as needed to produce one
// more match, resuming from the selector chain's own bookkeeping.
type Paths struct {
	scope    string
	selector *selectorNode
	dirOnly  bool
	done     bool
}

// Glob compiles pattern and returns a Paths iterator over every existing
// filesystem entry it matches. The pattern's platform-specific root (a
// leading `/` on Unix, a drive or UNC share on Windows) is extracted first
// and used as the traversal's starting scope; what remains is split on
// path separators and compiled component by component.
//
// Glob validates the whole pattern during this call — syntax errors,
// recursive-wildcard misplacement — and returns them immediately rather
// than deferring them to the first call to Next.
func Glob(pattern string) (*Paths, error) {
	root, rootLen, err := extractRoot(pattern)
	if err != nil {
		return nil, err
	}

	scope := "."
	if root != "" {
		scope = root
	}

	remainder := pattern
	if rootLen > 0 && rootLen <= len(pattern) {
		remainder = pattern[rootLen:]
	}

	selector, err := buildSelectorChain(remainder)
	if err != nil {
		return nil, err
	}

	dirOnly := false
	if runes := []rune(pattern); len(runes) > 0 {
		dirOnly = isSeparator(runes[len(runes)-1])
	}

	return &Paths{scope: scope, selector: selector, dirOnly: dirOnly}, nil
}

// Next pulls the next matching path. It reports false once the pattern is
// exhausted; further calls after that continue to report false.
func (p *Paths) Next() (string, bool) {
	if p.done {
		return "", false
	}
	m, ok := p.selector.selectFrom(p.scope, p.dirOnly)
	if !ok {
		p.done = true
	}
	return m, ok
}

// Collect drains the iterator into a slice, in whatever order Next
// produces them (depth-first, but otherwise unspecified — see
// SPEC_FULL.md). It is meant for tests and small, known-bounded trees; a
// caller walking something large should poll Next directly instead.
func (p *Paths) Collect() []string {
	var out []string
	for {
		m, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}
