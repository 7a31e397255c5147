// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

// Package globtrail implements a shell-style filesystem globbing library.
//
// Given a pattern such as "src/**/*.go", the package lazily enumerates the
// filesystem paths that satisfy it, relative to a scope derived from the
// pattern itself (an extracted root) or the current working directory.
//
// Basic flow:
//   - compile a standalone pattern for string/path matching (`Compile`)
//   - or glob a filesystem tree directly (`Glob`)
//   - pull matches one at a time from the returned `*Paths` (`Paths.Next`)
//   - stop pulling whenever you've seen enough; there is nothing to close
//
// Pattern syntax: `?` matches one character, `*` matches zero or more
// characters within a single path component, `**` matches zero or more whole
// path components, and `[...]`/`[!...]` are character classes. See
// `Compile` and `Escape` for the exact rules.
package globtrail
