// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

package globtrail

// charSpecifier describes one member of a bracket class: either a single
// rune, or an inclusive range [lo, hi].
type charSpecifier struct {
	lo, hi  rune
	isRange bool
}

func singleChar(c rune) charSpecifier {
	return charSpecifier{lo: c, hi: c}
}

func charRange(lo, hi rune) charSpecifier {
	return charSpecifier{lo: lo, hi: hi, isRange: true}
}

// parseCharClass turns the body of a bracket class (already stripped of the
// surrounding `[`/`]` and any leading `!` negation marker) into a list of
// char specifiers.
//
// Scans left to right: when three runes remain and the middle one is `-`,
// it emits a range and advances by three; otherwise it emits a singleton
// and advances by one. A `-` at either edge of the body therefore collapses
// to a literal singleton on its own, with no special-casing needed. There
// is no validation that lo <= hi in a range.
func parseCharClass(chars []rune) []charSpecifier {
	specs := make([]charSpecifier, 0, len(chars))

	for i := 0; i < len(chars); {
		if i+3 <= len(chars) && chars[i+1] == '-' {
			specs = append(specs, charRange(chars[i], chars[i+2]))
			i += 3
			continue
		}

		specs = append(specs, singleChar(chars[i]))
		i++
	}

	return specs
}
