// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold maps UTF-8 text to character codes a font table can render.
// Accents are stripped by decomposing and dropping nonspacing marks;
// any remaining rune outside First..Last becomes '?'.
func Fold(s string) []byte {
	if isPrintableASCII(s) {
		return []byte(s)
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	out := make([]byte, 0, len(folded))
	for _, r := range folded {
		if r < First || r > Last {
			r = '?'
		}
		out = append(out, byte(r))
	}
	return out
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < First || s[i] > Last {
			return false
		}
	}
	return true
}
