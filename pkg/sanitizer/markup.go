package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sanitize strips dangerous markup and URL schemes from untrusted text
// and trims surrounding whitespace. The removal table is applied
// repeatedly until a full pass removes nothing, because stripping one
// construct can unmask another ("<scr<script>ipt>").
//
// Sanitize is idempotent and never fails on malformed markup. It is a
// denylist pass, not a complete XSS defense: content outside the listed
// patterns (SVG vectors, CSS expressions, mutation XSS) survives.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	// Every productive pass strictly shortens the string, so a fixed
	// point is always reached within len(s) passes. The bound makes the
	// loop total without ever returning a partially scrubbed result.
	for limit := len(s); limit > 0; limit-- {
		before := len(s)
		for _, p := range markupPatterns {
			s = p.re.ReplaceAllString(s, "")
		}
		if len(s) == before {
			break
		}
	}

	return strings.TrimSpace(s)
}

// RemoveNullBytes removes null bytes that could cause issues in C-based systems.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// NormalizeUnicode applies NFKC normalization, folding fullwidth and
// compatibility forms into their canonical equivalents before pattern
// matching. Intended for boundary preprocessing, not part of Sanitize.
func NormalizeUnicode(s string) string {
	return norm.NFKC.String(s)
}
