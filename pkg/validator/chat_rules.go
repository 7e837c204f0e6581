package validator

import (
	"strings"
	"unicode"

	"github.com/guardkit/guardkit/pkg/sanitizer"
)

// Fixed behavioral contracts, not tunables. Changing any of these is a
// product decision, not a bug fix.
const (
	maxChatMessageRunes = 4000
	maxSpecialCharRatio = 0.5
	repeatedRunLimit    = 11
)

// chatPunctuation is the punctuation that does not count toward the
// special-character ratio.
const chatPunctuation = `.,!?;:()-'"`

// ValidateChatInput sanitizes a chat message and applies anti-abuse
// heuristics to the sanitized form, short-circuiting on the first
// failing rule. Callers that accept the message must persist the
// sanitized string, not the raw input.
func ValidateChatInput(input string) Result {
	s := sanitizer.Sanitize(input)
	return first(
		notBlank("message", s, "Message cannot be empty"),
		maxRunes("message", s, maxChatMessageRunes, "Message too long (maximum 4000 characters)"),
		chatSpecialCharRatio(s),
		chatRepeatedRun(s),
	)
}

func chatSpecialCharRatio(s string) Rule {
	return Rule{
		Check: func() bool {
			total, special := 0, 0
			for _, r := range s {
				total++
				if !isChatPlain(r) {
					special++
				}
			}
			if total == 0 {
				return true
			}
			return float64(special)/float64(total) <= maxSpecialCharRatio
		},
		Error: ValidationError{Field: "message", Message: "Message contains too many special characters"},
	}
}

func isChatPlain(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case unicode.IsSpace(r):
		return true
	}
	return strings.ContainsRune(chatPunctuation, r)
}

func chatRepeatedRun(s string) Rule {
	return Rule{
		Check: func() bool {
			return longestRun(s) < repeatedRunLimit
		},
		Error: ValidationError{Field: "message", Message: "Message contains excessive repeated characters"},
	}
}

// longestRun returns the length of the longest unbroken run of a single
// rune. A linear scan because RE2 has no backreferences.
func longestRun(s string) int {
	var prev rune
	run, longest := 0, 0
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
