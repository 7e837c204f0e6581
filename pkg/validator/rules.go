package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// notBlank fails on empty or whitespace-only values.
func notBlank(field, value, message string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{Field: field, Message: message},
	}
}

// notEmpty fails only on the empty string. Whitespace counts as
// content; used for passwords, which are never trimmed or rewritten.
func notEmpty(field, value, message string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{Field: field, Message: message},
	}
}

func minRunes(field, value string, min int, message string) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{Field: field, Message: message},
	}
}

func maxRunes(field, value string, max int, message string) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{Field: field, Message: message},
	}
}

func matches(field, value string, re *regexp.Regexp, message string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: message},
	}
}
