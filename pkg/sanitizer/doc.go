// Package sanitizer scrubs untrusted text before it is displayed or
// stored, removing a fixed denylist of dangerous markup constructs:
//
//   - Dangerous URL schemes (javascript:, vbscript:, data:, file:),
//     matched case-insensitively and tolerant of whitespace inserted
//     between the literal characters.
//
//   - Dangerous tag names (script, iframe, object, embed, applet, meta,
//     link, style, form, input, button, textarea, select, base), both
//     opening and closing forms.
//
//   - Whole script and style element bodies, covering content that
//     tag stripping misses when the opening tag is malformed.
//
//   - Inline event-handler attributes (onclick=..., onload=..., and any
//     other on*-attribute), whether the value is quoted or bare.
//
// The denylist itself is data: an embedded YAML document compiled once
// at package load into an immutable pattern table driving a single
// generic repeat-until-fixed-point engine.
//
// # Usage
//
//	safe := sanitizer.Sanitize(userInput)
//
// Boundary helpers such as RemoveNullBytes and NormalizeUnicode can be
// chained ahead of Sanitize with the Apply and Compose pipeline
// helpers:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveNullBytes,
//	    sanitizer.NormalizeUnicode,
//	)
//
// # Error handling
//
// None of the helpers returns an error. Malformed markup is processed
// conservatively and never causes a panic.
//
// # Security model
//
// This is denylist sanitization: known-bad patterns are removed rather
// than known-good ones admitted. It is not a substitute for a full
// allow-list HTML sanitizer and cannot be complete against novel
// encodings. Callers that render HTML should escape output as well.
//
// The package is stateless and safe for concurrent use; each call reads
// only its own argument.
package sanitizer
