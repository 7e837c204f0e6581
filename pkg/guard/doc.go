// Package guard wires the sanitizer and validator packages into the
// boundary a web-facing handler calls before accepting user input.
//
//	g := guard.New()
//
//	clean, res := g.ChatMessage(body.Message)
//	if !res.Valid {
//	    // 4xx with res.Error
//	}
//	store(clean) // the sanitized form, not the raw input
//
// Identity fields (username, email, password) are judged as-is and the
// original string is used on acceptance. Every entry point rejects raw
// input larger than the configured byte cap with the distinct
// "Input is too large" verdict before any pattern matching runs.
package guard
