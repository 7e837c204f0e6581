// Package validator enforces the acceptance rules for the four
// categories of user-supplied strings: free-form chat messages,
// usernames, passwords and email addresses.
//
// Each validator is pure and stateless, returning a Result with a fixed
// human-readable reason on rejection:
//
//	res := validator.ValidateChatInput(raw)
//	if !res.Valid {
//	    // surface res.Error to the client, e.g. as a 422
//	}
//
// Chat messages are validated against their sanitized form (see the
// sanitizer package) and must be persisted sanitized. Username,
// password and email validators judge the original string and never
// transform it.
//
// Underneath, checks are expressed as Rule values evaluated either in
// order with short-circuiting (the per-field validators) or all at once
// via Apply, which collects every failure into ValidationErrors for
// multi-field forms.
//
// All thresholds (message length 4000, special-character ratio 0.5,
// repeated-run limit 11, username 3–50, password 8–128, email 254) are
// fixed behavioral contracts.
package validator
