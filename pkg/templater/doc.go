// Package templater provides named placeholder substitution for
// user-facing message templates.
//
// Templates contain tokens of the form {name}, where name consists of word
// characters. Render resolves tokens against a Values map in a single pass,
// with a configurable policy for tokens that have no replacement:
//
//	templater.Render("The {attribute} must be at least {min} characters.",
//		templater.Values{"min": 3}, false)
//	// "The {attribute} must be at least 3 characters."
//
//	templater.Render("The {attribute} must be at least 3 characters.",
//		templater.Values{"attribute": "password"}, true)
//	// "The password must be at least 3 characters."
//
// The two-pass idiom above is how rule messages are built: rule parameters
// are baked in at construction time while {attribute} survives until the
// field's display name is known.
//
// Replacement values that stringify to nothing (nil, "", numeric zero,
// false) are deliberately treated the same as missing keys, so a zero-valued
// parameter never silently blanks out part of a message.
package templater
