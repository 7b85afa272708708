// internal/app/system/normalize/normalize.go

// Package normalize provides canonical forms for user-entered fields so
// lookups and unique indexes behave predictably.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are stored and
// queried in this form so the unique index is effectively case-insensitive.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Slug lowercases, trims, and replaces interior whitespace runs with a
// single hyphen. Used for work/project slugs when the client omits one.
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}
