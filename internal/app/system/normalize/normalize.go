// internal/app/system/normalize/normalize.go

// Package normalize holds the field-normalization rules applied before
// anything is persisted, so lookups and unique indexes behave
// case-insensitively without collation tricks.
package normalize

import "strings"

// Email lowercases and trims an email address. Lookup and storage must
// both go through this so the unique index on admins.email is effectively
// case-insensitive.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
