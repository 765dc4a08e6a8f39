package kernel

import "strings"

// Optional trims s and returns nil when nothing is left.
// Optional text fields (email, address, description, instructions) are stored as NULL when empty.
func Optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Deref returns the pointed-to string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
