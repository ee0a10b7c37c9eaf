// Package ptr holds small helpers for the optional (*string) fields of the
// canonical model, where nil means "not supplied by any source".
package ptr

// To creates a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// String creates a pointer to the given string value.
func String(s string) *string {
	return &s
}

// NonEmpty returns nil for the empty string, so blank spreadsheet cells
// stay absent instead of overwriting earlier values.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string, or "" when p is nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// IsSet reports whether p holds a non-empty value.
func IsSet(p *string) bool {
	return p != nil && *p != ""
}
