// Package provider defines the identity value objects for external gallery providers.
package provider

import (
	"strings"
	"unicode"
)

// Name is the normalized identifier of an external provider.
// The zero value is invalid; construct through NewName.
type Name struct {
	value string
}

// Normalize lowercases the trimmed input and strips every non-alphanumeric rune.
// Normalization is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewName validates and normalizes a raw provider name.
func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, ErrEmptyName
	}

	normalized := Normalize(raw)
	if normalized == "" {
		return Name{}, ErrNameNormalizesToEmpty
	}

	return Name{value: normalized}, nil
}

// String returns the normalized form.
func (n Name) String() string {
	return n.value
}

// IsZero reports whether the name was never constructed through NewName.
func (n Name) IsZero() bool {
	return n.value == ""
}

// EqualString compares the name against a raw string by fully normalizing
// the right-hand side first, so "DeviantArt" and "deviant-art!" both match
// the name constructed from either of them.
func (n Name) EqualString(raw string) bool {
	return n.value == Normalize(raw)
}
