package domain

import "unique"

// InternedName is a value object that wraps a unique.Handle[string].
// Project names repeat across every dependency entry, manifest bundle and
// graph key, so interning them keeps the snapshot compact and makes
// equality a pointer comparison.
type InternedName struct {
	h unique.Handle[string]
}

// NewInternedName creates a new InternedName from a string.
func NewInternedName(s string) InternedName {
	return InternedName{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (n InternedName) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (n InternedName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *InternedName) UnmarshalText(text []byte) error {
	n.h = unique.Make(string(text))
	return nil
}
