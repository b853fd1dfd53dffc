// Package keypath parses the dot-separated path expressions used to address
// values inside a yamlstore.
//
// A keypath has the form "a.b.c", where "a", "b", and "c" are components and
// "." is the delimiter. Component 0 selects a document; the remaining
// components navigate into the document's parsed tree. Surrounding spaces are
// trimmed from each component, so " a . b " parses the same as "a.b".
//
// A keypath is invalid when it is empty, when any component is empty (the
// delimiter may not appear twice in a row or at either end), or when a
// component contains a path separator.
package keypath

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter separates keypath components.
const Delimiter = "."

// invalidChars are rejected inside a component. Dots cannot survive the
// split, so only separators need an explicit check.
const invalidChars = `/\`

var (
	// ErrEmpty is returned when the keypath has no components at all.
	ErrEmpty = errors.New("empty keypath")

	// ErrInvalid is returned when the keypath contains separators or empty
	// components.
	ErrInvalid = errors.New("keypath contains separators or empty components")
)

// KeyPath is a parsed keypath: a document selector followed by zero or more
// navigation segments. The zero value is not valid; construct with Parse.
type KeyPath struct {
	components []string
}

// Parse splits raw on the delimiter, trims each component, and validates the
// result. It returns ErrEmpty for blank input and ErrInvalid for structurally
// bad input.
func Parse(raw string) (KeyPath, error) {
	if strings.TrimSpace(raw) == "" {
		return KeyPath{}, ErrEmpty
	}
	parts := strings.Split(raw, Delimiter)
	components := make([]string, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || strings.ContainsAny(p, invalidChars) {
			return KeyPath{}, fmt.Errorf("%w: %q", ErrInvalid, raw)
		}
		components[i] = p
	}
	return KeyPath{components: components}, nil
}

// Selector returns the document selector (component 0).
func (k KeyPath) Selector() string {
	return k.components[0]
}

// Segments returns the navigation segments following the selector. The
// returned slice is empty for a selector-only keypath.
func (k KeyPath) Segments() []string {
	return k.components[1:]
}

// Components returns a copy of every component, selector included.
func (k KeyPath) Components() []string {
	out := make([]string, len(k.components))
	copy(out, k.components)
	return out
}

// Prefix returns the canonical form of the first n components joined by the
// delimiter: the portion of the keypath consumed once n components have been
// applied.
func (k KeyPath) Prefix(n int) string {
	return strings.Join(k.components[:n], Delimiter)
}

// String returns the canonical (trimmed) form of the keypath.
func (k KeyPath) String() string {
	return strings.Join(k.components, Delimiter)
}
