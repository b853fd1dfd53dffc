package yamlstore

import (
	"errors"
	"fmt"

	"github.com/agentic-research/yamlstore/internal/loader"
	"github.com/agentic-research/yamlstore/keypath"
)

// Sentinel errors, matchable with errors.Is on any failure returned from a
// query. Each corresponds to one stage of resolution: keypath parsing,
// document lookup, document parsing, tree navigation, or typed conversion.
var (
	// ErrEmptyKeypath is returned for a keypath with no components.
	ErrEmptyKeypath = keypath.ErrEmpty

	// ErrInvalidKeypath is returned for a keypath with empty components or
	// components containing path separators.
	ErrInvalidKeypath = keypath.ErrInvalid

	// ErrInvalidSelector is returned when the document selector could name a
	// file outside the store root. Checked before any filesystem access.
	ErrInvalidSelector = loader.ErrInvalidSelector

	// ErrDocumentNotFound is returned when no file backs the selector.
	ErrDocumentNotFound = loader.ErrNotFound

	// ErrParse is returned when a document exists but is not well-formed
	// YAML. The concrete error is a *loader.ParseError carrying the selector
	// and the underlying cause.
	ErrParse = loader.ErrParse

	// ErrKeyNotFound is returned when a mapping has no entry for a segment.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNotAnIndex is returned when a segment applied to a sequence does
	// not parse as a non-negative integer.
	ErrNotAnIndex = errors.New("segment is not a sequence index")

	// ErrIndexOutOfBounds is returned when a sequence index is past the end.
	ErrIndexOutOfBounds = errors.New("sequence index out of bounds")

	// ErrCannotDescend is returned when navigation reaches a scalar with
	// segments remaining.
	ErrCannotDescend = errors.New("cannot descend into scalar")

	// ErrTypeMismatch is returned when the resolved node cannot be decoded
	// into the requested type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// NavigationError reports a failed walk step: the offending segment and the
// keypath prefix consumed before the failure. Unwrap yields the sentinel for
// the specific failure mode.
type NavigationError struct {
	Segment string // segment that could not be applied
	Path    string // keypath prefix consumed so far, selector included
	Len     int    // sequence length, for ErrIndexOutOfBounds
	reason  error
}

func (e *NavigationError) Error() string {
	switch e.reason {
	case ErrKeyNotFound:
		return fmt.Sprintf("key %q not found under %q", e.Segment, e.Path)
	case ErrNotAnIndex:
		return fmt.Sprintf("segment %q is not a sequence index under %q", e.Segment, e.Path)
	case ErrIndexOutOfBounds:
		return fmt.Sprintf("index %s out of bounds under %q (length %d)", e.Segment, e.Path, e.Len)
	case ErrCannotDescend:
		return fmt.Sprintf("cannot descend into scalar %q with segment %q remaining", e.Path, e.Segment)
	}
	return fmt.Sprintf("cannot apply segment %q under %q", e.Segment, e.Path)
}

func (e *NavigationError) Unwrap() error { return e.reason }

// TypeMismatchError reports a resolved node that could not be decoded into
// the requested type.
type TypeMismatchError struct {
	Expected string // requested Go type
	Actual   Kind   // variant of the resolved node
	Path     string // originating keypath, when known
	cause    error
}

func (e *TypeMismatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot decode %s node into %s: %v", e.Actual, e.Expected, e.cause)
	}
	return fmt.Sprintf("cannot decode %s node into %s at %q: %v", e.Actual, e.Expected, e.Path, e.cause)
}

func (e *TypeMismatchError) Unwrap() error { return e.cause }

// Is reports ErrTypeMismatch so the failure stage stays matchable while
// Unwrap preserves the decoder's diagnostic.
func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// ParseError is the concrete type behind ErrParse failures.
type ParseError = loader.ParseError
