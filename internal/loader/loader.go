// Package loader locates, reads, and parses the YAML documents backing a
// store. It owns file selection and I/O plus error translation; text-to-tree
// parsing is delegated to the YAML library.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"
)

// DefaultExtensions lists the recognized document file extensions in probe
// order. The first existing file wins.
var DefaultExtensions = []string{"yaml", "yml"}

var (
	// ErrInvalidSelector is returned for selectors that are empty, contain
	// path separators, or start with a dot. Checked before any filesystem
	// access.
	ErrInvalidSelector = errors.New("invalid document selector")

	// ErrNotFound is returned when no file with a recognized extension backs
	// the selector.
	ErrNotFound = errors.New("document not found")

	// ErrParse is returned (wrapped in a ParseError) when a document exists
	// but its content is not well-formed YAML.
	ErrParse = errors.New("document parse failure")
)

// ParseError reports a document whose content failed to parse. The underlying
// YAML error is preserved in Cause.
type ParseError struct {
	Selector string
	Cause    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse document %q: %v", e.Selector, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Is reports ErrParse so callers can match the failure stage without
// unwrapping into the YAML library's error types.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Loader resolves document selectors to files inside a single store root.
type Loader struct {
	fs   billy.Filesystem
	exts []string
}

// New returns a Loader over fs. A nil or empty extension list means
// DefaultExtensions.
func New(fs billy.Filesystem, extensions []string) *Loader {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Loader{fs: fs, exts: extensions}
}

// ValidateSelector rejects selectors that could name a file outside the store
// root. It must pass before any filesystem access.
func ValidateSelector(selector string) error {
	switch {
	case selector == "":
		return fmt.Errorf("%w: empty", ErrInvalidSelector)
	case strings.ContainsAny(selector, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidSelector, selector)
	case strings.HasPrefix(selector, "."):
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidSelector, selector)
	}
	return nil
}

// Stat resolves selector to its backing file, trying each recognized
// extension in order, and returns the winning filename with its FileInfo.
// It fails with ErrNotFound when no candidate exists.
func (l *Loader) Stat(selector string) (string, os.FileInfo, error) {
	if err := ValidateSelector(selector); err != nil {
		return "", nil, err
	}
	for _, ext := range l.exts {
		name := selector + "." + ext
		info, err := l.fs.Stat(name)
		if err == nil {
			return name, info, nil
		}
		if !os.IsNotExist(err) {
			return "", nil, fmt.Errorf("stat %s: %w", name, err)
		}
	}
	return "", nil, fmt.Errorf("%w: %q", ErrNotFound, selector)
}

// Load locates, reads, and parses the document for selector, returning the
// document's root node unmodified. Any YAML-representable root is accepted;
// an empty file yields a zero node.
func (l *Loader) Load(selector string) (*yaml.Node, error) {
	name, _, err := l.Stat(selector)
	if err != nil {
		return nil, err
	}
	f, err := l.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open document %q: %w", selector, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", selector, err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Selector: selector, Cause: err}
	}
	return &doc, nil
}

// List returns the selectors of all eligible documents in the store root,
// sorted alphabetically. A selector backed by more than one extension is
// reported once; files whose stem would not validate as a selector (hidden
// files, for instance) are skipped.
func (l *Loader) List() ([]string, error) {
	entries, err := l.fs.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("list store: %w", err)
	}
	seen := make(map[string]bool)
	var selectors []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, ext := range l.exts {
			suffix := "." + ext
			if !strings.HasSuffix(e.Name(), suffix) {
				continue
			}
			stem := strings.TrimSuffix(e.Name(), suffix)
			if seen[stem] || ValidateSelector(stem) != nil {
				break
			}
			seen[stem] = true
			selectors = append(selectors, stem)
			break
		}
	}
	sort.Strings(selectors)
	return selectors, nil
}
