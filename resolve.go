package yamlstore

import (
	"strconv"

	"github.com/agentic-research/yamlstore/keypath"
)

// Resolve parses path, loads the selected document, and walks the navigation
// segments, returning the resolved node before any typed conversion. A
// selector-only keypath resolves to the document's root node.
func (ds *Datastore) Resolve(path string) (Value, error) {
	kp, err := keypath.Parse(path)
	if err != nil {
		return Value{}, err
	}
	root, err := ds.load(kp.Selector())
	if err != nil {
		return Value{}, err
	}
	return walk(root, kp)
}

// walk applies the navigation segments left to right. The current node's
// variant alone decides how a segment is interpreted: a key for mappings, an
// index for sequences, and a terminal error for scalars.
func walk(root Value, kp keypath.KeyPath) (Value, error) {
	cur := root
	for i, seg := range kp.Segments() {
		// Prefix over components: selector plus the i segments already applied.
		consumed := kp.Prefix(i + 1)
		switch cur.Kind() {
		case Mapping:
			next, ok := cur.Lookup(seg)
			if !ok {
				return Value{}, &NavigationError{Segment: seg, Path: consumed, reason: ErrKeyNotFound}
			}
			cur = next
		case Sequence:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 {
				return Value{}, &NavigationError{Segment: seg, Path: consumed, reason: ErrNotAnIndex}
			}
			next, ok := cur.Index(idx)
			if !ok {
				return Value{}, &NavigationError{Segment: seg, Path: consumed, Len: cur.Len(), reason: ErrIndexOutOfBounds}
			}
			cur = next
		case Null, Bool, Int, Float, String:
			return Value{}, &NavigationError{Segment: seg, Path: consumed, reason: ErrCannotDescend}
		}
	}
	return cur, nil
}

// Get resolves path and decodes the result into T: scalars into the matching
// primitive, mappings into structs or maps, sequences into slices. It returns
// the first failure from any stage, tagged with the originating keypath.
func Get[T any](ds *Datastore, path string) (T, error) {
	var out T
	v, err := ds.Resolve(path)
	if err != nil {
		return out, err
	}
	if err := v.decode(&out, path); err != nil {
		return out, err
	}
	return out, nil
}

// GetString resolves path to a string.
func (ds *Datastore) GetString(path string) (string, error) {
	return Get[string](ds, path)
}

// GetBool resolves path to a bool.
func (ds *Datastore) GetBool(path string) (bool, error) {
	return Get[bool](ds, path)
}

// GetInt resolves path to an int64.
func (ds *Datastore) GetInt(path string) (int64, error) {
	return Get[int64](ds, path)
}

// GetUint resolves path to a uint64.
func (ds *Datastore) GetUint(path string) (uint64, error) {
	return Get[uint64](ds, path)
}

// GetFloat resolves path to a float64.
func (ds *Datastore) GetFloat(path string) (float64, error) {
	return Get[float64](ds, path)
}
