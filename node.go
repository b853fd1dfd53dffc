package yamlstore

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Kind identifies the variant of a Value node. The set is closed: every node
// of a parsed document is exactly one of these.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Sequence
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// nullNode backs the zero Value so that decoding it behaves like an explicit
// YAML null.
var nullNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}

// Value is one node of a parsed document: a scalar, an ordered sequence, or a
// key-ordered mapping. Values are immutable once built and retain the
// underlying YAML node, so typed conversion keeps the YAML decoder's
// semantics. The zero value is a Null node.
type Value struct {
	kind    Kind
	node    *yaml.Node
	seq     []Value
	keys    []string
	entries map[string]Value
}

// fromYAML builds the Value tree for a parsed document node. Document
// wrappers and aliases are resolved; an empty document becomes Null.
func fromYAML(n *yaml.Node) (Value, error) {
	if n == nil || n.Kind == 0 {
		return Value{}, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Value{}, nil
		}
		return fromYAML(n.Content[0])
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.ScalarNode:
		return Value{kind: scalarKind(n), node: n}, nil
	case yaml.SequenceNode:
		seq := make([]Value, len(n.Content))
		for i, c := range n.Content {
			v, err := fromYAML(c)
			if err != nil {
				return Value{}, err
			}
			seq[i] = v
		}
		return Value{kind: Sequence, node: n, seq: seq}, nil
	case yaml.MappingNode:
		keys := make([]string, 0, len(n.Content)/2)
		entries := make(map[string]Value, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind == yaml.AliasNode {
				k = k.Alias
			}
			key := k.Value
			if _, dup := entries[key]; dup {
				// YAML requires unique keys; the first occurrence wins.
				continue
			}
			v, err := fromYAML(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			keys = append(keys, key)
			entries[key] = v
		}
		return Value{kind: Mapping, node: n, keys: keys, entries: entries}, nil
	}
	return Value{}, fmt.Errorf("unsupported yaml node kind %d", n.Kind)
}

func scalarKind(n *yaml.Node) Kind {
	switch n.Tag {
	case "!!null":
		return Null
	case "!!bool":
		return Bool
	case "!!int":
		return Int
	case "!!float":
		return Float
	default:
		return String
	}
}

// Kind returns the node's variant.
func (v Value) Kind() Kind { return v.kind }

// Len returns the element count of a Sequence or the entry count of a
// Mapping, and -1 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case Sequence:
		return len(v.seq)
	case Mapping:
		return len(v.keys)
	}
	return -1
}

// Index returns the i-th element of a Sequence. The second return is false
// when the node is not a Sequence or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != Sequence || i < 0 || i >= len(v.seq) {
		return Value{}, false
	}
	return v.seq[i], true
}

// Lookup returns the value for key in a Mapping. The second return is false
// when the node is not a Mapping or the key is absent.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != Mapping {
		return Value{}, false
	}
	e, ok := v.entries[key]
	return e, ok
}

// Keys returns the mapping keys in document order, or nil for other variants.
func (v Value) Keys() []string {
	if v.kind != Mapping {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Bool reads a Bool scalar.
func (v Value) Bool() (bool, error) {
	var out bool
	return out, v.Decode(&out)
}

// Int reads an Int scalar.
func (v Value) Int() (int64, error) {
	var out int64
	return out, v.Decode(&out)
}

// Uint reads a non-negative Int scalar.
func (v Value) Uint() (uint64, error) {
	var out uint64
	return out, v.Decode(&out)
}

// Float reads a Float scalar. An Int scalar converts as well, matching the
// YAML decoder.
func (v Value) Float() (float64, error) {
	var out float64
	return out, v.Decode(&out)
}

// Str reads a String scalar.
func (v Value) Str() (string, error) {
	var out string
	return out, v.Decode(&out)
}

// Decode materializes the node into out using the YAML decoder, so a
// Mapping fills a struct or map, a Sequence fills a slice, and scalars fill
// the matching primitive. A variant/type mismatch fails with a
// TypeMismatchError.
func (v Value) Decode(out any) error {
	return v.decode(out, "")
}

func (v Value) decode(out any, path string) error {
	n := v.node
	if n == nil {
		n = nullNode
	}
	if err := n.Decode(out); err != nil {
		return &TypeMismatchError{
			Expected: targetType(out),
			Actual:   v.kind,
			Path:     path,
			cause:    err,
		}
	}
	return nil
}

func targetType(out any) string {
	t := reflect.TypeOf(out)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "any"
	}
	return t.String()
}
