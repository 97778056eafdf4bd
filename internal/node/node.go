// Package node defines the in-memory representation of a JSON document:
// a tagged union over the seven JSON value kinds, with kind predicates,
// kind-checked accessors and deep equality. Nodes are immutable once built.
package node

import (
	"fmt"

	"github.com/mcncl/jsontree/internal/errors"
)

// Kind identifies which variant of the union a Node holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindArray
	KindObject
)

// String returns the lowercase name of the kind, for error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Array is an ordered sequence of nodes.
type Array []Node

// Object maps string keys to nodes. Key order is not significant for
// equality; the printer emits entries in lexicographic key order.
type Object map[string]Node

// Node is a JSON value. Exactly one variant is active, identified by the
// kind tag. Int and Double are distinct variants even when numerically
// equal, so the integer-vs-float textual form survives a load/print cycle.
// The zero value is the null node.
type Node struct {
	kind Kind
	b    bool
	i    int32
	d    float64
	s    string
	arr  Array
	obj  Object
}

// NewNull creates a null node. Equivalent to the zero value.
func NewNull() Node {
	return Node{kind: KindNull}
}

// NewBool creates a boolean node.
func NewBool(v bool) Node {
	return Node{kind: KindBool, b: v}
}

// NewInt creates an integer node.
func NewInt(v int32) Node {
	return Node{kind: KindInt, i: v}
}

// NewDouble creates a floating-point node.
func NewDouble(v float64) Node {
	return Node{kind: KindDouble, d: v}
}

// NewString creates a string node.
func NewString(v string) Node {
	return Node{kind: KindString, s: v}
}

// NewArray creates an array node holding the given elements.
func NewArray(items Array) Node {
	return Node{kind: KindArray, arr: items}
}

// NewObject creates an object node holding the given entries.
func NewObject(entries Object) Node {
	return Node{kind: KindObject, obj: entries}
}

// Kind returns the active variant's tag.
func (n Node) Kind() Kind {
	return n.kind
}

// IsNull reports whether the node is the null value.
func (n Node) IsNull() bool { return n.kind == KindNull }

// IsBool reports whether the node holds a boolean.
func (n Node) IsBool() bool { return n.kind == KindBool }

// IsInt reports whether the node holds an integer.
func (n Node) IsInt() bool { return n.kind == KindInt }

// IsDouble reports whether the node is double-convertible: true for both
// the Double and Int variants.
func (n Node) IsDouble() bool { return n.kind == KindDouble || n.kind == KindInt }

// IsPureDouble reports whether the node holds a floating-point value,
// excluding integers.
func (n Node) IsPureDouble() bool { return n.kind == KindDouble }

// IsString reports whether the node holds a string.
func (n Node) IsString() bool { return n.kind == KindString }

// IsArray reports whether the node holds an array.
func (n Node) IsArray() bool { return n.kind == KindArray }

// IsObject reports whether the node holds an object.
func (n Node) IsObject() bool { return n.kind == KindObject }

// AsBool returns the boolean payload, or a type-mismatch error.
func (n Node) AsBool() (bool, error) {
	if !n.IsBool() {
		return false, n.typeError("not a bool")
	}
	return n.b, nil
}

// AsInt returns the integer payload, or a type-mismatch error.
func (n Node) AsInt() (int32, error) {
	if !n.IsInt() {
		return 0, n.typeError("not an int")
	}
	return n.i, nil
}

// AsDouble returns the floating-point payload. An Int node is widened to
// double; any other kind is a type-mismatch error.
func (n Node) AsDouble() (float64, error) {
	if n.IsInt() {
		return float64(n.i), nil
	}
	if !n.IsPureDouble() {
		return 0, n.typeError("not a double")
	}
	return n.d, nil
}

// AsString returns the string payload, or a type-mismatch error.
func (n Node) AsString() (string, error) {
	if !n.IsString() {
		return "", n.typeError("not a string")
	}
	return n.s, nil
}

// AsArray returns the array payload, or a type-mismatch error. The
// returned slice must not be modified.
func (n Node) AsArray() (Array, error) {
	if !n.IsArray() {
		return nil, n.typeError("not an array")
	}
	return n.arr, nil
}

// AsObject returns the object payload, or a type-mismatch error. The
// returned map must not be modified.
func (n Node) AsObject() (Object, error) {
	if !n.IsObject() {
		return nil, n.typeError("not an object")
	}
	return n.obj, nil
}

func (n Node) typeError(message string) error {
	return errors.NewTypeError(
		fmt.Sprintf("%s (node kind is %s)", message, n.kind),
		errors.ErrTypeMismatch,
	)
}

// Equal reports deep equality. Two nodes are equal iff their kinds match
// and their payloads are equal; arrays elementwise, objects by key set and
// per-key value. Int(5) and Double(5.0) are not equal.
func (n Node) Equal(rhs Node) bool {
	if n.kind != rhs.kind {
		return false
	}
	switch n.kind {
	case KindNull:
		return true
	case KindBool:
		return n.b == rhs.b
	case KindInt:
		return n.i == rhs.i
	case KindDouble:
		return n.d == rhs.d
	case KindString:
		return n.s == rhs.s
	case KindArray:
		return arraysEqual(n.arr, rhs.arr)
	case KindObject:
		return objectsEqual(n.obj, rhs.obj)
	default:
		return false
	}
}

// EqualArray reports whether the node is an array equal to a.
func (n Node) EqualArray(a Array) bool {
	return n.IsArray() && arraysEqual(n.arr, a)
}

// EqualObject reports whether the node is an object equal to o.
func (n Node) EqualObject(o Object) bool {
	return n.IsObject() && objectsEqual(n.obj, o)
}

func arraysEqual(a, b Array) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func objectsEqual(a, b Object) bool {
	if len(a) != len(b) {
		return false
	}
	for key, av := range a {
		bv, ok := b[key]
		if !ok || !av.Equal(bv) {
			return false
		}
	}
	return true
}
