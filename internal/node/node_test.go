package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsontree/internal/errors"
)

func TestNode_ZeroValueIsNull(t *testing.T) {
	var n Node
	assert.True(t, n.IsNull())
	assert.Equal(t, KindNull, n.Kind())
	assert.True(t, n.Equal(NewNull()))
}

func TestNode_KindPredicates(t *testing.T) {
	tests := []struct {
		name         string
		node         Node
		isNull       bool
		isBool       bool
		isInt        bool
		isDouble     bool
		isPureDouble bool
		isString     bool
		isArray      bool
		isObject     bool
	}{
		{name: "null", node: NewNull(), isNull: true},
		{name: "bool", node: NewBool(true), isBool: true},
		{name: "int", node: NewInt(7), isInt: true, isDouble: true},
		{name: "double", node: NewDouble(7.5), isDouble: true, isPureDouble: true},
		{name: "string", node: NewString("x"), isString: true},
		{name: "array", node: NewArray(Array{NewInt(1)}), isArray: true},
		{name: "object", node: NewObject(Object{"a": NewInt(1)}), isObject: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isNull, tt.node.IsNull())
			assert.Equal(t, tt.isBool, tt.node.IsBool())
			assert.Equal(t, tt.isInt, tt.node.IsInt())
			assert.Equal(t, tt.isDouble, tt.node.IsDouble())
			assert.Equal(t, tt.isPureDouble, tt.node.IsPureDouble())
			assert.Equal(t, tt.isString, tt.node.IsString())
			assert.Equal(t, tt.isArray, tt.node.IsArray())
			assert.Equal(t, tt.isObject, tt.node.IsObject())
		})
	}
}

func TestNode_Accessors(t *testing.T) {
	b, err := NewBool(true).AsBool()
	require.NoError(t, err)
	assert.True(t, b)

	i, err := NewInt(-42).AsInt()
	require.NoError(t, err)
	assert.Equal(t, int32(-42), i)

	d, err := NewDouble(2.5).AsDouble()
	require.NoError(t, err)
	assert.Equal(t, 2.5, d)

	s, err := NewString("hello").AsString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	arr, err := NewArray(Array{NewInt(1), NewInt(2)}).AsArray()
	require.NoError(t, err)
	assert.Len(t, arr, 2)

	obj, err := NewObject(Object{"a": NewNull()}).AsObject()
	require.NoError(t, err)
	assert.Len(t, obj, 1)
}

func TestNode_AsDouble_WidensInt(t *testing.T) {
	d, err := NewInt(3).AsDouble()
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
}

func TestNode_AccessorKindMismatch(t *testing.T) {
	str := NewString("not a container")

	_, err := str.AsArray()
	require.Error(t, err)
	assert.True(t, errors.IsTypeError(err))
	assert.Contains(t, err.Error(), "not an array")

	_, err = str.AsObject()
	assert.True(t, errors.IsTypeError(err))

	_, err = str.AsBool()
	assert.True(t, errors.IsTypeError(err))

	_, err = str.AsInt()
	assert.True(t, errors.IsTypeError(err))

	_, err = str.AsDouble()
	assert.True(t, errors.IsTypeError(err))

	_, err = NewInt(1).AsString()
	assert.True(t, errors.IsTypeError(err))

	// AsInt is strict: a pure double never narrows
	_, err = NewDouble(1.0).AsInt()
	assert.True(t, errors.IsTypeError(err))
}

func TestNode_Equality(t *testing.T) {
	// Variant-sensitive: numerically equal but different kinds
	assert.False(t, NewInt(5).Equal(NewDouble(5.0)))
	assert.False(t, NewDouble(5.0).Equal(NewInt(5)))

	assert.True(t, NewInt(5).Equal(NewInt(5)))
	assert.False(t, NewInt(5).Equal(NewInt(6)))
	assert.True(t, NewDouble(5.0).Equal(NewDouble(5.0)))
	assert.True(t, NewNull().Equal(NewNull()))
	assert.True(t, NewBool(false).Equal(NewBool(false)))
	assert.False(t, NewBool(false).Equal(NewBool(true)))
	assert.True(t, NewString("a").Equal(NewString("a")))
	assert.False(t, NewString("a").Equal(NewString("b")))
	assert.False(t, NewNull().Equal(NewBool(false)))
}

func TestNode_EqualityStructural(t *testing.T) {
	a1 := NewArray(Array{NewInt(1), NewString("x"), NewNull()})
	a2 := NewArray(Array{NewInt(1), NewString("x"), NewNull()})
	a3 := NewArray(Array{NewInt(1), NewString("x")})
	assert.True(t, a1.Equal(a2))
	assert.False(t, a1.Equal(a3))

	o1 := NewObject(Object{"a": NewInt(1), "b": a1})
	o2 := NewObject(Object{"b": a2, "a": NewInt(1)})
	o3 := NewObject(Object{"a": NewInt(1), "b": a3})
	assert.True(t, o1.Equal(o2), "key order must not affect object equality")
	assert.False(t, o1.Equal(o3))
	assert.False(t, o1.Equal(NewObject(Object{"a": NewInt(1)})))

	// Int vs Double matters deep inside containers too
	assert.False(t, NewArray(Array{NewInt(1)}).Equal(NewArray(Array{NewDouble(1)})))
}

func TestNode_EqualArrayAndObject(t *testing.T) {
	arr := Array{NewInt(1), NewInt(2)}
	assert.True(t, NewArray(arr).EqualArray(Array{NewInt(1), NewInt(2)}))
	assert.False(t, NewArray(arr).EqualArray(Array{NewInt(2), NewInt(1)}))
	assert.False(t, NewString("x").EqualArray(arr))

	obj := Object{"k": NewBool(true)}
	assert.True(t, NewObject(obj).EqualObject(Object{"k": NewBool(true)}))
	assert.False(t, NewObject(obj).EqualObject(Object{"k": NewBool(false)}))
	assert.False(t, NewNull().EqualObject(obj))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "string", KindString.String())
}

func TestDocument(t *testing.T) {
	root := NewObject(Object{"a": NewInt(1)})
	doc := NewDocument(root)
	assert.True(t, doc.Root().Equal(root))

	arrDoc := NewArrayDocument(Array{NewInt(1)})
	assert.True(t, arrDoc.Root().IsArray())

	objDoc := NewObjectDocument(Object{"a": NewNull()})
	assert.True(t, objDoc.Root().IsObject())
}
