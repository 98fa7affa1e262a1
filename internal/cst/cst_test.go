package cst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierNormalization(t *testing.T) {
	// U+0065 U+0301 (e + combining acute) normalizes to U+00E9.
	composed := "café"
	decomposed := "café"

	a := NewIdentifier(composed, NewRange(0, 0, 4))
	b := NewIdentifier(decomposed, NewRange(0, 10, 15))
	assert.Equal(t, a.Name, b.Name)
}

func TestQualifiedIdentifierString(t *testing.T) {
	id := NewQualifiedIdentifier(
		[]string{"A", "B"}, "c",
		[]Range{NewRange(0, 0, 1), NewRange(0, 3, 4)},
		NewRange(0, 6, 7),
	)
	assert.True(t, id.IsQualified())
	assert.Equal(t, "A::B::c", id.String())
	assert.Equal(t, "x", NewIdentifier("x", NewRange(0, 0, 1)).String())
}

func TestIdentifierClone(t *testing.T) {
	id := NewQualifiedIdentifier(
		[]string{"A"}, "b",
		[]Range{NewRange(0, 0, 1)},
		NewRange(0, 3, 4),
	)
	clone := id.Clone()
	clone.NNS[0] = "Z"
	assert.Equal(t, "A", id.NNS[0])
	assert.Equal(t, id.Name, clone.Name)
}

func TestConcatRanges(t *testing.T) {
	a := NewRange(0, 10, 15)
	b := NewRange(0, 20, 25)
	merged := ConcatRanges(a, b)
	assert.Equal(t, NewRange(0, 10, 25), merged)

	// Order does not matter.
	assert.Equal(t, merged, ConcatRanges(b, a))
}

func TestComposedTypeIndirection(t *testing.T) {
	root := NewBuiltinType(BuiltinI32, NewRange(0, 0, 3))

	ptr := NewComposedType(root, []TypeSpecifier{SpecConst, SpecPointer},
		[]Range{NewRange(0, 4, 9), NewRange(0, 10, 11)})
	assert.True(t, ptr.HasIndirection())

	justConst := NewComposedType(root, []TypeSpecifier{SpecConst},
		[]Range{NewRange(0, 4, 9)})
	assert.False(t, justConst.HasIndirection())
}
