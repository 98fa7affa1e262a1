package type_system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifierAdditionIsIdempotent(t *testing.T) {
	ctx := NewContext()
	q := ctx.GetBuiltin(BuiltinI32)

	once := q.AddConst()
	twice := once.AddConst()
	assert.True(t, once.IsConst())
	assert.Equal(t, once, twice)

	assert.False(t, q.IsConst(), "AddConst must not mutate the receiver")
}

func TestQualTypeEquality(t *testing.T) {
	ctx := NewContext()
	i32 := ctx.GetBuiltin(BuiltinI32)

	assert.Equal(t, i32.AddConst(), i32.AddConst())
	assert.NotEqual(t, i32, i32.AddConst())
	assert.NotEqual(t, i32.AddVolatile(), i32.AddConst())
	assert.Equal(t, i32, i32.AddConst().Unqualified())
}

func TestBuiltinClassification(t *testing.T) {
	assert.True(t, BuiltinI16.IsSigned())
	assert.True(t, BuiltinU64.IsUnsigned())
	assert.True(t, BuiltinR128.IsFloating())
	assert.False(t, BuiltinBool.IsNumeric())
	assert.Equal(t, 32, BuiltinR32.BitWidth())
	assert.Equal(t, 0, BuiltinVoid.BitWidth())
}

func TestTypeStrings(t *testing.T) {
	ctx := NewContext()
	i32 := ctx.GetBuiltin(BuiltinI32)

	assert.Equal(t, "i32", i32.String())
	assert.Equal(t, "i32 const", i32.AddConst().String())
	assert.Equal(t, "i32*", ctx.CreatePointer(i32).String())
	assert.Equal(t, "i32&", ctx.CreateLValueRef(i32).String())
	assert.Equal(t, "i32[4]", ctx.CreateArray(i32, 4).String())
	assert.Equal(t, "(i32, bool)",
		ctx.CreateTuple([]QualType{i32, ctx.GetBuiltin(BuiltinBool)}).String())
}
