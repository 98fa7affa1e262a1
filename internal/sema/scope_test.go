package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/type_system"
)

func TestScopeLookupWalksParentChain(t *testing.T) {
	ctx := type_system.NewContext()
	file := NewScope(nil, ScopeFile)
	inner := NewScope(file, ScopeNone)
	innermost := NewScope(inner, ScopeNone)

	decl := ast.NewVarDecl(nil, "x", ctx.GetBuiltin(type_system.BuiltinI32))
	file.AddVar(decl)

	assert.Same(t, decl, innermost.LookupVar("x"))
	assert.Same(t, decl, inner.LookupVar("x"))
	assert.Nil(t, innermost.LookupVarLocal("x"))
}

func TestScopeShadowing(t *testing.T) {
	ctx := type_system.NewContext()
	file := NewScope(nil, ScopeFile)
	inner := NewScope(file, ScopeNone)

	outer := ast.NewVarDecl(nil, "x", ctx.GetBuiltin(type_system.BuiltinI32))
	shadow := ast.NewVarDecl(nil, "x", ctx.GetBuiltin(type_system.BuiltinBool))
	file.AddVar(outer)
	inner.AddVar(shadow)

	assert.Same(t, shadow, inner.LookupVar("x"))
	assert.Same(t, outer, file.LookupVar("x"))
}

func TestScopeTypeLookup(t *testing.T) {
	ctx := type_system.NewContext()
	file := NewScope(nil, ScopeFile)
	inner := NewScope(file, ScopeNone)

	i64 := ctx.GetBuiltin(type_system.BuiltinI64)
	file.AddType("handle", i64)

	assert.Equal(t, i64, inner.LookupType("handle"))
	assert.True(t, inner.LookupTypeLocal("handle").IsNil())
	assert.True(t, inner.LookupType("missing").IsNil())
}

func TestScopeFunctionOverloads(t *testing.T) {
	ctx := type_system.NewContext()
	file := NewScope(nil, ScopeFile)
	inner := NewScope(file, ScopeNone)

	i32 := ctx.GetBuiltin(type_system.BuiltinI32)
	r64 := ctx.GetBuiltin(type_system.BuiltinR64)
	f1 := ast.NewFuncDecl(nil, "f", []type_system.QualType{i32}, []string{"a"}, i32)
	f2 := ast.NewFuncDecl(nil, "f", []type_system.QualType{r64}, []string{"a"}, r64)
	file.AddFunction(f1)
	file.AddFunction(f2)

	assert.Len(t, file.AllFuncsLocal("f"), 2)
	assert.Len(t, inner.AllFuncs("f"), 2)
	assert.Empty(t, inner.AllFuncsLocal("f"))

	// A local overload set hides the outer one entirely.
	f3 := ast.NewFuncDecl(nil, "f", nil, nil, i32)
	inner.AddFunction(f3)
	assert.Len(t, inner.AllFuncs("f"), 1)
}

func TestScopeEnclosingFunctionAndLoop(t *testing.T) {
	file := NewScope(nil, ScopeFile)
	fn := NewScope(file, ScopeFunction)
	loop := NewScope(fn, ScopeLoop)
	block := NewScope(loop, ScopeNone)

	assert.Same(t, fn, block.EnclosingFunctionScope())
	assert.Same(t, loop, block.EnclosingLoopScope())
	assert.Same(t, fn, fn.EnclosingFunctionScope())
	assert.Nil(t, file.EnclosingFunctionScope())
	assert.Nil(t, fn.EnclosingLoopScope())
}

func TestScopeReplaceVar(t *testing.T) {
	ctx := type_system.NewContext()
	file := NewScope(nil, ScopeFile)

	old := ast.NewVarDecl(nil, "x", type_system.QualType{})
	file.AddVar(old)

	replacement := ast.NewVarDecl(nil, "x", ctx.GetBuiltin(type_system.BuiltinI32))
	file.ReplaceVar("x", replacement)
	assert.Same(t, replacement, file.LookupVar("x"))

	assert.Panics(t, func() { file.ReplaceVar("missing", replacement) })
}
