package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/cst"
	"github.com/coral-lang/coral/internal/type_system"
)

func TestPostTranslateFillsVarTypes(t *testing.T) {
	// def head : Node; class Node { def v : i32; }
	tu := transUnit(
		field("head", named("Node")),
		class("Node", field("v", builtin(cst.BuiltinI32))),
	)
	root, _, engine := analyze(tu)
	require.Empty(t, engine.Diagnostics())

	head := root.Decls()[0].(*ast.VarDecl)
	require.False(t, head.Type().IsNil())
	udt, ok := head.Type().Ty.(*type_system.UserDefinedType)
	require.True(t, ok)
	assert.Equal(t, type_system.UDClass, udt.Kind())
	assert.Equal(t, "Node", udt.Decl().TypeName())
}

func TestPostTranslateFillsUsingAliasee(t *testing.T) {
	// using ref = Widget; class Widget { def w : i64; }
	tu := transUnit(
		cst.NewUsingDecl("ref", span(), named("Widget")),
		class("Widget", field("w", builtin(cst.BuiltinI64))),
	)
	root, _, engine := analyze(tu)
	require.Empty(t, engine.Diagnostics())

	usingDecl := root.Decls()[0].(*ast.UsingDecl)
	require.False(t, usingDecl.Aliasee().IsNil())
	udt, ok := usingDecl.Aliasee().Ty.(*type_system.UserDefinedType)
	require.True(t, ok)
	assert.Equal(t, type_system.UDClass, udt.Kind())
	assert.Equal(t, "Widget", udt.Decl().TypeName())
}

func TestPostTranslateFillsValueCtorTypes(t *testing.T) {
	// adt Opt { Some : Payload, None : void }
	// class Payload { def data : i32; }
	tu := transUnit(
		cst.NewADTDecl("Opt", span(), []cst.ValueConstructor{
			{Name: "Some", NameRange: span(), Underlying: named("Payload")},
			{Name: "None", NameRange: span(), Underlying: builtin(cst.BuiltinVoid)},
		}),
		class("Payload", field("data", builtin(cst.BuiltinI32))),
	)
	root, s, engine := analyze(tu)
	require.Empty(t, engine.Diagnostics())

	adtDecl := root.Decls()[0].(*ast.ADTDecl)
	some := adtDecl.Decls()[0].(*ast.ValueCtorDecl)
	none := adtDecl.Decls()[1].(*ast.ValueCtorDecl)

	require.False(t, some.Type().IsNil())
	udt, ok := some.Type().Ty.(*type_system.UserDefinedType)
	require.True(t, ok)
	assert.Equal(t, "Payload", udt.Decl().TypeName())
	assert.Equal(t, builtinOf(s, type_system.BuiltinVoid), none.Type())
}

func TestFillAliaseePanicsWhenAlreadySet(t *testing.T) {
	ctx := type_system.NewContext()
	usingDecl := ast.NewUsingDecl(nil, "x", ctx.GetBuiltin(type_system.BuiltinI32))
	assert.Panics(t, func() {
		usingDecl.FillAliasee(ctx.GetBuiltin(type_system.BuiltinI64))
	})
}

func TestChainedAliases(t *testing.T) {
	// using outer = inner; using inner = Thing; class Thing {}
	tu := transUnit(
		cst.NewUsingDecl("outer", span(), named("inner")),
		cst.NewUsingDecl("inner", span(), named("Thing")),
		class("Thing"),
	)
	root, _, engine := analyze(tu)
	require.Empty(t, engine.Diagnostics())

	outer := root.Decls()[0].(*ast.UsingDecl)
	inner := root.Decls()[1].(*ast.UsingDecl)

	require.False(t, outer.Aliasee().IsNil())
	outerTarget, ok := outer.Aliasee().Ty.(*type_system.UserDefinedType)
	require.True(t, ok)
	assert.Equal(t, type_system.UDAlias, outerTarget.Kind())
	assert.Same(t, inner, outerTarget.Decl().(*ast.UsingDecl))

	require.False(t, inner.Aliasee().IsNil())
	innerTarget, ok := inner.Aliasee().Ty.(*type_system.UserDefinedType)
	require.True(t, ok)
	assert.Equal(t, type_system.UDClass, innerTarget.Kind())
}
