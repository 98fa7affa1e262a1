package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/cst"
	"github.com/coral-lang/coral/internal/diag"
	"github.com/coral-lang/coral/internal/type_system"
)

func TestNestedNameLookup(t *testing.T) {
	// class A { class C { def a : i8; } }
	// class B { class C { def b : i16; } }
	tu := transUnit(
		class("A", class("C", field("a", builtin(cst.BuiltinI8)))),
		class("B", class("C", field("b", builtin(cst.BuiltinI16)))),
	)
	_, s, engine := analyze(tu)
	require.Empty(t, engine.Diagnostics())

	acType := s.LookupType(s.GlobalScope(), qualIdent([]string{"A"}, "C"), false)
	bcType := s.LookupType(s.GlobalScope(), qualIdent([]string{"B"}, "C"), false)
	require.False(t, acType.IsNil())
	require.False(t, bcType.IsNil())
	assert.NotSame(t, acType.Ty, bcType.Ty)

	acDecl := type_system.DeclOfUserDefined(acType.Ty).(*ast.ClassDecl)
	bcDecl := type_system.DeclOfUserDefined(bcType.Ty).(*ast.ClassDecl)
	assert.Equal(t, "C", acDecl.Name())
	assert.Equal(t, "C", bcDecl.Name())

	require.Len(t, acDecl.Decls(), 1)
	require.Len(t, bcDecl.Decls(), 1)

	acVar := acDecl.Decls()[0].(*ast.VarDecl)
	bcVar := bcDecl.Decls()[0].(*ast.VarDecl)
	assert.Equal(t, "a", acVar.Name())
	assert.Equal(t, "b", bcVar.Name())
	assert.Equal(t, builtinOf(s, type_system.BuiltinI8), acVar.Type())
	assert.Equal(t, builtinOf(s, type_system.BuiltinI16), bcVar.Type())
}

func TestEnumeratorDefaulting(t *testing.T) {
	// enum E { A, B = 5, C, D }
	tu := transUnit(cst.NewEnumDecl("E", span(), []cst.Enumerator{
		enumerator("A"),
		enumeratorWithValue("B", 5),
		enumerator("C"),
		enumerator("D"),
	}))
	root, _, engine := analyze(tu)
	require.Empty(t, engine.Diagnostics())

	enumDecl := root.Decls()[0].(*ast.EnumDecl)
	values := map[string]int64{}
	for _, d := range enumDecl.Decls() {
		e := d.(*ast.EnumeratorDecl)
		values[e.Name()] = e.Value()
	}
	assert.Equal(t, map[string]int64{"A": 0, "B": 5, "C": 6, "D": 7}, values)
}

func TestEnumeratorRedeclaration(t *testing.T) {
	tu := transUnit(cst.NewEnumDecl("E", span(), []cst.Enumerator{
		enumerator("A"),
		enumerator("A"),
	}))
	root, _, engine := analyze(tu)

	require.Equal(t, 1, engine.ErrorCount())
	assert.Equal(t, diag.Redeclaration("A"), engine.Diagnostics()[0].Message)

	// The first A survives.
	enumDecl := root.Decls()[0].(*ast.EnumDecl)
	assert.Len(t, enumDecl.Decls(), 1)
}

func TestDuplicateQualifier(t *testing.T) {
	// def x : i32 const const;
	specRanges := []cst.Range{span(), span()}
	ty := cst.NewComposedType(builtin(cst.BuiltinI32),
		[]cst.TypeSpecifier{cst.SpecConst, cst.SpecConst}, specRanges)
	tu := transUnit(cst.NewVarDecl("x", span(), ty))
	root, s, engine := analyze(tu)

	require.Equal(t, 1, engine.ErrorCount())
	d := engine.Diagnostics()[0]
	assert.Equal(t, diag.DuplicateQual("const"), d.Message)
	// Reported at the second const.
	assert.Equal(t, specRanges[1], d.Range)

	// The declaration still comes out as const i32.
	varDecl := root.Decls()[0].(*ast.VarDecl)
	assert.Equal(t, builtinOf(s, type_system.BuiltinI32).AddConst(), varDecl.Type())
}

func TestVarRedefinition(t *testing.T) {
	tu := transUnit(
		field("x", builtin(cst.BuiltinI32)),
		field("x", builtin(cst.BuiltinI64)),
	)
	_, _, engine := analyze(tu)
	require.Equal(t, 1, engine.ErrorCount())
	assert.Equal(t, diag.Redefinition("x"), engine.Diagnostics()[0].Message)
}

func TestTypeRedefinition(t *testing.T) {
	tu := transUnit(
		class("T"),
		cst.NewEnumDecl("T", span(), nil),
	)
	_, _, engine := analyze(tu)
	require.Equal(t, 1, engine.ErrorCount())
	assert.Equal(t, diag.Redefinition("T"), engine.Diagnostics()[0].Message)
}

func TestVarClashesWithType(t *testing.T) {
	tu := transUnit(
		class("T"),
		field("T", builtin(cst.BuiltinI32)),
	)
	_, _, engine := analyze(tu)
	require.Equal(t, 1, engine.ErrorCount())
	assert.Equal(t, diag.Redefinition("T"), engine.Diagnostics()[0].Message)
}

func TestUsingResolvesEagerly(t *testing.T) {
	// using handle = i64; def h : handle;
	tu := transUnit(
		cst.NewUsingDecl("handle", span(), builtin(cst.BuiltinI64)),
		field("h", named("handle")),
	)
	root, s, engine := analyzePhase0(tu)
	require.Empty(t, engine.Diagnostics())

	usingDecl := root.Decls()[0].(*ast.UsingDecl)
	assert.Equal(t, builtinOf(s, type_system.BuiltinI64), usingDecl.Aliasee())

	// The variable's declared type is the alias itself, not its aliasee.
	varDecl := root.Decls()[1].(*ast.VarDecl)
	udt, ok := varDecl.Type().Ty.(*type_system.UserDefinedType)
	require.True(t, ok)
	assert.Equal(t, type_system.UDAlias, udt.Kind())
	assert.Same(t, usingDecl, udt.Decl().(*ast.UsingDecl))
}

func TestIncompleteVarRegistered(t *testing.T) {
	// def head : Node; class Node { def v : i32; }
	tu := transUnit(
		field("head", named("Node")),
		class("Node", field("v", builtin(cst.BuiltinI32))),
	)
	root, s, engine := analyzePhase0(tu)
	require.Empty(t, engine.Diagnostics())

	varDecl := root.Decls()[0].(*ast.VarDecl)
	assert.True(t, varDecl.Type().IsNil())

	inc := s.incomplete.searchUnfinished(varDecl)
	require.NotNil(t, inc)
	deps := inc.Dependencies()
	require.Len(t, deps, 1)
	assert.True(t, deps[0].IsByName())
	assert.True(t, deps[0].IsStrong())
	assert.Equal(t, "Node", deps[0].Name().Name)
}

func TestADTValueConstructors(t *testing.T) {
	// adt Shape { Circle : r64, Label : u8 const* }
	tu := transUnit(cst.NewADTDecl("Shape", span(), []cst.ValueConstructor{
		{Name: "Circle", NameRange: span(), Underlying: builtin(cst.BuiltinR64)},
		{Name: "Label", NameRange: span(), Underlying: composed(builtin(cst.BuiltinU8), cst.SpecConst, cst.SpecPointer)},
	}))
	root, s, engine := analyze(tu)
	require.Empty(t, engine.Diagnostics())

	adtDecl := root.Decls()[0].(*ast.ADTDecl)
	require.Len(t, adtDecl.Decls(), 2)

	circle := adtDecl.Decls()[0].(*ast.ValueCtorDecl)
	assert.Equal(t, builtinOf(s, type_system.BuiltinR64), circle.Type())

	label := adtDecl.Decls()[1].(*ast.ValueCtorDecl)
	expected := s.ASTContext().CreatePointer(builtinOf(s, type_system.BuiltinU8).AddConst())
	assert.Equal(t, expected, label.Type())
}

func TestForwardDeclPanics(t *testing.T) {
	engine := diag.NewEngine()
	s := NewSema(type_system.NewContext(), engine)
	assert.Panics(t, func() {
		s.ActOnTransUnit(transUnit(&cst.ForwardDecl{Name: "F", NameRange: span()}))
	})
}
