package sema

import (
	"github.com/moznion/go-optional"

	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/cst"
	"github.com/coral-lang/coral/internal/diag"
	"github.com/coral-lang/coral/internal/type_system"
)

// Test fixtures build CST nodes by hand; the parser lives outside this
// repository. Ranges are fabricated but distinct so diagnostics can be
// matched to the node that caused them.

var nextOffset int

func span() cst.Range {
	nextOffset += 10
	return cst.NewRange(0, nextOffset, nextOffset+5)
}

func ident(name string) cst.Identifier {
	return cst.NewIdentifier(name, span())
}

func qualIdent(nns []string, name string) cst.Identifier {
	ranges := make([]cst.Range, len(nns))
	for i := range nns {
		ranges[i] = span()
	}
	return cst.NewQualifiedIdentifier(nns, name, ranges, span())
}

func builtin(kind cst.BuiltinKind) *cst.BuiltinType {
	return cst.NewBuiltinType(kind, span())
}

func named(name string) *cst.UserDefinedType {
	return cst.NewUserDefinedType(ident(name))
}

func composed(root cst.Type, specs ...cst.TypeSpecifier) *cst.ComposedType {
	ranges := make([]cst.Range, len(specs))
	for i := range specs {
		ranges[i] = span()
	}
	return cst.NewComposedType(root, specs, ranges)
}

func field(name string, ty cst.Type) *cst.VarDecl {
	return cst.NewVarDecl(name, span(), ty)
}

func class(name string, subDecls ...cst.Decl) *cst.ClassDecl {
	return cst.NewClassDecl(name, span(), subDecls)
}

func enumerator(name string) cst.Enumerator {
	return cst.Enumerator{Name: name, NameRange: span(), Value: optional.None[int64]()}
}

func enumeratorWithValue(name string, value int64) cst.Enumerator {
	return cst.Enumerator{Name: name, NameRange: span(), Value: optional.Some(value)}
}

func transUnit(decls ...cst.Decl) *cst.TransUnit {
	return cst.NewTransUnit(nil, decls)
}

func newTestSema() (*diag.Engine, *Sema) {
	engine := diag.NewEngine()
	return engine, NewSema(type_system.NewContext(), engine)
}

// analyze runs the full pipeline and returns everything a test might poke
// at.
func analyze(tu *cst.TransUnit) (*ast.TransUnitDecl, *Sema, *diag.Engine) {
	engine := diag.NewEngine()
	s := NewSema(type_system.NewContext(), engine)
	root := s.Analyze(tu)
	return root, s, engine
}

// analyzePhase0 stops after Phase 0 so tests can inspect the intermediate
// state.
func analyzePhase0(tu *cst.TransUnit) (*ast.TransUnitDecl, *Sema, *diag.Engine) {
	engine := diag.NewEngine()
	s := NewSema(type_system.NewContext(), engine)
	root := s.ActOnTransUnit(tu)
	return root, s, engine
}

func builtinOf(s *Sema, id type_system.BuiltinID) type_system.QualType {
	return s.ASTContext().GetBuiltin(id)
}
