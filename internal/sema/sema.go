// Package sema turns a concrete syntax tree into a fully typed AST in two
// phases. Phase 0 walks the CST, resolving what it can and recording
// dependencies for everything else. The scheduler rewrites name
// dependencies to declaration dependencies and topologically orders the
// deferred declarations over their strong edges. Phase 1 then revisits each
// deferred declaration with every name visible, fills the remaining type
// slots, and finally translates function bodies.
package sema

import (
	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/cst"
	"github.com/coral-lang/coral/internal/diag"
	"github.com/coral-lang/coral/internal/type_system"
)

type Sema struct {
	astCtx *type_system.Context
	diags  diag.Sink

	scope       *Scope
	globalScope *Scope
	contexts    []ast.DeclContext

	incomplete *registry
}

func NewSema(astCtx *type_system.Context, diags diag.Sink) *Sema {
	return &Sema{
		astCtx:     astCtx,
		diags:      diags,
		incomplete: newRegistry(),
	}
}

// Analyze runs the whole pipeline over one translation unit and returns the
// typed AST root. The AST context passed to NewSema holds every canonical
// type the tree refers to.
func (s *Sema) Analyze(tu *cst.TransUnit) *ast.TransUnitDecl {
	transUnit := s.ActOnTransUnit(tu)
	s.SubstituteDepends()
	order := s.FindTranslationOrder()
	s.PostTranslateIncompletes(order)
	s.TranslateFunctions()
	return transUnit
}

func (s *Sema) ASTContext() *type_system.Context { return s.astCtx }

func (s *Sema) GlobalScope() *Scope { return s.globalScope }

func (s *Sema) pushScope(flags ScopeFlags) {
	s.scope = NewScope(s.scope, flags)
	if s.globalScope == nil {
		s.globalScope = s.scope
	}
}

func (s *Sema) popScope() {
	s.scope = s.scope.parent
}

func (s *Sema) currentScope() *Scope { return s.scope }

func (s *Sema) pushDeclContext(dc ast.DeclContext) {
	s.contexts = append(s.contexts, dc)
}

func (s *Sema) popDeclContext() {
	s.contexts = s.contexts[:len(s.contexts)-1]
}

func (s *Sema) currentDeclContext() ast.DeclContext {
	return s.contexts[len(s.contexts)-1]
}

var builtinIDs = map[cst.BuiltinKind]type_system.BuiltinID{
	cst.BuiltinI8:   type_system.BuiltinI8,
	cst.BuiltinI16:  type_system.BuiltinI16,
	cst.BuiltinI32:  type_system.BuiltinI32,
	cst.BuiltinI64:  type_system.BuiltinI64,
	cst.BuiltinU8:   type_system.BuiltinU8,
	cst.BuiltinU16:  type_system.BuiltinU16,
	cst.BuiltinU32:  type_system.BuiltinU32,
	cst.BuiltinU64:  type_system.BuiltinU64,
	cst.BuiltinR32:  type_system.BuiltinR32,
	cst.BuiltinR64:  type_system.BuiltinR64,
	cst.BuiltinR128: type_system.BuiltinR128,
	cst.BuiltinBool: type_system.BuiltinBool,
	cst.BuiltinVoid: type_system.BuiltinVoid,
}

func (s *Sema) resolveBuiltinImpl(bty *cst.BuiltinType) type_system.QualType {
	return s.astCtx.GetBuiltin(builtinIDs[bty.Kind])
}

// LookupType resolves a possibly-qualified identifier to a type. The first
// segment is looked up through the scope chain; each further segment
// descends into the declaration context of the previous segment's
// declaration. When diagnose is set, a missing segment reports
// "not declared" at that segment's range.
func (s *Sema) LookupType(scope *Scope, id cst.Identifier, diagnose bool) type_system.QualType {
	if !id.IsQualified() {
		ty := scope.LookupType(id.Name)
		if ty.IsNil() && diagnose {
			s.diags.Diag(diag.Error, diag.NotDeclared(id.Name), id.NameRange)
		}
		return ty
	}

	cur := scope.LookupType(id.NNS[0])
	if cur.IsNil() {
		if diagnose {
			s.diags.Diag(diag.Error, diag.NotDeclared(id.NNS[0]), id.NNSRanges[0])
		}
		return type_system.QualType{}
	}
	for i := 1; i <= len(id.NNS); i++ {
		var seg string
		var segRange cst.Range
		if i < len(id.NNS) {
			seg, segRange = id.NNS[i], id.NNSRanges[i]
		} else {
			seg, segRange = id.Name, id.NameRange
		}

		next := descendIntoTypeDecl(cur, seg)
		if next.IsNil() {
			if diagnose {
				s.diags.Diag(diag.Error, diag.NotDeclared(seg), segRange)
			}
			return type_system.QualType{}
		}
		cur = next
	}
	return cur
}

// descendIntoTypeDecl resolves one nested-name segment against the
// declaration context behind a user-defined type.
func descendIntoTypeDecl(ty type_system.QualType, segment string) type_system.QualType {
	decl := type_system.DeclOfUserDefined(ty.Ty)
	if decl == nil {
		return type_system.QualType{}
	}
	dc, ok := decl.(ast.DeclContext)
	if !ok {
		return type_system.QualType{}
	}
	inner := dc.LookupTypeDecl(segment)
	if inner == nil || inner.TypeForDecl() == nil {
		return type_system.QualType{}
	}
	return type_system.NewQualType(inner.TypeForDecl())
}

// checkTypeComplete reports whether every declaration a type's layout
// depends on has finished Phase 0. Pointers and references never require a
// complete target; arrays and tuples require complete elements.
func (s *Sema) checkTypeComplete(ty type_system.Type) bool {
	switch t := ty.(type) {
	case *type_system.BuiltinType, *type_system.PointerType,
		*type_system.LValueRefType, *type_system.RValueRefType:
		return true
	case *type_system.ArrayType:
		return s.checkTypeComplete(t.Elem.Ty)
	case *type_system.TupleType:
		for _, elem := range t.Elems {
			if !s.checkTypeComplete(elem.Ty) {
				return false
			}
		}
		return true
	case *type_system.UserDefinedType:
		return s.checkUserDefinedComplete(t)
	}
	panic("sema: checkTypeComplete on unknown type kind")
}

func (s *Sema) checkUserDefinedComplete(ty *type_system.UserDefinedType) bool {
	decl := ty.Decl().(ast.Decl)
	if ty.Kind() == type_system.UDAlias {
		_, pending := s.incomplete.usings[decl.(*ast.UsingDecl)]
		return !pending
	}
	_, pending := s.incomplete.tags[decl]
	return !pending
}
