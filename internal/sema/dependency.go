package sema

import (
	"github.com/moznion/go-optional"

	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/cst"
	"github.com/coral-lang/coral/internal/type_system"
)

// Dependency is one edge from an incomplete declaration to something it
// needs. It starts out either by-name (the referenced identifier did not
// resolve at all) or by-decl (it resolved to a declaration that is itself
// still incomplete). Name edges are rewritten to decl edges once every name
// is visible.
//
// A strong edge means the dependent cannot be typed until the target is
// complete; passing through a pointer or reference specifier weakens every
// edge it guards.
type Dependency struct {
	name   optional.Option[cst.Identifier]
	decl   ast.Decl
	strong bool
}

func NewNameDependency(id cst.Identifier, strong bool) *Dependency {
	return &Dependency{name: optional.Some(id), strong: strong}
}

func NewDeclDependency(decl ast.Decl, strong bool) *Dependency {
	return &Dependency{decl: decl, strong: strong}
}

func (d *Dependency) IsByName() bool { return d.name.IsSome() }

// Name returns the referenced identifier of a by-name edge.
func (d *Dependency) Name() cst.Identifier {
	return d.name.Unwrap()
}

// Decl returns the target of a by-decl edge, or nil for a by-name edge.
func (d *Dependency) Decl() ast.Decl { return d.decl }

func (d *Dependency) IsStrong() bool { return d.strong }

func (d *Dependency) SetStrong(strong bool) { d.strong = strong }

// ReplaceNameWithDecl converts a by-name edge into a by-decl edge after
// name resolution.
func (d *Dependency) ReplaceNameWithDecl(decl ast.Decl) {
	d.name = optional.None[cst.Identifier]()
	d.decl = decl
}

// TypeResult is the outcome of Phase-0 type resolution: either a resolved
// type or the dependencies that prevented resolution. The two are mutually
// exclusive.
type TypeResult struct {
	ty   type_system.QualType
	deps []*Dependency
}

func resolvedType(ty type_system.QualType) TypeResult {
	return TypeResult{ty: ty}
}

func deferredType(deps []*Dependency) TypeResult {
	return TypeResult{deps: deps}
}

func (r TypeResult) Resolved() bool { return !r.ty.IsNil() }

func (r TypeResult) Type() type_system.QualType { return r.ty }

func (r TypeResult) Dependencies() []*Dependency { return r.deps }
