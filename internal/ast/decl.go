package ast

import (
	"github.com/coral-lang/coral/internal/type_system"
)

//sumtype:decl

type Decl interface {
	isDecl()
	// Owner is the declaration context this declaration was created in. It
	// is set at construction and never changes; only the translation unit
	// has no owner.
	Owner() DeclContext
}

func (*TransUnitDecl) isDecl()  {}
func (*LabelDecl) isDecl()      {}
func (*ClassDecl) isDecl()      {}
func (*EnumDecl) isDecl()       {}
func (*EnumeratorDecl) isDecl() {}
func (*ADTDecl) isDecl()        {}
func (*ValueCtorDecl) isDecl()  {}
func (*UsingDecl) isDecl()      {}
func (*FuncDecl) isDecl()       {}
func (*VarDecl) isDecl()        {}

// DeclContext is the capability of a declaration to contain child
// declarations in insertion order. Translation units, classes, ADTs, enums
// and functions implement it.
type DeclContext interface {
	AddDecl(Decl)
	Decls() []Decl
	// LookupTypeDecl finds a directly contained type declaration by name.
	// Used for nested-name resolution (`A::B`).
	LookupTypeDecl(name string) type_system.TypeDecl
}

// declContextBase carries the ordered child list for every DeclContext
// implementation.
type declContextBase struct {
	decls []Decl
}

func (dc *declContextBase) AddDecl(d Decl) {
	dc.decls = append(dc.decls, d)
}

func (dc *declContextBase) Decls() []Decl {
	return dc.decls
}

func (dc *declContextBase) LookupTypeDecl(name string) type_system.TypeDecl {
	for _, d := range dc.decls {
		if td, ok := d.(type_system.TypeDecl); ok && td.TypeName() == name {
			return td
		}
	}
	return nil
}

// typeDeclBase implements the type_system.TypeDecl back-reference for the
// declarations that introduce a named type.
type typeDeclBase struct {
	name        string
	typeForDecl type_system.Type
}

func (td *typeDeclBase) TypeName() string { return td.name }

func (td *typeDeclBase) TypeForDecl() type_system.Type { return td.typeForDecl }

func (td *typeDeclBase) SetTypeForDecl(t type_system.Type) { td.typeForDecl = t }

// TransUnitDecl is the AST root. It owns the type context of its
// compilation so downstream consumers receive both through one handle.
type TransUnitDecl struct {
	declContextBase
	ctx *type_system.Context
}

func NewTransUnitDecl(ctx *type_system.Context) *TransUnitDecl {
	return &TransUnitDecl{ctx: ctx}
}

func (d *TransUnitDecl) Owner() DeclContext { return nil }

func (d *TransUnitDecl) ASTContext() *type_system.Context { return d.ctx }

func (d *TransUnitDecl) Accept(v DeclVisitor) ActionResult { return v.VisitTransUnitDecl(d) }

type LabelDecl struct {
	owner DeclContext
	Label string
}

func NewLabelDecl(owner DeclContext, label string) *LabelDecl {
	return &LabelDecl{owner: owner, Label: label}
}

func (d *LabelDecl) Owner() DeclContext { return d.owner }

func (d *LabelDecl) Accept(v DeclVisitor) ActionResult { return v.VisitLabelDecl(d) }

type ClassDecl struct {
	declContextBase
	typeDeclBase
	owner DeclContext
}

func NewClassDecl(owner DeclContext, name string) *ClassDecl {
	d := &ClassDecl{owner: owner}
	d.name = name
	return d
}

func (d *ClassDecl) Owner() DeclContext { return d.owner }

func (d *ClassDecl) Name() string { return d.name }

func (d *ClassDecl) Accept(v DeclVisitor) ActionResult { return v.VisitClassDecl(d) }

type EnumDecl struct {
	declContextBase
	typeDeclBase
	owner DeclContext
}

func NewEnumDecl(owner DeclContext, name string) *EnumDecl {
	d := &EnumDecl{owner: owner}
	d.name = name
	return d
}

func (d *EnumDecl) Owner() DeclContext { return d.owner }

func (d *EnumDecl) Name() string { return d.name }

func (d *EnumDecl) Accept(v DeclVisitor) ActionResult { return v.VisitEnumDecl(d) }

type EnumeratorDecl struct {
	owner DeclContext
	name  string
	value int64
}

func NewEnumeratorDecl(owner DeclContext, name string, value int64) *EnumeratorDecl {
	return &EnumeratorDecl{owner: owner, name: name, value: value}
}

func (d *EnumeratorDecl) Owner() DeclContext { return d.owner }

func (d *EnumeratorDecl) Name() string { return d.name }

func (d *EnumeratorDecl) Value() int64 { return d.value }

func (d *EnumeratorDecl) Accept(v DeclVisitor) ActionResult { return v.VisitEnumeratorDecl(d) }

type ADTDecl struct {
	declContextBase
	typeDeclBase
	owner DeclContext
}

func NewADTDecl(owner DeclContext, name string) *ADTDecl {
	d := &ADTDecl{owner: owner}
	d.name = name
	return d
}

func (d *ADTDecl) Owner() DeclContext { return d.owner }

func (d *ADTDecl) Name() string { return d.name }

func (d *ADTDecl) Accept(v DeclVisitor) ActionResult { return v.VisitADTDecl(d) }

// ValueCtorDecl is one alternative of an ADT. Its type is the underlying
// payload type, filled in Phase 1 when it could not be resolved eagerly.
type ValueCtorDecl struct {
	owner DeclContext
	name  string
	ty    type_system.QualType
}

func NewValueCtorDecl(owner DeclContext, name string, ty type_system.QualType) *ValueCtorDecl {
	return &ValueCtorDecl{owner: owner, name: name, ty: ty}
}

func (d *ValueCtorDecl) Owner() DeclContext { return d.owner }

func (d *ValueCtorDecl) Name() string { return d.name }

func (d *ValueCtorDecl) Type() type_system.QualType { return d.ty }

func (d *ValueCtorDecl) SetType(ty type_system.QualType) { d.ty = ty }

func (d *ValueCtorDecl) Accept(v DeclVisitor) ActionResult { return v.VisitValueCtorDecl(d) }

type UsingDecl struct {
	typeDeclBase
	owner   DeclContext
	aliasee type_system.QualType
}

func NewUsingDecl(owner DeclContext, name string, aliasee type_system.QualType) *UsingDecl {
	d := &UsingDecl{owner: owner, aliasee: aliasee}
	d.name = name
	return d
}

func (d *UsingDecl) Owner() DeclContext { return d.owner }

func (d *UsingDecl) Name() string { return d.name }

func (d *UsingDecl) Aliasee() type_system.QualType { return d.aliasee }

// FillAliasee installs the aliasee after dependency resolution. The aliasee
// must still be unset.
func (d *UsingDecl) FillAliasee(aliasee type_system.QualType) {
	if !d.aliasee.IsNil() {
		panic("ast: aliasee already filled")
	}
	d.aliasee = aliasee
}

func (d *UsingDecl) Accept(v DeclVisitor) ActionResult { return v.VisitUsingDecl(d) }

type FuncDecl struct {
	declContextBase
	owner      DeclContext
	name       string
	paramTypes []type_system.QualType
	paramNames []string
	retType    type_system.QualType
	Body       *CompoundStmt // nil for a bare prototype
}

func NewFuncDecl(
	owner DeclContext,
	name string,
	paramTypes []type_system.QualType,
	paramNames []string,
	retType type_system.QualType,
) *FuncDecl {
	return &FuncDecl{
		owner:      owner,
		name:       name,
		paramTypes: paramTypes,
		paramNames: paramNames,
		retType:    retType,
	}
}

func (d *FuncDecl) Owner() DeclContext { return d.owner }

func (d *FuncDecl) Name() string { return d.name }

func (d *FuncDecl) ParamTypes() []type_system.QualType { return d.paramTypes }

func (d *FuncDecl) ParamNames() []string { return d.paramNames }

func (d *FuncDecl) RetType() type_system.QualType { return d.retType }

func (d *FuncDecl) Accept(v DeclVisitor) ActionResult { return v.VisitFuncDecl(d) }

type VarDecl struct {
	owner DeclContext
	name  string
	ty    type_system.QualType
}

func NewVarDecl(owner DeclContext, name string, ty type_system.QualType) *VarDecl {
	return &VarDecl{owner: owner, name: name, ty: ty}
}

func (d *VarDecl) Owner() DeclContext { return d.owner }

func (d *VarDecl) Name() string { return d.name }

func (d *VarDecl) Type() type_system.QualType { return d.ty }

// SetType is the Phase-1 fill operation for variables registered
// incomplete.
func (d *VarDecl) SetType(ty type_system.QualType) { d.ty = ty }

func (d *VarDecl) Accept(v DeclVisitor) ActionResult { return v.VisitVarDecl(d) }
