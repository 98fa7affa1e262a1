package cst

import "github.com/moznion/go-optional"

type Decl interface {
	isDecl()
	Range() Range
}

func (*VarDecl) isDecl()       {}
func (*ClassDecl) isDecl()     {}
func (*EnumDecl) isDecl()      {}
func (*ADTDecl) isDecl()       {}
func (*UsingDecl) isDecl()     {}
func (*FuncDecl) isDecl()      {}
func (*ForwardDecl) isDecl()   {}
func (*TemplatedDecl) isDecl() {}

// TransUnit is the root the parser hands to semantic analysis: the ordered
// imports followed by the ordered top-level declarations of one file.
type TransUnit struct {
	Imports []Import
	Decls   []Decl
}

func NewTransUnit(imports []Import, decls []Decl) *TransUnit {
	return &TransUnit{Imports: imports, Decls: decls}
}

type Import struct {
	Name Identifier
	R    Range
}

type VarDecl struct {
	Name      string
	NameRange Range
	Type      Type
}

func NewVarDecl(name string, nameRange Range, ty Type) *VarDecl {
	return &VarDecl{Name: name, NameRange: nameRange, Type: ty}
}

func (d *VarDecl) Range() Range { return ConcatRanges(d.NameRange, d.Type.Range()) }

type ClassDecl struct {
	Name      string
	NameRange Range
	SubDecls  []Decl
}

func NewClassDecl(name string, nameRange Range, subDecls []Decl) *ClassDecl {
	return &ClassDecl{Name: name, NameRange: nameRange, SubDecls: subDecls}
}

func (d *ClassDecl) Range() Range { return d.NameRange }

type Enumerator struct {
	Name      string
	NameRange Range
	Value     optional.Option[int64]
}

type EnumDecl struct {
	Name        string
	NameRange   Range
	Enumerators []Enumerator
}

func NewEnumDecl(name string, nameRange Range, enumerators []Enumerator) *EnumDecl {
	return &EnumDecl{Name: name, NameRange: nameRange, Enumerators: enumerators}
}

func (d *EnumDecl) Range() Range { return d.NameRange }

// ValueConstructor is one alternative of an ADT, carrying the underlying
// type its payload is stored as.
type ValueConstructor struct {
	Name       string
	NameRange  Range
	Underlying Type
}

type ADTDecl struct {
	Name      string
	NameRange Range
	Ctors     []ValueConstructor
}

func NewADTDecl(name string, nameRange Range, ctors []ValueConstructor) *ADTDecl {
	return &ADTDecl{Name: name, NameRange: nameRange, Ctors: ctors}
}

func (d *ADTDecl) Range() Range { return d.NameRange }

type UsingDecl struct {
	Name      string
	NameRange Range
	Aliasee   Type
}

func NewUsingDecl(name string, nameRange Range, aliasee Type) *UsingDecl {
	return &UsingDecl{Name: name, NameRange: nameRange, Aliasee: aliasee}
}

func (d *UsingDecl) Range() Range { return ConcatRanges(d.NameRange, d.Aliasee.Range()) }

type FuncDecl struct {
	Name       string
	NameRange  Range
	ParamTypes []Type
	ParamNames []string
	RetType    Type
	Body       *CompoundStmt // nil for a bare prototype
}

func NewFuncDecl(name string, nameRange Range, paramTypes []Type, paramNames []string, retType Type, body *CompoundStmt) *FuncDecl {
	return &FuncDecl{
		Name:       name,
		NameRange:  nameRange,
		ParamTypes: paramTypes,
		ParamNames: paramNames,
		RetType:    retType,
		Body:       body,
	}
}

func (d *FuncDecl) Range() Range { return d.NameRange }

// ForwardDecl is parsed but deliberately not handled by semantic analysis.
type ForwardDecl struct {
	Name      string
	NameRange Range
}

func (d *ForwardDecl) Range() Range { return d.NameRange }

// TemplatedDecl is parsed but deliberately not handled by semantic analysis.
type TemplatedDecl struct {
	Inner Decl
	R     Range
}

func (d *TemplatedDecl) Range() Range { return d.R }
