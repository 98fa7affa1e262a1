// Package type_system holds the canonical type objects produced by semantic
// analysis. Types are hash-consed by Context: two structurally equal type
// expressions always share one instance, so type equality is pointer
// equality on the unqualified type plus a qualifier bitset comparison.
package type_system

import (
	"strconv"
	"strings"
)

type BuiltinID int

const (
	BuiltinI8 BuiltinID = iota
	BuiltinI16
	BuiltinI32
	BuiltinI64
	BuiltinU8
	BuiltinU16
	BuiltinU32
	BuiltinU64
	BuiltinR32
	BuiltinR64
	BuiltinR128
	BuiltinBool
	BuiltinVoid

	numBuiltins
)

var builtinNames = [...]string{
	BuiltinI8:   "i8",
	BuiltinI16:  "i16",
	BuiltinI32:  "i32",
	BuiltinI64:  "i64",
	BuiltinU8:   "u8",
	BuiltinU16:  "u16",
	BuiltinU32:  "u32",
	BuiltinU64:  "u64",
	BuiltinR32:  "r32",
	BuiltinR64:  "r64",
	BuiltinR128: "r128",
	BuiltinBool: "bool",
	BuiltinVoid: "void",
}

func (id BuiltinID) String() string { return builtinNames[id] }

func (id BuiltinID) IsSigned() bool {
	return id >= BuiltinI8 && id <= BuiltinI64
}

func (id BuiltinID) IsUnsigned() bool {
	return id >= BuiltinU8 && id <= BuiltinU64
}

func (id BuiltinID) IsFloating() bool {
	return id >= BuiltinR32 && id <= BuiltinR128
}

func (id BuiltinID) IsNumeric() bool {
	return id.IsSigned() || id.IsUnsigned() || id.IsFloating()
}

// BitWidth returns the storage width in bits, or 0 for bool and void.
func (id BuiltinID) BitWidth() int {
	switch id {
	case BuiltinI8, BuiltinU8:
		return 8
	case BuiltinI16, BuiltinU16:
		return 16
	case BuiltinI32, BuiltinU32, BuiltinR32:
		return 32
	case BuiltinI64, BuiltinU64, BuiltinR64:
		return 64
	case BuiltinR128:
		return 128
	}
	return 0
}

// Qualifier is the const/volatile/restrict bitset of a QualType.
type Qualifier uint8

const (
	QualConst Qualifier = 1 << iota
	QualVolatile
	QualRestrict
)

// QualType pairs an unqualified canonical type with a qualifier bitset. The
// zero QualType stands for "no type yet" while a declaration is incomplete.
type QualType struct {
	Ty    Type
	Quals Qualifier
}

func NewQualType(ty Type) QualType {
	return QualType{Ty: ty}
}

func (q QualType) IsNil() bool { return q.Ty == nil }

func (q QualType) IsConst() bool    { return q.Quals&QualConst != 0 }
func (q QualType) IsVolatile() bool { return q.Quals&QualVolatile != 0 }
func (q QualType) IsRestrict() bool { return q.Quals&QualRestrict != 0 }

// AddConst and friends are idempotent; reporting a syntactic duplicate is
// the resolver's business, not the type model's.
func (q QualType) AddConst() QualType {
	q.Quals |= QualConst
	return q
}

func (q QualType) AddVolatile() QualType {
	q.Quals |= QualVolatile
	return q
}

func (q QualType) AddRestrict() QualType {
	q.Quals |= QualRestrict
	return q
}

// Unqualified strips all qualifiers.
func (q QualType) Unqualified() QualType {
	return QualType{Ty: q.Ty}
}

func (q QualType) String() string {
	if q.IsNil() {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(q.Ty.String())
	if q.IsConst() {
		sb.WriteString(" const")
	}
	if q.IsVolatile() {
		sb.WriteString(" volatile")
	}
	if q.IsRestrict() {
		sb.WriteString(" restrict")
	}
	return sb.String()
}

//sumtype:decl

type Type interface {
	isType()
	String() string
}

func (*BuiltinType) isType()     {}
func (*PointerType) isType()     {}
func (*LValueRefType) isType()   {}
func (*RValueRefType) isType()   {}
func (*ArrayType) isType()       {}
func (*TupleType) isType()       {}
func (*UserDefinedType) isType() {}

type BuiltinType struct {
	ID BuiltinID
}

func (t *BuiltinType) String() string { return t.ID.String() }

type PointerType struct {
	Pointee QualType
}

func (t *PointerType) String() string { return t.Pointee.String() + "*" }

type LValueRefType struct {
	Referenced QualType
}

func (t *LValueRefType) String() string { return t.Referenced.String() + "&" }

type RValueRefType struct {
	Referenced QualType
}

func (t *RValueRefType) String() string { return t.Referenced.String() + "&&" }

type ArrayType struct {
	Elem QualType
	Size int64
}

func (t *ArrayType) String() string {
	return t.Elem.String() + "[" + strconv.FormatInt(t.Size, 10) + "]"
}

type TupleType struct {
	Elems []QualType
}

func (t *TupleType) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// UserDefinedKind distinguishes the declaration forms that introduce a
// named type.
type UserDefinedKind int

const (
	UDClass UserDefinedKind = iota
	UDADT
	UDEnum
	UDAlias
)

var userDefinedKindNames = [...]string{
	UDClass: "class",
	UDADT:   "adt",
	UDEnum:  "enum",
	UDAlias: "using",
}

func (k UserDefinedKind) String() string { return userDefinedKindNames[k] }

// TypeDecl is the back-reference capability a declaration must provide to
// become the subject of a user-defined type. It is implemented by the AST's
// class, ADT, enum and using declarations; keeping it an interface here
// avoids an import cycle between the type objects and the declarations that
// own them.
type TypeDecl interface {
	TypeName() string
	TypeForDecl() Type
	SetTypeForDecl(Type)
}

// UserDefinedType is keyed by declaration identity; Context never
// deduplicates two user-defined types across distinct declarations.
type UserDefinedType struct {
	kind UserDefinedKind
	decl TypeDecl
}

func (t *UserDefinedType) Kind() UserDefinedKind { return t.kind }
func (t *UserDefinedType) Decl() TypeDecl        { return t.decl }

func (t *UserDefinedType) String() string {
	return t.kind.String() + " " + t.decl.TypeName()
}

// DeclOfUserDefined returns the declaration behind a user-defined type, or
// nil when the type is not user-defined.
func DeclOfUserDefined(ty Type) TypeDecl {
	if udt, ok := ty.(*UserDefinedType); ok {
		return udt.decl
	}
	return nil
}
