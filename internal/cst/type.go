package cst

// BuiltinKind enumerates the builtin types the lexer can produce for type
// tokens and literal suffixes.
type BuiltinKind int

const (
	BuiltinI8 BuiltinKind = iota
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

func (k BuiltinKind) String() string { return builtinNames[k] }

// TypeSpecifier is one step of a composed type, applied left-to-right to the
// root type. `i32 const *` is root i32 with specifiers [const, pointer].
type TypeSpecifier int

const (
	SpecPointer TypeSpecifier = iota
	SpecLValueRef
	SpecRValueRef
	SpecConst
	SpecVolatile
	SpecRestrict
)

var specifierNames = [...]string{
	SpecPointer:   "*",
	SpecLValueRef: "&",
	SpecRValueRef: "&&",
	SpecConst:     "const",
	SpecVolatile:  "volatile",
	SpecRestrict:  "restrict",
}

func (s TypeSpecifier) String() string { return specifierNames[s] }

// IsIndirection reports whether the specifier introduces a level of
// indirection. A type reached only through an indirection does not require
// its target to be complete.
func (s TypeSpecifier) IsIndirection() bool {
	return s == SpecPointer || s == SpecLValueRef || s == SpecRValueRef
}

type Type interface {
	isType()
	Range() Range
}

func (*BuiltinType) isType()     {}
func (*UserDefinedType) isType() {}
func (*ComposedType) isType()    {}
func (*TemplatedType) isType()   {}

type BuiltinType struct {
	Kind BuiltinKind
	R    Range
}

func NewBuiltinType(kind BuiltinKind, r Range) *BuiltinType {
	return &BuiltinType{Kind: kind, R: r}
}

func (t *BuiltinType) Range() Range { return t.R }

type UserDefinedType struct {
	Name Identifier
}

func NewUserDefinedType(name Identifier) *UserDefinedType {
	return &UserDefinedType{Name: name}
}

func (t *UserDefinedType) Range() Range { return t.Name.NameRange }

// ComposedType applies an ordered list of specifiers to a root type. The
// specifier ranges are kept in lockstep with the specifiers so diagnostics
// can point at the offending token.
type ComposedType struct {
	Root       Type
	Specs      []TypeSpecifier
	SpecRanges []Range
}

func NewComposedType(root Type, specs []TypeSpecifier, specRanges []Range) *ComposedType {
	return &ComposedType{Root: root, Specs: specs, SpecRanges: specRanges}
}

func (t *ComposedType) Range() Range {
	r := t.Root.Range()
	for _, sr := range t.SpecRanges {
		r = ConcatRanges(r, sr)
	}
	return r
}

// HasIndirection reports whether any specifier in the chain is a pointer or
// reference form.
func (t *ComposedType) HasIndirection() bool {
	for _, s := range t.Specs {
		if s.IsIndirection() {
			return true
		}
	}
	return false
}

// TemplatedType is parsed but deliberately not handled by semantic analysis.
type TemplatedType struct {
	Root Type
	Args []Type
	R    Range
}

func (t *TemplatedType) Range() Range { return t.R }
