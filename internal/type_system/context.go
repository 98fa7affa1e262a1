package type_system

import (
	"fmt"
	"strings"
)

// Context owns every canonical type object for one compilation. Builtin,
// pointer, reference, array and tuple types are deduplicated structurally;
// user-defined types are one-per-declaration. All returned pointers stay
// valid for the lifetime of the Context.
type Context struct {
	builtins [numBuiltins]*BuiltinType

	pointers   map[QualType]*PointerType
	lvalueRefs map[QualType]*LValueRefType
	rvalueRefs map[QualType]*RValueRefType
	arrays     map[arrayKey]*ArrayType
	tuples     map[string]*TupleType

	userDefined []*UserDefinedType
}

type arrayKey struct {
	elem QualType
	size int64
}

func NewContext() *Context {
	ctx := &Context{
		pointers:   make(map[QualType]*PointerType),
		lvalueRefs: make(map[QualType]*LValueRefType),
		rvalueRefs: make(map[QualType]*RValueRefType),
		arrays:     make(map[arrayKey]*ArrayType),
		tuples:     make(map[string]*TupleType),
	}
	for id := BuiltinID(0); id < numBuiltins; id++ {
		ctx.builtins[id] = &BuiltinType{ID: id}
	}
	return ctx
}

func (c *Context) GetBuiltin(id BuiltinID) QualType {
	return NewQualType(c.builtins[id])
}

func (c *Context) CreatePointer(pointee QualType) QualType {
	if t, ok := c.pointers[pointee]; ok {
		return NewQualType(t)
	}
	t := &PointerType{Pointee: pointee}
	c.pointers[pointee] = t
	return NewQualType(t)
}

func (c *Context) CreateLValueRef(referenced QualType) QualType {
	if t, ok := c.lvalueRefs[referenced]; ok {
		return NewQualType(t)
	}
	t := &LValueRefType{Referenced: referenced}
	c.lvalueRefs[referenced] = t
	return NewQualType(t)
}

func (c *Context) CreateRValueRef(referenced QualType) QualType {
	if t, ok := c.rvalueRefs[referenced]; ok {
		return NewQualType(t)
	}
	t := &RValueRefType{Referenced: referenced}
	c.rvalueRefs[referenced] = t
	return NewQualType(t)
}

func (c *Context) CreateArray(elem QualType, size int64) QualType {
	key := arrayKey{elem: elem, size: size}
	if t, ok := c.arrays[key]; ok {
		return NewQualType(t)
	}
	t := &ArrayType{Elem: elem, Size: size}
	c.arrays[key] = t
	return NewQualType(t)
}

func (c *Context) CreateTuple(elems []QualType) QualType {
	key := tupleKey(elems)
	if t, ok := c.tuples[key]; ok {
		return NewQualType(t)
	}
	owned := make([]QualType, len(elems))
	copy(owned, elems)
	t := &TupleType{Elems: owned}
	c.tuples[key] = t
	return NewQualType(t)
}

// AddUserDefined creates the user-defined type for decl and installs the
// decl's back-reference in the same step, so no half-linked type is ever
// observable.
func (c *Context) AddUserDefined(kind UserDefinedKind, decl TypeDecl) QualType {
	t := &UserDefinedType{kind: kind, decl: decl}
	decl.SetTypeForDecl(t)
	c.userDefined = append(c.userDefined, t)
	return NewQualType(t)
}

// tupleKey renders the element list to a map key. Element types are already
// canonical, so their pointer identities fully determine structure.
func tupleKey(elems []QualType) string {
	var sb strings.Builder
	for _, e := range elems {
		fmt.Fprintf(&sb, "%p/%d;", e.Ty, e.Quals)
	}
	return sb.String()
}
