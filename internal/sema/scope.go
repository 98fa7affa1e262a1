package sema

import (
	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/type_system"
)

type ScopeFlags uint32

const (
	ScopeNone ScopeFlags = 0
	ScopeFile ScopeFlags = 1 << iota
	ScopeClass
	ScopeADT
	ScopeEnum
	ScopeFunction
	ScopeLoop
)

// Scope is one lexical scope. Each scope stores only its local bindings;
// lookup walks the parent chain explicitly. The enclosing function and loop
// scopes are located once at construction and never change.
type Scope struct {
	parent *Scope
	flags  ScopeFlags

	enclosingFunc *Scope
	enclosingLoop *Scope

	vars  map[string]*ast.VarDecl
	types map[string]type_system.QualType
	funcs map[string][]*ast.FuncDecl
}

func NewScope(parent *Scope, flags ScopeFlags) *Scope {
	s := &Scope{
		parent: parent,
		flags:  flags,
		vars:   make(map[string]*ast.VarDecl),
		types:  make(map[string]type_system.QualType),
		funcs:  make(map[string][]*ast.FuncDecl),
	}
	for cur := s; cur != nil; cur = cur.parent {
		if cur.HasFlags(ScopeFunction) {
			s.enclosingFunc = cur
			break
		}
	}
	for cur := s; cur != nil; cur = cur.parent {
		if cur.HasFlags(ScopeLoop) {
			s.enclosingLoop = cur
			break
		}
	}
	return s
}

func (s *Scope) Parent() *Scope { return s.parent }

func (s *Scope) HasFlags(flags ScopeFlags) bool {
	return s.flags&flags == flags
}

func (s *Scope) EnclosingFunctionScope() *Scope { return s.enclosingFunc }

func (s *Scope) EnclosingLoopScope() *Scope { return s.enclosingLoop }

func (s *Scope) AddVar(decl *ast.VarDecl) {
	s.vars[decl.Name()] = decl
}

func (s *Scope) AddType(name string, ty type_system.QualType) {
	s.types[name] = ty
}

func (s *Scope) AddFunction(decl *ast.FuncDecl) {
	s.funcs[decl.Name()] = append(s.funcs[decl.Name()], decl)
}

// ReplaceVar rebinds an existing name. The name must already be bound in
// this scope.
func (s *Scope) ReplaceVar(name string, decl *ast.VarDecl) {
	if _, ok := s.vars[name]; !ok {
		panic("sema: ReplaceVar on unbound name " + name)
	}
	s.vars[name] = decl
}

func (s *Scope) LookupVar(name string) *ast.VarDecl {
	for cur := s; cur != nil; cur = cur.parent {
		if d := cur.LookupVarLocal(name); d != nil {
			return d
		}
	}
	return nil
}

func (s *Scope) LookupVarLocal(name string) *ast.VarDecl {
	return s.vars[name]
}

func (s *Scope) LookupType(name string) type_system.QualType {
	for cur := s; cur != nil; cur = cur.parent {
		if ty := cur.LookupTypeLocal(name); !ty.IsNil() {
			return ty
		}
	}
	return type_system.QualType{}
}

func (s *Scope) LookupTypeLocal(name string) type_system.QualType {
	return s.types[name]
}

// AllFuncs returns the overload set for name. The nearest scope with any
// binding for the name wins; overload sets do not merge across scopes.
func (s *Scope) AllFuncs(name string) []*ast.FuncDecl {
	for cur := s; cur != nil; cur = cur.parent {
		if local := cur.AllFuncsLocal(name); len(local) > 0 {
			return local
		}
	}
	return nil
}

func (s *Scope) AllFuncsLocal(name string) []*ast.FuncDecl {
	return s.funcs[name]
}
