package sema

import (
	"github.com/tidwall/btree"

	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/cst"
)

// DeclID orders incomplete declarations by registration so that scheduling
// and diagnostics are deterministic. Go map iteration order would otherwise
// leak into the translation order.
type DeclID int

// IncompleteDecl is one declaration whose resolution was deferred out of
// Phase 0. It remembers the dependencies that blocked it, the scope it was
// declared in, and enough source backing to re-resolve in Phase 1.
type IncompleteDecl interface {
	Dependencies() []*Dependency
	SetDependencies([]*Dependency)
	AddNameDepend(id cst.Identifier, strong bool)
	AddValueDepend(decl ast.Decl, strong bool)
	EnclosingScope() *Scope
	// DeclName and ReprRange feed diagnostics.
	DeclName() string
	ReprRange() cst.Range
}

type incompleteBase struct {
	deps  []*Dependency
	scope *Scope
}

func newIncompleteBase(deps []*Dependency, scope *Scope) incompleteBase {
	return incompleteBase{deps: deps, scope: scope}
}

func (b *incompleteBase) Dependencies() []*Dependency { return b.deps }

func (b *incompleteBase) SetDependencies(deps []*Dependency) { b.deps = deps }

func (b *incompleteBase) AddNameDepend(id cst.Identifier, strong bool) {
	b.deps = append(b.deps, NewNameDependency(id, strong))
}

func (b *incompleteBase) AddValueDepend(decl ast.Decl, strong bool) {
	b.deps = append(b.deps, NewDeclDependency(decl, strong))
}

func (b *incompleteBase) EnclosingScope() *Scope { return b.scope }

type IncompleteVarDecl struct {
	incompleteBase
	Decl     *ast.VarDecl
	Concrete *cst.VarDecl
	Context  ast.DeclContext
}

func (i *IncompleteVarDecl) DeclName() string { return i.Decl.Name() }

func (i *IncompleteVarDecl) ReprRange() cst.Range { return i.Concrete.NameRange }

// IncompleteTagDecl covers class and ADT declarations whose members carried
// unresolved types.
type IncompleteTagDecl struct {
	incompleteBase
	Halfway  ast.Decl
	Concrete cst.Decl
}

func (i *IncompleteTagDecl) DeclName() string {
	switch d := i.Halfway.(type) {
	case *ast.ClassDecl:
		return d.Name()
	case *ast.ADTDecl:
		return d.Name()
	case *ast.EnumDecl:
		return d.Name()
	}
	panic("sema: tag entry for a non-tag declaration")
}

func (i *IncompleteTagDecl) ReprRange() cst.Range { return i.Concrete.Range() }

type IncompleteValueCtorDecl struct {
	incompleteBase
	Decl     *ast.ValueCtorDecl
	Concrete *cst.ValueConstructor
}

func (i *IncompleteValueCtorDecl) DeclName() string { return i.Decl.Name() }

func (i *IncompleteValueCtorDecl) ReprRange() cst.Range { return i.Concrete.NameRange }

type IncompleteUsingDecl struct {
	incompleteBase
	Decl     *ast.UsingDecl
	Concrete *cst.UsingDecl
}

func (i *IncompleteUsingDecl) DeclName() string { return i.Decl.Name() }

func (i *IncompleteUsingDecl) ReprRange() cst.Range { return i.Concrete.NameRange }

// IncompleteFuncDecl defers a whole function. Functions never participate
// in the dependency graph; they are translated after every other
// declaration is complete.
type IncompleteFuncDecl struct {
	incompleteBase
	Concrete *cst.FuncDecl
	Context  ast.DeclContext
}

func (i *IncompleteFuncDecl) DeclName() string { return i.Concrete.Name }

func (i *IncompleteFuncDecl) ReprRange() cst.Range { return i.Concrete.NameRange }

// registry tracks every deferred declaration, keyed per kind for completeness
// checks and held in one insertion-ordered map for scheduling.
type registry struct {
	nextID DeclID
	order  btree.Map[DeclID, IncompleteDecl]

	vars   map[*ast.VarDecl]DeclID
	tags   map[ast.Decl]DeclID
	ctors  map[*ast.ValueCtorDecl]DeclID
	usings map[*ast.UsingDecl]DeclID
	funcs  []*IncompleteFuncDecl
}

func newRegistry() *registry {
	return &registry{
		vars:   make(map[*ast.VarDecl]DeclID),
		tags:   make(map[ast.Decl]DeclID),
		ctors:  make(map[*ast.ValueCtorDecl]DeclID),
		usings: make(map[*ast.UsingDecl]DeclID),
	}
}

func (r *registry) add(inc IncompleteDecl) DeclID {
	id := r.nextID
	r.nextID++
	r.order.Set(id, inc)
	return id
}

func (r *registry) addVar(inc *IncompleteVarDecl) {
	r.vars[inc.Decl] = r.add(inc)
}

func (r *registry) addTag(inc *IncompleteTagDecl) {
	r.tags[inc.Halfway] = r.add(inc)
}

func (r *registry) addCtor(inc *IncompleteValueCtorDecl) {
	r.ctors[inc.Decl] = r.add(inc)
}

func (r *registry) addUsing(inc *IncompleteUsingDecl) {
	r.usings[inc.Decl] = r.add(inc)
}

func (r *registry) addFunc(inc *IncompleteFuncDecl) {
	r.funcs = append(r.funcs, inc)
}

func (r *registry) get(id DeclID) IncompleteDecl {
	inc, _ := r.order.Get(id)
	return inc
}

// searchUnfinished returns the registry entry for decl, or nil when decl
// is already complete. Dispatches on the declaration kind.
func (r *registry) searchUnfinished(decl ast.Decl) IncompleteDecl {
	switch d := decl.(type) {
	case *ast.VarDecl:
		if id, ok := r.vars[d]; ok {
			return r.get(id)
		}
	case *ast.ClassDecl, *ast.ADTDecl, *ast.EnumDecl:
		if id, ok := r.tags[decl]; ok {
			return r.get(id)
		}
	case *ast.ValueCtorDecl:
		if id, ok := r.ctors[d]; ok {
			return r.get(id)
		}
	case *ast.UsingDecl:
		if id, ok := r.usings[d]; ok {
			return r.get(id)
		}
	default:
		panic("sema: searchUnfinished on undeferrable declaration kind")
	}
	return nil
}

// each visits all non-function incomplete declarations in registration
// order.
func (r *registry) each(fn func(IncompleteDecl) bool) {
	iter := r.order.Iter()
	for ok := iter.First(); ok; ok = iter.Next() {
		if !fn(iter.Value()) {
			return
		}
	}
}
