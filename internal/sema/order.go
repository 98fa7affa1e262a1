package sema

import (
	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/diag"
	"github.com/coral-lang/coral/internal/set"
	"github.com/coral-lang/coral/internal/type_system"
)

// SubstituteDepends rewrites every by-name dependency into a by-decl
// dependency now that Phase 0 has bound every top-level name. Names that
// still do not resolve are reported and dropped so one bad reference does
// not poison the rest of the graph.
func (s *Sema) SubstituteDepends() {
	s.incomplete.each(func(inc IncompleteDecl) bool {
		deps := inc.Dependencies()
		kept := deps[:0]
		for _, dep := range deps {
			if !dep.IsByName() {
				kept = append(kept, dep)
				continue
			}
			id := dep.Name()
			ty := s.LookupType(inc.EnclosingScope(), id, false)
			if ty.IsNil() {
				s.diags.Diag(diag.Error, diag.NotDeclared(id.String()), id.NameRange)
				continue
			}
			decl := type_system.DeclOfUserDefined(ty.Ty).(ast.Decl)
			dep.ReplaceNameWithDecl(decl)
			kept = append(kept, dep)
		}
		inc.SetDependencies(kept)
		return true
	})
}

// FindTranslationOrder computes a completion order over the incomplete
// declarations: every entry appears after all of its strong prerequisites.
// Cycle detection is depth-first three-coloring; a grey node reached again
// while still on the stack is a cycle, reported once, and the partial order
// built so far is returned for Phase 1 to complete.
func (s *Sema) FindTranslationOrder() []IncompleteDecl {
	var order []IncompleteDecl
	permanents := set.NewSet[IncompleteDecl]()
	temporaries := set.NewSet[IncompleteDecl]()

	var visit func(IncompleteDecl) bool
	visit = func(inc IncompleteDecl) bool {
		if permanents.Contains(inc) {
			return true
		}
		if temporaries.Contains(inc) {
			s.diags.Diag(diag.Error, diag.CircularDepend(inc.DeclName()), inc.ReprRange())
			return false
		}

		temporaries.Add(inc)
		for _, dep := range inc.Dependencies() {
			if !dep.IsStrong() || dep.IsByName() {
				continue
			}
			target := s.incomplete.searchUnfinished(dep.Decl())
			if target == nil {
				// Already complete; nothing to order against.
				continue
			}
			if !visit(target) {
				return false
			}
		}
		temporaries.Remove(inc)
		permanents.Add(inc)
		order = append(order, inc)
		return true
	}

	s.incomplete.each(func(inc IncompleteDecl) bool {
		return visit(inc)
	})

	return order
}
