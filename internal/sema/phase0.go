package sema

import (
	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/cst"
	"github.com/coral-lang/coral/internal/diag"
	"github.com/coral-lang/coral/internal/set"
	"github.com/coral-lang/coral/internal/type_system"
)

// ActOnTransUnit is the Phase-0 entry: it creates the AST root, pushes the
// file scope and the root declaration context, and visits every top-level
// declaration. Declarations that could not be fully resolved end up in the
// incomplete registry with the AST holding partial nodes.
func (s *Sema) ActOnTransUnit(tu *cst.TransUnit) *ast.TransUnitDecl {
	transUnit := ast.NewTransUnitDecl(s.astCtx)
	s.pushDeclContext(transUnit)
	s.pushScope(ScopeFile)
	for _, decl := range tu.Decls {
		d, _ := s.ActOnDecl(decl)
		if d != nil {
			transUnit.AddDecl(d)
		}
	}
	return transUnit
}

// ActOnDecl dispatches on the CST declaration kind and returns the partial
// AST node plus whether it resolved completely.
func (s *Sema) ActOnDecl(decl cst.Decl) (ast.Decl, bool) {
	switch d := decl.(type) {
	case *cst.VarDecl:
		return s.ActOnVarDecl(d)
	case *cst.ClassDecl:
		return s.ActOnClassDecl(d)
	case *cst.ADTDecl:
		return s.ActOnADTDecl(d)
	case *cst.EnumDecl:
		return s.ActOnEnumDecl(d)
	case *cst.UsingDecl:
		return s.ActOnUsingDecl(d)
	case *cst.FuncDecl:
		return s.ActOnFuncDecl(d)
	case *cst.ForwardDecl:
		panic("sema: forward declarations are not implemented")
	case *cst.TemplatedDecl:
		panic("sema: templated declarations are not implemented")
	}
	panic("sema: unknown declaration kind")
}

// ResolveType is the Phase-0 type resolver: it either produces a type or
// the list of dependencies that keep the type unresolved.
func (s *Sema) ResolveType(ty cst.Type) TypeResult {
	switch t := ty.(type) {
	case *cst.BuiltinType:
		return resolvedType(s.resolveBuiltinImpl(t))
	case *cst.UserDefinedType:
		return s.resolveUserDefinedType(t)
	case *cst.ComposedType:
		return s.resolveComposedType(t)
	case *cst.TemplatedType:
		panic("sema: templated types are not implemented")
	}
	panic("sema: unknown type kind")
}

func (s *Sema) resolveUserDefinedType(uty *cst.UserDefinedType) TypeResult {
	lookupResult := s.LookupType(s.currentScope(), uty.Name, false)
	if !lookupResult.IsNil() {
		if !s.checkTypeComplete(lookupResult.Ty) {
			decl := type_system.DeclOfUserDefined(lookupResult.Ty).(ast.Decl)
			return deferredType([]*Dependency{NewDeclDependency(decl, true)})
		}
		return resolvedType(lookupResult)
	}
	return deferredType([]*Dependency{NewNameDependency(uty.Name.Clone(), true)})
}

func (s *Sema) resolveComposedType(cty *cst.ComposedType) TypeResult {
	rootResult := s.ResolveType(cty.Root)
	if rootResult.Resolved() {
		ret := rootResult.Type()
		for i, spec := range cty.Specs {
			specRange := cty.SpecRanges[i]
			switch spec {
			case cst.SpecPointer:
				ret = s.astCtx.CreatePointer(ret)
			case cst.SpecLValueRef:
				ret = s.astCtx.CreateLValueRef(ret)
			case cst.SpecRValueRef:
				ret = s.astCtx.CreateRValueRef(ret)
			case cst.SpecConst:
				if ret.IsConst() {
					s.diags.Diag(diag.Error, diag.DuplicateQual("const"), specRange)
				} else {
					ret = ret.AddConst()
				}
			case cst.SpecVolatile:
				if ret.IsVolatile() {
					s.diags.Diag(diag.Error, diag.DuplicateQual("volatile"), specRange)
				} else {
					ret = ret.AddVolatile()
				}
			case cst.SpecRestrict:
				if ret.IsRestrict() {
					s.diags.Diag(diag.Error, diag.DuplicateQual("restrict"), specRange)
				} else {
					ret = ret.AddRestrict()
				}
			}
		}
		return resolvedType(ret)
	}

	// A pointer or reference anywhere in the chain makes a forward
	// reference legal, so every collected dependency becomes weak.
	deps := rootResult.Dependencies()
	if cty.HasIndirection() {
		for _, dep := range deps {
			dep.SetStrong(false)
		}
	}
	return deferredType(deps)
}

func (s *Sema) ActOnVarDecl(decl *cst.VarDecl) (ast.Decl, bool) {
	if prevVar := s.currentScope().LookupVarLocal(decl.Name); prevVar != nil {
		s.diags.Diag(diag.Error, diag.Redefinition(decl.Name), decl.NameRange)
		return nil, false
	}
	if prevType := s.currentScope().LookupTypeLocal(decl.Name); !prevType.IsNil() {
		s.diags.Diag(diag.Error, diag.Redefinition(decl.Name), decl.NameRange)
		return nil, false
	}

	typeResult := s.ResolveType(decl.Type)
	if typeResult.Resolved() {
		varDecl := ast.NewVarDecl(s.currentDeclContext(), decl.Name, typeResult.Type())
		s.currentScope().AddVar(varDecl)
		return varDecl, true
	}

	varDecl := ast.NewVarDecl(s.currentDeclContext(), decl.Name, type_system.QualType{})
	s.currentScope().AddVar(varDecl)
	s.incomplete.addVar(&IncompleteVarDecl{
		incompleteBase: newIncompleteBase(typeResult.Dependencies(), s.currentScope()),
		Decl:           varDecl,
		Concrete:       decl,
		Context:        s.currentDeclContext(),
	})
	return varDecl, false
}

func (s *Sema) ActOnClassDecl(decl *cst.ClassDecl) (ast.Decl, bool) {
	if prevType := s.currentScope().LookupTypeLocal(decl.Name); !prevType.IsNil() {
		s.diags.Diag(diag.Error, diag.Redefinition(decl.Name), decl.NameRange)
		return nil, false
	}

	var collected []*Dependency
	classDecl := ast.NewClassDecl(s.currentDeclContext(), decl.Name)
	s.pushDeclContext(classDecl)
	s.pushScope(ScopeClass)

	for _, subDecl := range decl.SubDecls {
		d, complete := s.ActOnDecl(subDecl)
		if d == nil {
			continue
		}
		if !complete {
			collected = append(collected, NewDeclDependency(d, true))
		}
		s.currentDeclContext().AddDecl(d)
	}

	s.popScope()
	s.popDeclContext()

	s.currentScope().AddType(decl.Name,
		s.astCtx.AddUserDefined(type_system.UDClass, classDecl))

	if len(collected) > 0 {
		s.incomplete.addTag(&IncompleteTagDecl{
			incompleteBase: newIncompleteBase(collected, s.currentScope()),
			Halfway:        classDecl,
			Concrete:       decl,
		})
	}

	return classDecl, len(collected) == 0
}

func (s *Sema) ActOnADTDecl(decl *cst.ADTDecl) (ast.Decl, bool) {
	if prevType := s.currentScope().LookupTypeLocal(decl.Name); !prevType.IsNil() {
		s.diags.Diag(diag.Error, diag.Redefinition(decl.Name), decl.NameRange)
		return nil, false
	}

	var collected []*Dependency
	adtDecl := ast.NewADTDecl(s.currentDeclContext(), decl.Name)
	s.pushDeclContext(adtDecl)
	s.pushScope(ScopeADT)

	for i := range decl.Ctors {
		ctorDecl, complete := s.ActOnValueConstructor(&decl.Ctors[i])
		if !complete {
			collected = append(collected, NewDeclDependency(ctorDecl, true))
		}
		s.currentDeclContext().AddDecl(ctorDecl)
	}

	s.popScope()
	s.popDeclContext()

	s.currentScope().AddType(decl.Name,
		s.astCtx.AddUserDefined(type_system.UDADT, adtDecl))

	if len(collected) > 0 {
		s.incomplete.addTag(&IncompleteTagDecl{
			incompleteBase: newIncompleteBase(collected, s.currentScope()),
			Halfway:        adtDecl,
			Concrete:       decl,
		})
	}

	return adtDecl, len(collected) == 0
}

func (s *Sema) ActOnValueConstructor(ctor *cst.ValueConstructor) (ast.Decl, bool) {
	typeResult := s.ResolveType(ctor.Underlying)
	underlying := type_system.QualType{}
	if typeResult.Resolved() {
		underlying = typeResult.Type()
	}
	ctorDecl := ast.NewValueCtorDecl(s.currentDeclContext(), ctor.Name, underlying)
	if !typeResult.Resolved() {
		s.incomplete.addCtor(&IncompleteValueCtorDecl{
			incompleteBase: newIncompleteBase(typeResult.Dependencies(), s.currentScope()),
			Decl:           ctorDecl,
			Concrete:       ctor,
		})
	}
	return ctorDecl, typeResult.Resolved()
}

func (s *Sema) ActOnEnumDecl(decl *cst.EnumDecl) (ast.Decl, bool) {
	if prevType := s.currentScope().LookupTypeLocal(decl.Name); !prevType.IsNil() {
		s.diags.Diag(diag.Error, diag.Redefinition(decl.Name), decl.NameRange)
		return nil, false
	}

	enumDecl := ast.NewEnumDecl(s.currentDeclContext(), decl.Name)
	s.pushDeclContext(enumDecl)
	s.pushScope(ScopeEnum)

	var value int64
	seen := set.NewSet[string]()
	for _, e := range decl.Enumerators {
		if seen.Contains(e.Name) {
			s.diags.Diag(diag.Error, diag.Redeclaration(e.Name), e.NameRange)
			continue
		}
		if e.Value.IsSome() {
			value = e.Value.Unwrap()
		}
		seen.Add(e.Name)
		s.currentDeclContext().AddDecl(
			ast.NewEnumeratorDecl(s.currentDeclContext(), e.Name, value))
		value++
	}

	s.popScope()
	s.popDeclContext()

	s.currentScope().AddType(decl.Name,
		s.astCtx.AddUserDefined(type_system.UDEnum, enumDecl))

	return enumDecl, true
}

func (s *Sema) ActOnUsingDecl(decl *cst.UsingDecl) (ast.Decl, bool) {
	if prevType := s.currentScope().LookupTypeLocal(decl.Name); !prevType.IsNil() {
		s.diags.Diag(diag.Error, diag.Redefinition(decl.Name), decl.NameRange)
		return nil, false
	}

	typeResult := s.ResolveType(decl.Aliasee)
	aliasee := type_system.QualType{}
	if typeResult.Resolved() {
		aliasee = typeResult.Type()
	}
	usingDecl := ast.NewUsingDecl(s.currentDeclContext(), decl.Name, aliasee)
	s.currentScope().AddType(decl.Name,
		s.astCtx.AddUserDefined(type_system.UDAlias, usingDecl))
	if !typeResult.Resolved() {
		s.incomplete.addUsing(&IncompleteUsingDecl{
			incompleteBase: newIncompleteBase(typeResult.Dependencies(), s.currentScope()),
			Decl:           usingDecl,
			Concrete:       decl,
		})
	}

	return usingDecl, typeResult.Resolved()
}

// ActOnFuncDecl always defers: function signatures and bodies are resolved
// in Phase 1 once every type name is visible.
func (s *Sema) ActOnFuncDecl(decl *cst.FuncDecl) (ast.Decl, bool) {
	s.incomplete.addFunc(&IncompleteFuncDecl{
		incompleteBase: newIncompleteBase(nil, s.currentScope()),
		Concrete:       decl,
		Context:        s.currentDeclContext(),
	})
	return nil, false
}
