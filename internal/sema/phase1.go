package sema

import (
	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/cst"
	"github.com/coral-lang/coral/internal/diag"
	"github.com/coral-lang/coral/internal/type_system"
)

// PostTranslateIncompletes runs the Phase-1 fill pass over the scheduled
// order. Every entry re-resolves against its recorded scope; entries whose
// names were reported missing during substitution are skipped and stay
// unresolved.
func (s *Sema) PostTranslateIncompletes(order []IncompleteDecl) {
	for _, inc := range order {
		switch i := inc.(type) {
		case *IncompleteVarDecl:
			s.postTranslateVar(i)
		case *IncompleteTagDecl:
			// Nothing to fill: a tag completes as its members complete.
		case *IncompleteValueCtorDecl:
			s.postTranslateValueCtor(i)
		case *IncompleteUsingDecl:
			s.postTranslateUsing(i)
		case *IncompleteFuncDecl:
			panic("sema: functions are not completed by the fill pass")
		}
	}
}

func (s *Sema) postTranslateVar(i *IncompleteVarDecl) {
	ty := s.resolveTypePhase1(i.EnclosingScope(), i.Concrete.Type, false)
	if ty.IsNil() {
		return
	}
	i.Decl.SetType(ty)
}

func (s *Sema) postTranslateValueCtor(i *IncompleteValueCtorDecl) {
	ty := s.resolveTypePhase1(i.EnclosingScope(), i.Concrete.Underlying, false)
	if ty.IsNil() {
		return
	}
	i.Decl.SetType(ty)
}

func (s *Sema) postTranslateUsing(i *IncompleteUsingDecl) {
	ty := s.resolveTypePhase1(i.EnclosingScope(), i.Concrete.Aliasee, false)
	if ty.IsNil() {
		return
	}
	i.Decl.FillAliasee(ty)
}

// resolveTypePhase1 mirrors the Phase-0 resolver but produces a plain type:
// after substitution every resolvable name is visible. Duplicate qualifiers
// were already reported on the syntactic position in Phase 0 and are not
// re-reported here.
func (s *Sema) resolveTypePhase1(scope *Scope, ty cst.Type, diagnose bool) type_system.QualType {
	switch t := ty.(type) {
	case *cst.BuiltinType:
		return s.resolveBuiltinImpl(t)
	case *cst.UserDefinedType:
		return s.LookupType(scope, t.Name, diagnose)
	case *cst.ComposedType:
		ret := s.resolveTypePhase1(scope, t.Root, diagnose)
		if ret.IsNil() {
			return ret
		}
		for _, spec := range t.Specs {
			switch spec {
			case cst.SpecPointer:
				ret = s.astCtx.CreatePointer(ret)
			case cst.SpecLValueRef:
				ret = s.astCtx.CreateLValueRef(ret)
			case cst.SpecRValueRef:
				ret = s.astCtx.CreateRValueRef(ret)
			case cst.SpecConst:
				ret = ret.AddConst()
			case cst.SpecVolatile:
				ret = ret.AddVolatile()
			case cst.SpecRestrict:
				ret = ret.AddRestrict()
			}
		}
		return ret
	case *cst.TemplatedType:
		panic("sema: templated types are not implemented")
	}
	panic("sema: unknown type kind")
}

// TranslateFunctions builds the AST for every deferred function: signature
// first, then the body in a function-flagged scope with the parameters
// bound as variables.
func (s *Sema) TranslateFunctions() {
	for _, ifunc := range s.incomplete.funcs {
		s.translateFunction(ifunc)
	}
}

func (s *Sema) translateFunction(ifunc *IncompleteFuncDecl) {
	concrete := ifunc.Concrete

	paramTypes := make([]type_system.QualType, 0, len(concrete.ParamTypes))
	for _, pty := range concrete.ParamTypes {
		ty := s.resolveTypePhase1(ifunc.EnclosingScope(), pty, true)
		if ty.IsNil() {
			return
		}
		paramTypes = append(paramTypes, ty)
	}
	retType := s.resolveTypePhase1(ifunc.EnclosingScope(), concrete.RetType, true)
	if retType.IsNil() {
		return
	}

	paramNames := make([]string, len(concrete.ParamNames))
	copy(paramNames, concrete.ParamNames)

	funcDecl := ast.NewFuncDecl(ifunc.Context, concrete.Name, paramTypes, paramNames, retType)
	ifunc.Context.AddDecl(funcDecl)
	ifunc.EnclosingScope().AddFunction(funcDecl)

	if concrete.Body == nil {
		return
	}

	fnScope := NewScope(ifunc.EnclosingScope(), ScopeFunction)
	for idx, name := range paramNames {
		paramDecl := ast.NewVarDecl(funcDecl, name, paramTypes[idx])
		funcDecl.AddDecl(paramDecl)
		fnScope.AddVar(paramDecl)
	}
	funcDecl.Body = s.actOnCompoundStmt(fnScope, concrete.Body, funcDecl)
}

func (s *Sema) actOnCompoundStmt(scope *Scope, body *cst.CompoundStmt, fn *ast.FuncDecl) *ast.CompoundStmt {
	inner := NewScope(scope, ScopeNone)
	stmts := make([]ast.Stmt, 0, len(body.Stmts))
	for _, stmt := range body.Stmts {
		stmts = append(stmts, s.actOnStmt(inner, stmt, fn))
	}
	return &ast.CompoundStmt{Stmts: stmts}
}

func (s *Sema) actOnStmt(scope *Scope, stmt cst.Stmt, fn *ast.FuncDecl) ast.Stmt {
	switch st := stmt.(type) {
	case *cst.EmptyStmt:
		return &ast.EmptyStmt{}
	case *cst.ExprStmt:
		e := s.ActOnExpr(scope, st.E)
		if e == nil {
			return &ast.EmptyStmt{}
		}
		return &ast.ExprStmt{E: e}
	case *cst.DeclStmt:
		return s.actOnLocalDecl(scope, st.D, fn)
	case *cst.CompoundStmt:
		return s.actOnCompoundStmt(scope, st, fn)
	case *cst.ReturnStmt:
		if st.Value == nil {
			return &ast.ReturnStmt{}
		}
		value := s.ActOnExpr(scope, st.Value)
		if value == nil {
			return &ast.ReturnStmt{}
		}
		if converted, ok := s.implicitCastTo(value, fn.RetType().Unqualified()); ok {
			value = converted
		}
		return &ast.ReturnStmt{Value: value}
	}
	panic("sema: unknown statement kind")
}

func (s *Sema) actOnLocalDecl(scope *Scope, decl cst.Decl, fn *ast.FuncDecl) ast.Stmt {
	varDecl, ok := decl.(*cst.VarDecl)
	if !ok {
		// Only variables may be declared inside a function body.
		return &ast.EmptyStmt{}
	}
	if prev := scope.LookupVarLocal(varDecl.Name); prev != nil {
		s.diags.Diag(diag.Error, diag.Redefinition(varDecl.Name), varDecl.NameRange)
		return &ast.EmptyStmt{}
	}
	ty := s.resolveTypePhase1(scope, varDecl.Type, true)
	if ty.IsNil() {
		return &ast.EmptyStmt{}
	}
	local := ast.NewVarDecl(fn, varDecl.Name, ty)
	scope.AddVar(local)
	return &ast.DeclStmt{D: local}
}
