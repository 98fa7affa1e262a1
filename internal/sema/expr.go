package sema

import (
	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/cst"
	"github.com/coral-lang/coral/internal/diag"
	"github.com/coral-lang/coral/internal/type_system"
)

// ActOnExpr types one expression. A nil return means the expression could
// not be typed; the caller degrades gracefully so sibling errors still
// surface.
func (s *Sema) ActOnExpr(scope *Scope, expr cst.Expr) ast.Expr {
	switch e := expr.(type) {
	case *cst.LiteralExpr:
		return s.actOnLiteralExpr(e)
	case *cst.IdExpr:
		return s.actOnIdExpr(scope, e)
	case *cst.ParenExpr:
		inner := s.ActOnExpr(scope, e.Inner)
		if inner == nil {
			return nil
		}
		return ast.NewParenExpr(inner)
	case *cst.UnaryExpr:
		return s.actOnUnaryExpr(scope, e)
	case *cst.BinaryExpr:
		return s.actOnBinaryExpr(scope, e)
	case *cst.AssignExpr:
		return s.actOnAssignExpr(scope, e)
	case *cst.CondExpr:
		return s.actOnCondExpr(scope, e)
	case *cst.CastExpr:
		return s.actOnCastExpr(scope, e)
	}
	panic("sema: unknown expression kind")
}

// actOnLiteralExpr maps the literal's lexical kind onto the builtin type of
// the corresponding width. Every literal is an rvalue.
func (s *Sema) actOnLiteralExpr(lit *cst.LiteralExpr) ast.Expr {
	switch lit.Kind {
	case cst.LitInt:
		ty := s.astCtx.GetBuiltin(builtinIDs[lit.TypeKind])
		return ast.NewIntLiteralExpr(lit.Int, ty)
	case cst.LitUInt:
		ty := s.astCtx.GetBuiltin(builtinIDs[lit.TypeKind])
		return ast.NewUIntLiteralExpr(lit.UInt, ty)
	case cst.LitFloat:
		ty := s.astCtx.GetBuiltin(builtinIDs[lit.TypeKind])
		return ast.NewFloatLiteralExpr(lit.Float, ty)
	case cst.LitChar:
		return ast.NewCharLiteralExpr(lit.Char, s.astCtx.GetBuiltin(type_system.BuiltinU8))
	case cst.LitString:
		elem := s.astCtx.GetBuiltin(type_system.BuiltinU8).AddConst()
		return ast.NewStringLiteralExpr(lit.Str, s.astCtx.CreatePointer(elem))
	case cst.LitBool:
		return ast.NewBoolLiteralExpr(lit.Bool, s.astCtx.GetBuiltin(type_system.BuiltinBool))
	case cst.LitNil:
		void := s.astCtx.GetBuiltin(type_system.BuiltinVoid)
		return ast.NewNilLiteralExpr(s.astCtx.CreatePointer(void))
	}
	panic("sema: unknown literal kind")
}

func (s *Sema) actOnIdExpr(scope *Scope, e *cst.IdExpr) ast.Expr {
	varDecl := scope.LookupVar(e.Name.Name)
	if varDecl == nil {
		s.diags.Diag(diag.Error, diag.NotDeclared(e.Name.Name), e.Name.NameRange)
		return nil
	}
	return ast.NewIdRefExpr(varDecl, varDecl.Type(), ast.LValue)
}

func (s *Sema) actOnUnaryExpr(scope *Scope, e *cst.UnaryExpr) ast.Expr {
	operand := s.ActOnExpr(scope, e.Operand)
	if operand == nil {
		return nil
	}

	switch e.Op {
	case cst.UnaryPlus, cst.UnaryMinus:
		operand = s.lvalueToRValue(operand)
		if id := builtinIDOf(operand.Type()); id == nil || !id.IsNumeric() {
			return nil
		}
		return ast.NewUnaryExpr(e.Op, operand, operand.Type(), ast.RValue)
	case cst.UnaryLogicNot:
		operand = s.lvalueToRValue(operand)
		if id := builtinIDOf(operand.Type()); id == nil || *id != type_system.BuiltinBool {
			return nil
		}
		return ast.NewUnaryExpr(e.Op, operand, operand.Type(), ast.RValue)
	case cst.UnaryBitNot:
		operand = s.lvalueToRValue(operand)
		if id := builtinIDOf(operand.Type()); id == nil || (!id.IsSigned() && !id.IsUnsigned()) {
			return nil
		}
		return ast.NewUnaryExpr(e.Op, operand, operand.Type(), ast.RValue)
	case cst.UnaryAddrOf:
		if operand.ValueCat() != ast.LValue {
			return nil
		}
		return ast.NewUnaryExpr(e.Op, operand, s.astCtx.CreatePointer(operand.Type()), ast.RValue)
	case cst.UnaryDeref:
		operand = s.lvalueToRValue(operand)
		ptr, ok := operand.Type().Ty.(*type_system.PointerType)
		if !ok {
			return nil
		}
		return ast.NewUnaryExpr(e.Op, operand, ptr.Pointee, ast.LValue)
	}
	panic("sema: unknown unary operator")
}

func (s *Sema) actOnBinaryExpr(scope *Scope, e *cst.BinaryExpr) ast.Expr {
	lhs := s.ActOnExpr(scope, e.LHS)
	rhs := s.ActOnExpr(scope, e.RHS)
	if lhs == nil || rhs == nil {
		return nil
	}

	boolTy := s.astCtx.GetBuiltin(type_system.BuiltinBool)

	if e.Op.IsLogical() {
		lhs = s.lvalueToRValue(lhs)
		rhs = s.lvalueToRValue(rhs)
		if lhs.Type() != boolTy || rhs.Type() != boolTy {
			return nil
		}
		return ast.NewBinaryExpr(e.Op, lhs, rhs, boolTy, ast.RValue)
	}

	lhs, rhs, common, ok := s.usualArithConversions(lhs, rhs)
	if !ok {
		return nil
	}
	if e.Op.IsComparison() {
		return ast.NewBinaryExpr(e.Op, lhs, rhs, boolTy, ast.RValue)
	}
	return ast.NewBinaryExpr(e.Op, lhs, rhs, common, ast.RValue)
}

// actOnAssignExpr requires an lvalue on the left and implicit
// convertibility of the right side to the left's unqualified type.
func (s *Sema) actOnAssignExpr(scope *Scope, e *cst.AssignExpr) ast.Expr {
	assignee := s.ActOnExpr(scope, e.Assignee)
	value := s.ActOnExpr(scope, e.Value)
	if assignee == nil || value == nil {
		return nil
	}
	if assignee.ValueCat() != ast.LValue || assignee.Type().IsConst() {
		return nil
	}
	converted, ok := s.implicitCastTo(value, assignee.Type().Unqualified())
	if !ok {
		return nil
	}
	return ast.NewAssignExpr(e.Op, assignee, converted, assignee.Type(), ast.LValue)
}

// actOnCondExpr requires both branches to have the same type; the result is
// an lvalue only when both branches are.
func (s *Sema) actOnCondExpr(scope *Scope, e *cst.CondExpr) ast.Expr {
	cond := s.ActOnExpr(scope, e.Cond)
	then := s.ActOnExpr(scope, e.Then)
	els := s.ActOnExpr(scope, e.Else)
	if cond == nil || then == nil || els == nil {
		return nil
	}

	cond = s.lvalueToRValue(cond)
	if cond.Type() != s.astCtx.GetBuiltin(type_system.BuiltinBool) {
		return nil
	}

	bothLValue := then.ValueCat() == ast.LValue && els.ValueCat() == ast.LValue
	if !bothLValue {
		then = s.lvalueToRValue(then)
		els = s.lvalueToRValue(els)
	}
	if then.Type() != els.Type() {
		return nil
	}

	cat := ast.RValue
	if bothLValue {
		cat = ast.LValue
	}
	return ast.NewCondExpr(cond, then, els, then.Type(), cat)
}

func (s *Sema) actOnCastExpr(scope *Scope, e *cst.CastExpr) ast.Expr {
	destTy := s.resolveTypePhase1(scope, e.DestType, true)
	if destTy.IsNil() {
		return nil
	}
	operand := s.ActOnExpr(scope, e.Operand)
	if operand == nil {
		return nil
	}

	switch e.Op {
	case cst.CastStatic:
		steps, converted := s.buildStaticCastSteps(operand, destTy)
		if steps == nil {
			return nil
		}
		return ast.NewStaticCastExpr(converted, steps)
	case cst.CastConst:
		return ast.NewExplicitCastExpr(cst.CastConst, operand, destTy, operand.ValueCat())
	case cst.CastBit:
		return ast.NewExplicitCastExpr(cst.CastBit, s.lvalueToRValue(operand), destTy, ast.RValue)
	}
	panic("sema: unknown cast operator")
}

func builtinIDOf(ty type_system.QualType) *type_system.BuiltinID {
	if bt, ok := ty.Ty.(*type_system.BuiltinType); ok {
		id := bt.ID
		return &id
	}
	return nil
}
