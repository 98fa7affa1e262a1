package sema

import (
	"github.com/coral-lang/coral/internal/ast"
	"github.com/coral-lang/coral/internal/type_system"
)

// wrapImplicit extends an existing implicit cast chain instead of nesting
// implicit casts.
func wrapImplicit(e ast.Expr, step ast.CastStep) ast.Expr {
	if ice, ok := e.(*ast.ImplicitCastExpr); ok {
		return ice.AddCastStep(step)
	}
	return ast.NewImplicitCastExpr(e, []ast.CastStep{step})
}

// lvalueToRValue materializes a value out of an lvalue. Qualifiers do not
// survive the load.
func (s *Sema) lvalueToRValue(e ast.Expr) ast.Expr {
	if e.ValueCat() == ast.RValue {
		return e
	}
	return wrapImplicit(e, ast.NewCastStep(ast.ICSKLValueToRValue, e.Type().Unqualified(), ast.RValue))
}

// implicitCastTo converts e to dest using implicit steps only: the
// promotions, lvalue-to-rvalue, qualification adjustment and the null
// pointer conversion. Anything else requires an explicit cast.
func (s *Sema) implicitCastTo(e ast.Expr, dest type_system.QualType) (ast.Expr, bool) {
	e = s.lvalueToRValue(e)
	if e.Type() == dest {
		return e, true
	}

	// nil literal to any pointer type.
	if _, isPtr := dest.Ty.(*type_system.PointerType); isPtr {
		if _, isNil := e.(*ast.NilLiteralExpr); isNil {
			return wrapImplicit(e, ast.NewCastStep(ast.ICSKNilToPointer, dest, ast.RValue)), true
		}
	}

	if from, to := builtinIDOf(e.Type()), builtinIDOf(dest); from != nil && to != nil {
		if kind, ok := promotionKind(*from, *to); ok {
			return wrapImplicit(e, ast.NewCastStep(kind, dest.Unqualified(), ast.RValue)), true
		}
	}

	if e.Type().Unqualified() == dest.Unqualified() {
		return wrapImplicit(e, ast.NewCastStep(ast.ICSKAdjustQual, dest, ast.RValue)), true
	}

	if fromPtr, ok := e.Type().Ty.(*type_system.PointerType); ok {
		if toPtr, ok := dest.Ty.(*type_system.PointerType); ok {
			if qualWidens(fromPtr.Pointee, toPtr.Pointee) {
				return wrapImplicit(e, ast.NewCastStep(ast.CSKAdjustPtrQual, dest, ast.RValue)), true
			}
		}
	}

	return e, false
}

// promotionKind returns the implicit widening step between two builtins of
// the same family, if one exists.
func promotionKind(from, to type_system.BuiltinID) (ast.CastStepKind, bool) {
	switch {
	case from.IsSigned() && to.IsSigned() && from.BitWidth() < to.BitWidth():
		return ast.ICSKIntPromote, true
	case from.IsUnsigned() && to.IsUnsigned() && from.BitWidth() < to.BitWidth():
		return ast.ICSKUIntPromote, true
	case from.IsFloating() && to.IsFloating() && from.BitWidth() < to.BitWidth():
		return ast.ICSKFloatPromote, true
	}
	return 0, false
}

// qualWidens reports whether going from one pointee to the other only adds
// qualifiers.
func qualWidens(from, to type_system.QualType) bool {
	return from.Ty == to.Ty && from.Quals&to.Quals == from.Quals && from.Quals != to.Quals
}

// usualArithConversions brings both operands of a binary operator to a
// common builtin type. Only same-family widening happens implicitly; mixing
// signedness or integer and floating operands needs an explicit cast.
func (s *Sema) usualArithConversions(lhs, rhs ast.Expr) (ast.Expr, ast.Expr, type_system.QualType, bool) {
	lhs = s.lvalueToRValue(lhs)
	rhs = s.lvalueToRValue(rhs)

	if lhs.Type() == rhs.Type() {
		return lhs, rhs, lhs.Type(), true
	}

	from, to := builtinIDOf(lhs.Type()), builtinIDOf(rhs.Type())
	if from == nil || to == nil {
		return lhs, rhs, type_system.QualType{}, false
	}
	if converted, ok := s.implicitCastTo(lhs, rhs.Type()); ok {
		return converted, rhs, rhs.Type(), true
	}
	if converted, ok := s.implicitCastTo(rhs, lhs.Type()); ok {
		return lhs, converted, lhs.Type(), true
	}
	return lhs, rhs, type_system.QualType{}, false
}

// buildStaticCastSteps produces the step chain for a static cast, or nil
// when the conversion is not expressible. The returned expression is the
// operand with any lvalue-to-rvalue load already applied as an implicit
// cast; the chain itself belongs to the explicit cast node.
func (s *Sema) buildStaticCastSteps(e ast.Expr, dest type_system.QualType) ([]ast.CastStep, ast.Expr) {
	e = s.lvalueToRValue(e)
	var steps []ast.CastStep

	switch {
	case e.Type().Unqualified() == dest.Unqualified():
		steps = append(steps, ast.NewCastStep(ast.ICSKAdjustQual, dest, ast.RValue))

	case builtinIDOf(e.Type()) != nil && builtinIDOf(dest) != nil:
		kind, ok := staticBuiltinCastKind(*builtinIDOf(e.Type()), *builtinIDOf(dest))
		if !ok {
			return nil, nil
		}
		steps = append(steps, ast.NewCastStep(kind, dest.Unqualified(), ast.RValue))
		if dest.Quals != 0 {
			steps = append(steps, ast.NewCastStep(ast.ICSKAdjustQual, dest, ast.RValue))
		}

	default:
		fromPtr, fromIsPtr := e.Type().Ty.(*type_system.PointerType)
		toPtr, toIsPtr := dest.Ty.(*type_system.PointerType)
		if _, isNil := e.(*ast.NilLiteralExpr); isNil && toIsPtr {
			steps = append(steps, ast.NewCastStep(ast.ICSKNilToPointer, dest, ast.RValue))
			break
		}
		if fromIsPtr && toIsPtr && qualWidens(fromPtr.Pointee, toPtr.Pointee) {
			steps = append(steps, ast.NewCastStep(ast.CSKAdjustPtrQual, dest, ast.RValue))
			break
		}
		return nil, nil
	}

	return steps, e
}

// staticBuiltinCastKind names the step an explicit static cast between two
// builtins performs. Same-family widening reuses the implicit promotion
// kinds.
func staticBuiltinCastKind(from, to type_system.BuiltinID) (ast.CastStepKind, bool) {
	switch {
	case from.IsSigned() && to.IsSigned():
		if from.BitWidth() < to.BitWidth() {
			return ast.ICSKIntPromote, true
		}
		return ast.ECSKIntDowngrade, true
	case from.IsUnsigned() && to.IsUnsigned():
		if from.BitWidth() < to.BitWidth() {
			return ast.ICSKUIntPromote, true
		}
		return ast.ECSKUIntDowngrade, true
	case from.IsFloating() && to.IsFloating():
		if from.BitWidth() < to.BitWidth() {
			return ast.ICSKFloatPromote, true
		}
		return ast.ECSKFloatDowngrade, true
	case from.IsSigned() && to.IsUnsigned():
		return ast.ECSKSignedToUnsigned, true
	case from.IsUnsigned() && to.IsSigned():
		return ast.ECSKUnsignedToSigned, true
	case from.IsSigned() && to.IsFloating():
		return ast.ECSKIntToFloat, true
	case from.IsUnsigned() && to.IsFloating():
		return ast.ECSKUIntToFloat, true
	case from.IsFloating() && to.IsSigned():
		return ast.ECSKFloatToInt, true
	case from.IsFloating() && to.IsUnsigned():
		return ast.ECSKFloatToUInt, true
	}
	return 0, false
}
