package ast

import (
	"github.com/moznion/go-optional"

	"github.com/coral-lang/coral/internal/cst"
	"github.com/coral-lang/coral/internal/type_system"
)

type ValueCategory int

const (
	LValue ValueCategory = iota
	RValue
)

func (vc ValueCategory) String() string {
	if vc == LValue {
		return "lvalue"
	}
	return "rvalue"
}

//sumtype:decl

type Expr interface {
	isExpr()
	Type() type_system.QualType
	ValueCat() ValueCategory
	Accept(v ExprVisitor) ActionResult
}

func (*IntLiteralExpr) isExpr()    {}
func (*UIntLiteralExpr) isExpr()   {}
func (*FloatLiteralExpr) isExpr()  {}
func (*CharLiteralExpr) isExpr()   {}
func (*StringLiteralExpr) isExpr() {}
func (*BoolLiteralExpr) isExpr()   {}
func (*NilLiteralExpr) isExpr()    {}
func (*IdRefExpr) isExpr()         {}
func (*ParenExpr) isExpr()         {}
func (*UnaryExpr) isExpr()         {}
func (*BinaryExpr) isExpr()        {}
func (*AssignExpr) isExpr()        {}
func (*CondExpr) isExpr()          {}
func (*ImplicitCastExpr) isExpr()  {}
func (*ExplicitCastExpr) isExpr()  {}

type exprBase struct {
	ty  type_system.QualType
	cat ValueCategory
}

func (e exprBase) Type() type_system.QualType { return e.ty }
func (e exprBase) ValueCat() ValueCategory    { return e.cat }

// CastStepKind enumerates the atomic conversions a cast chain is built
// from. The ICSK steps may be introduced implicitly, the ECSK steps only by
// an explicit static cast, and the CSK steps by either.
type CastStepKind int

const (
	ICSKIntPromote CastStepKind = iota
	ICSKUIntPromote
	ICSKFloatPromote
	ICSKLValueToRValue
	ICSKAdjustQual
	ICSKNilToPointer

	ECSKIntDowngrade
	ECSKUIntDowngrade
	ECSKFloatDowngrade
	ECSKSignedToUnsigned
	ECSKUnsignedToSigned
	ECSKIntToFloat
	ECSKUIntToFloat
	ECSKFloatToInt
	ECSKFloatToUInt

	CSKAdjustPtrQual
	CSKAdjustRefQual
)

// IsImplicit reports whether the step may appear in an implicit cast chain.
func (k CastStepKind) IsImplicit() bool {
	return k <= ICSKNilToPointer || k == CSKAdjustPtrQual || k == CSKAdjustRefQual
}

type CastStep struct {
	Kind    CastStepKind
	DestTy  type_system.QualType
	DestCat ValueCategory
}

func NewCastStep(kind CastStepKind, destTy type_system.QualType, destCat ValueCategory) CastStep {
	return CastStep{Kind: kind, DestTy: destTy, DestCat: destCat}
}

type IntLiteralExpr struct {
	exprBase
	Value int64
}

func NewIntLiteralExpr(value int64, ty type_system.QualType) *IntLiteralExpr {
	return &IntLiteralExpr{exprBase: exprBase{ty: ty, cat: RValue}, Value: value}
}

func (e *IntLiteralExpr) Accept(v ExprVisitor) ActionResult { return v.VisitIntLiteralExpr(e) }

type UIntLiteralExpr struct {
	exprBase
	Value uint64
}

func NewUIntLiteralExpr(value uint64, ty type_system.QualType) *UIntLiteralExpr {
	return &UIntLiteralExpr{exprBase: exprBase{ty: ty, cat: RValue}, Value: value}
}

func (e *UIntLiteralExpr) Accept(v ExprVisitor) ActionResult { return v.VisitUIntLiteralExpr(e) }

type FloatLiteralExpr struct {
	exprBase
	Value float64
}

func NewFloatLiteralExpr(value float64, ty type_system.QualType) *FloatLiteralExpr {
	return &FloatLiteralExpr{exprBase: exprBase{ty: ty, cat: RValue}, Value: value}
}

func (e *FloatLiteralExpr) Accept(v ExprVisitor) ActionResult { return v.VisitFloatLiteralExpr(e) }

type CharLiteralExpr struct {
	exprBase
	Value rune
}

func NewCharLiteralExpr(value rune, ty type_system.QualType) *CharLiteralExpr {
	return &CharLiteralExpr{exprBase: exprBase{ty: ty, cat: RValue}, Value: value}
}

func (e *CharLiteralExpr) Accept(v ExprVisitor) ActionResult { return v.VisitCharLiteralExpr(e) }

type StringLiteralExpr struct {
	exprBase
	Value string
}

func NewStringLiteralExpr(value string, ty type_system.QualType) *StringLiteralExpr {
	return &StringLiteralExpr{exprBase: exprBase{ty: ty, cat: RValue}, Value: value}
}

func (e *StringLiteralExpr) Accept(v ExprVisitor) ActionResult { return v.VisitStringLiteralExpr(e) }

type BoolLiteralExpr struct {
	exprBase
	Value bool
}

func NewBoolLiteralExpr(value bool, ty type_system.QualType) *BoolLiteralExpr {
	return &BoolLiteralExpr{exprBase: exprBase{ty: ty, cat: RValue}, Value: value}
}

func (e *BoolLiteralExpr) Accept(v ExprVisitor) ActionResult { return v.VisitBoolLiteralExpr(e) }

type NilLiteralExpr struct {
	exprBase
}

func NewNilLiteralExpr(ty type_system.QualType) *NilLiteralExpr {
	return &NilLiteralExpr{exprBase: exprBase{ty: ty, cat: RValue}}
}

func (e *NilLiteralExpr) Accept(v ExprVisitor) ActionResult { return v.VisitNilLiteralExpr(e) }

type IdRefExpr struct {
	exprBase
	Var *VarDecl
}

func NewIdRefExpr(varDecl *VarDecl, ty type_system.QualType, cat ValueCategory) *IdRefExpr {
	return &IdRefExpr{exprBase: exprBase{ty: ty, cat: cat}, Var: varDecl}
}

func (e *IdRefExpr) Accept(v ExprVisitor) ActionResult { return v.VisitIdRefExpr(e) }

// ParenExpr forwards the type and value category of its inner expression.
type ParenExpr struct {
	exprBase
	Inner Expr
}

func NewParenExpr(inner Expr) *ParenExpr {
	return &ParenExpr{
		exprBase: exprBase{ty: inner.Type(), cat: inner.ValueCat()},
		Inner:    inner,
	}
}

func (e *ParenExpr) Accept(v ExprVisitor) ActionResult { return v.VisitParenExpr(e) }

type UnaryExpr struct {
	exprBase
	Op      cst.UnaryOp
	Operand Expr
}

func NewUnaryExpr(op cst.UnaryOp, operand Expr, ty type_system.QualType, cat ValueCategory) *UnaryExpr {
	return &UnaryExpr{exprBase: exprBase{ty: ty, cat: cat}, Op: op, Operand: operand}
}

func (e *UnaryExpr) Accept(v ExprVisitor) ActionResult { return v.VisitUnaryExpr(e) }

type BinaryExpr struct {
	exprBase
	Op  cst.BinaryOp
	LHS Expr
	RHS Expr
}

func NewBinaryExpr(op cst.BinaryOp, lhs, rhs Expr, ty type_system.QualType, cat ValueCategory) *BinaryExpr {
	return &BinaryExpr{exprBase: exprBase{ty: ty, cat: cat}, Op: op, LHS: lhs, RHS: rhs}
}

func (e *BinaryExpr) Accept(v ExprVisitor) ActionResult { return v.VisitBinaryExpr(e) }

type AssignExpr struct {
	exprBase
	Op       cst.AssignOp
	Assignee Expr
	Value    Expr
}

func NewAssignExpr(op cst.AssignOp, assignee, value Expr, ty type_system.QualType, cat ValueCategory) *AssignExpr {
	return &AssignExpr{exprBase: exprBase{ty: ty, cat: cat}, Op: op, Assignee: assignee, Value: value}
}

func (e *AssignExpr) Accept(v ExprVisitor) ActionResult { return v.VisitAssignExpr(e) }

// CondExpr requires both branches to have the same type; it is an lvalue
// only when both branches are lvalues.
type CondExpr struct {
	exprBase
	Cond Expr
	Then Expr
	Else Expr
}

func NewCondExpr(cond, then, els Expr, ty type_system.QualType, cat ValueCategory) *CondExpr {
	if then.Type() != els.Type() {
		panic("ast: conditional branches must have equal types")
	}
	return &CondExpr{exprBase: exprBase{ty: ty, cat: cat}, Cond: cond, Then: then, Else: els}
}

func (e *CondExpr) Accept(v ExprVisitor) ActionResult { return v.VisitCondExpr(e) }

// ImplicitCastExpr always carries a non-empty step chain; its type and
// category come from the last step.
type ImplicitCastExpr struct {
	exprBase
	Operand Expr
	Steps   []CastStep
}

func NewImplicitCastExpr(operand Expr, steps []CastStep) *ImplicitCastExpr {
	if len(steps) == 0 {
		panic("ast: implicit cast requires at least one step")
	}
	last := steps[len(steps)-1]
	return &ImplicitCastExpr{
		exprBase: exprBase{ty: last.DestTy, cat: last.DestCat},
		Operand:  operand,
		Steps:    steps,
	}
}

// AddCastStep extends the chain and re-derives the result type and
// category.
func (e *ImplicitCastExpr) AddCastStep(step CastStep) *ImplicitCastExpr {
	return NewImplicitCastExpr(e.Operand, append(e.Steps, step))
}

func (e *ImplicitCastExpr) Accept(v ExprVisitor) ActionResult { return v.VisitImplicitCastExpr(e) }

// ExplicitCastExpr carries a step chain only for static casts; const and
// bit casts record just the destination.
type ExplicitCastExpr struct {
	exprBase
	Op      cst.CastOp
	Operand Expr
	Steps   optional.Option[[]CastStep]
}

func NewStaticCastExpr(operand Expr, steps []CastStep) *ExplicitCastExpr {
	if len(steps) == 0 {
		panic("ast: static cast requires a step chain")
	}
	last := steps[len(steps)-1]
	return &ExplicitCastExpr{
		exprBase: exprBase{ty: last.DestTy, cat: last.DestCat},
		Op:       cst.CastStatic,
		Operand:  operand,
		Steps:    optional.Some(steps),
	}
}

func NewExplicitCastExpr(op cst.CastOp, operand Expr, destTy type_system.QualType, destCat ValueCategory) *ExplicitCastExpr {
	if op == cst.CastStatic {
		panic("ast: static cast requires a step chain")
	}
	return &ExplicitCastExpr{
		exprBase: exprBase{ty: destTy, cat: destCat},
		Op:       op,
		Operand:  operand,
		Steps:    optional.None[[]CastStep](),
	}
}

func (e *ExplicitCastExpr) Accept(v ExprVisitor) ActionResult { return v.VisitExplicitCastExpr(e) }
