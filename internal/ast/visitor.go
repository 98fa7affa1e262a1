package ast

// ActionResult is the opaque value a backend produces per node. Semantic
// analysis never invokes a visitor itself; the contracts exist so code
// generators can walk the finished tree.
type ActionResult interface{}

type DeclVisitor interface {
	VisitTransUnitDecl(*TransUnitDecl) ActionResult
	VisitLabelDecl(*LabelDecl) ActionResult
	VisitClassDecl(*ClassDecl) ActionResult
	VisitEnumDecl(*EnumDecl) ActionResult
	VisitEnumeratorDecl(*EnumeratorDecl) ActionResult
	VisitADTDecl(*ADTDecl) ActionResult
	VisitValueCtorDecl(*ValueCtorDecl) ActionResult
	VisitUsingDecl(*UsingDecl) ActionResult
	VisitFuncDecl(*FuncDecl) ActionResult
	VisitVarDecl(*VarDecl) ActionResult
}

type ExprVisitor interface {
	VisitIntLiteralExpr(*IntLiteralExpr) ActionResult
	VisitUIntLiteralExpr(*UIntLiteralExpr) ActionResult
	VisitFloatLiteralExpr(*FloatLiteralExpr) ActionResult
	VisitCharLiteralExpr(*CharLiteralExpr) ActionResult
	VisitStringLiteralExpr(*StringLiteralExpr) ActionResult
	VisitBoolLiteralExpr(*BoolLiteralExpr) ActionResult
	VisitNilLiteralExpr(*NilLiteralExpr) ActionResult
	VisitIdRefExpr(*IdRefExpr) ActionResult
	VisitParenExpr(*ParenExpr) ActionResult
	VisitUnaryExpr(*UnaryExpr) ActionResult
	VisitBinaryExpr(*BinaryExpr) ActionResult
	VisitAssignExpr(*AssignExpr) ActionResult
	VisitCondExpr(*CondExpr) ActionResult
	VisitImplicitCastExpr(*ImplicitCastExpr) ActionResult
	VisitExplicitCastExpr(*ExplicitCastExpr) ActionResult
}
