package calc

// Expr is implemented by every node of the syntax tree.
type Expr interface {
	Accept(visitor ExprVisitor) (interface{}, error)
}

// ExprVisitor is implemented by structures that dispatch on the node kinds
// of the syntax tree.
type ExprVisitor interface {
	VisitNumberExpr(expr *NumberExpr) (interface{}, error)
	VisitVariableExpr(expr *VariableExpr) (interface{}, error)
	VisitBinaryExpr(expr *BinaryExpr) (interface{}, error)
	VisitUnaryExpr(expr *UnaryExpr) (interface{}, error)
	VisitAssignExpr(expr *AssignExpr) (interface{}, error)
}

// NumberExpr is a numeric literal. Val preserves the integer-ness of the
// lexeme the literal was parsed from.
type NumberExpr struct {
	Token *Token
	Val   Value
}

func NewNumberExpr(token *Token, val Value) *NumberExpr {
	return &NumberExpr{token, val}
}

func (expr *NumberExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitNumberExpr(expr)
}

// VariableExpr is a reference to a named variable.
type VariableExpr struct {
	Name *Token
}

func NewVariableExpr(name *Token) *VariableExpr {
	return &VariableExpr{name}
}

func (expr *VariableExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitVariableExpr(expr)
}

// BinaryExpr applies an infix operator to two operands.
type BinaryExpr struct {
	Op    *Token
	Left  Expr
	Right Expr
}

func NewBinaryExpr(op *Token, left Expr, right Expr) *BinaryExpr {
	return &BinaryExpr{op, left, right}
}

func (expr *BinaryExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitBinaryExpr(expr)
}

// UnaryExpr applies a prefix operator to a single operand.
type UnaryExpr struct {
	Op      *Token
	Operand Expr
}

func NewUnaryExpr(op *Token, operand Expr) *UnaryExpr {
	return &UnaryExpr{op, operand}
}

func (expr *UnaryExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitUnaryExpr(expr)
}

// AssignExpr binds the result of evaluating Val to a named variable and
// evaluates to the bound value.
type AssignExpr struct {
	Name *Token
	Val  Expr
}

func NewAssignExpr(name *Token, val Expr) *AssignExpr {
	return &AssignExpr{name, val}
}

func (expr *AssignExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitAssignExpr(expr)
}
