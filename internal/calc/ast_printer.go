package calc

import "fmt"

// AstPrinter renders a syntax tree in parenthesized prefix form, e.g.
// "(+ 1 (* 2 3))" for "1 + 2 * 3" and "(= x 5)" for "x = 5".
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitNumberExpr(expr *NumberExpr) (interface{}, error) {
	return expr.Val.String(), nil
}

func (printer *AstPrinter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	left, _ := expr.Left.Accept(printer)
	right, _ := expr.Right.Accept(printer)
	return fmt.Sprintf("(%s %v %v)", expr.Op.Lexeme, left, right), nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	operand, _ := expr.Operand.Accept(printer)
	return fmt.Sprintf("(%s %v)", expr.Op.Lexeme, operand), nil
}

func (printer *AstPrinter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	val, _ := expr.Val.Accept(printer)
	return fmt.Sprintf("(= %s %v)", expr.Name.Lexeme, val), nil
}
