package calc

import (
	"fmt"
	"io"
)

// Interpreter evaluates a calculator syntax tree by walking it. The variable
// environment lives as long as the interpreter, so assignments persist
// across evaluations. This struct implements ExprVisitor.
type Interpreter struct {
	environment *Environment
	trace       io.Writer
}

func NewInterpreter() *Interpreter {
	return &Interpreter{NewEnvironment(), nil}
}

// SetTrace makes the interpreter log every node evaluation to the given
// writer, nil disables tracing.
func (in *Interpreter) SetTrace(trace io.Writer) {
	in.trace = trace
}

// Environment returns the interpreter's variable environment
func (in *Interpreter) Environment() *Environment {
	return in.environment
}

// Interpret evaluates the tree rooted at the given node. A failed
// evaluation leaves the environment untouched.
func (in *Interpreter) Interpret(expr Expr) (Value, error) {
	return in.eval(expr)
}

func (in *Interpreter) VisitNumberExpr(expr *NumberExpr) (interface{}, error) {
	return expr.Val, nil
}

func (in *Interpreter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	val, err := in.environment.Get(expr.Name)
	if err != nil {
		return nil, err
	}
	if in.trace != nil {
		fmt.Fprintf(in.trace, "variable: %s = %s\n", expr.Name.Lexeme, val)
	}
	return val, nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	var result Value
	switch expr.Op.Typ {
	case PLUS:
		result = lhs.Add(rhs)
	case MINUS:
		result = lhs.Sub(rhs)
	case STAR:
		result = lhs.Mul(rhs)
	case SLASH:
		if rhs.IsZero() {
			return nil, NewEvalError(expr.Op, "Division by zero.")
		}
		result = lhs.Div(rhs)
	case POWER:
		result = lhs.Pow(rhs)
	default:
		panic("Unreachable")
	}

	if in.trace != nil {
		fmt.Fprintf(
			in.trace,
			"binary: %s %s %s = %s\n",
			lhs, expr.Op.Lexeme, rhs, result,
		)
	}
	return result, nil
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	val, err := in.eval(expr.Operand)
	if err != nil {
		return nil, err
	}

	var result Value
	switch expr.Op.Typ {
	case PLUS:
		result = val
	case MINUS:
		result = val.Neg()
	default:
		panic("Unreachable")
	}

	if in.trace != nil {
		fmt.Fprintf(in.trace, "unary: %s%s = %s\n", expr.Op.Lexeme, val, result)
	}
	return result, nil
}

func (in *Interpreter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	// the value is fully evaluated before the store, a failure here must not
	// mutate the environment
	val, err := in.eval(expr.Val)
	if err != nil {
		return nil, err
	}
	in.environment.Define(expr.Name.Lexeme, val)

	if in.trace != nil {
		fmt.Fprintf(in.trace, "assign: %s = %s\n", expr.Name.Lexeme, val)
	}
	return val, nil
}

func (in *Interpreter) eval(expr Expr) (Value, error) {
	val, err := expr.Accept(in)
	if err != nil {
		return Value{}, err
	}
	return val.(Value), nil
}
