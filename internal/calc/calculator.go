package calc

import "io"

// Calculator ties the pipeline together. Each call to Evaluate runs a fresh
// lexer and parser over the input, then hands the syntax tree to the
// session's long-lived interpreter, so variables assigned in one call are
// visible to the next.
type Calculator struct {
	interpreter *Interpreter
}

func NewCalculator() *Calculator {
	return &Calculator{NewInterpreter()}
}

// Evaluate runs a single expression through the pipeline and returns its
// value. The returned error is a *LexError, *ParseError, or *EvalError; in
// every failure case the variable environment keeps its pre-call state.
func (calc *Calculator) Evaluate(text string) (Value, error) {
	lexer := NewLexer([]rune(text))
	tokens, err := lexer.Scan()
	if err != nil {
		return Value{}, err
	}
	parser := NewParser(tokens)
	expr, err := parser.Parse()
	if err != nil {
		return Value{}, err
	}
	return calc.interpreter.Interpret(expr)
}

// Variables returns a copy of the current variable bindings
func (calc *Calculator) Variables() map[string]Value {
	return calc.interpreter.Environment().Snapshot()
}

// ClearVariables removes every variable binding
func (calc *Calculator) ClearVariables() {
	calc.interpreter.Environment().Clear()
}

// SetTrace makes the session log every node evaluation to the given writer,
// nil disables tracing.
func (calc *Calculator) SetTrace(trace io.Writer) {
	calc.interpreter.SetTrace(trace)
}
