package calc

import (
	"fmt"
	"strconv"
)

// Parser composes the syntax tree for a single calculator expression from
// the sequence of tokens produced by the lexer.
//
// Grammar
//
//	assignment --> IDENTIFIER "=" expression
//	             | expression ;
//	expression --> term ( ( "+" | "-" ) term )* ;
//	term       --> power ( ( "*" | "/" ) power )* ;
//	power      --> factor ( ( "^" | "**" ) power )? ;
//	factor     --> ( "+" | "-" ) factor
//	             | NUMBER | IDENTIFIER
//	             | "(" expression ")" ;
//
// The "power" rule recurses into itself on its right operand, making "^"
// right-associative. Assignment is only recognized when the first token is
// an identifier immediately followed by "=", which distinguishes "x = 5"
// from a use of "x" inside an expression with one token of lookahead.
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parser for the given token sequence. The sequence
// must be terminated by an EOF token.
func NewParser(tokens []*Token) *Parser {
	return &Parser{0, tokens}
}

// Parse returns the root of the syntax tree. Every token up to and
// including EOF must be consumed; trailing tokens after a complete
// expression are a parse error.
func (parser *Parser) Parse() (Expr, error) {
	expr, err := parser.assignment()
	if err != nil {
		return nil, err
	}
	if !parser.isEOF() {
		return nil, NewParseError(parser.peek(), "Expect end of expression.")
	}
	return expr, nil
}

// assignment --> IDENTIFIER "=" expression | expression ;
func (parser *Parser) assignment() (Expr, error) {
	if parser.check(IDENTIFIER) && parser.checkNext(EQUAL) {
		name := parser.advance()
		// consume '='
		parser.advance()
		val, err := parser.expression()
		if err != nil {
			return nil, err
		}
		return NewAssignExpr(name, val), nil
	}
	return parser.expression()
}

// Creates a left-associative nested tree of binary operator nodes.
//
// expression --> term ( ( "+" | "-" ) term )* ;
func (parser *Parser) expression() (Expr, error) {
	expr, err := parser.term()
	if err != nil {
		return nil, err
	}
	for parser.match(PLUS, MINUS) {
		op := parser.prev()
		right, err := parser.term()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// term --> power ( ( "*" | "/" ) power )* ;
func (parser *Parser) term() (Expr, error) {
	expr, err := parser.power()
	if err != nil {
		return nil, err
	}
	for parser.match(STAR, SLASH) {
		op := parser.prev()
		right, err := parser.power()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// Recurses into itself, instead of `factor`, on the right operand so that
// 2^3^2 parses as 2^(3^2).
//
// power --> factor ( ( "^" | "**" ) power )? ;
func (parser *Parser) power() (Expr, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}
	if parser.match(POWER) {
		op := parser.prev()
		right, err := parser.power()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// factor --> ( "+" | "-" ) factor | NUMBER | IDENTIFIER | "(" expression ")" ;
func (parser *Parser) factor() (Expr, error) {
	if parser.match(PLUS, MINUS) {
		op := parser.prev()
		operand, err := parser.factor()
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(op, operand), nil
	}
	if parser.match(NUMBER) {
		tok := parser.prev()
		val, err := parseNumber(tok)
		if err != nil {
			return nil, err
		}
		return NewNumberExpr(tok, val), nil
	}
	if parser.match(IDENTIFIER) {
		return NewVariableExpr(parser.prev()), nil
	}
	if parser.match(LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, NewParseError(parser.peek(), "Expect expression.")
}

// parseNumber converts a NUMBER lexeme, keeping a literal without a decimal
// point or exponent integral.
func parseNumber(tok *Token) (Value, error) {
	if i, err := strconv.ParseInt(tok.Lexeme, 10, 64); err == nil {
		return NewInt(i), nil
	}
	f, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		return Value{}, NewParseError(
			tok,
			fmt.Sprintf("Invalid number '%s'.", tok.Lexeme),
		)
	}
	return NewFloat(f), nil
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return NewParseError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) checkNext(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.tokens[parser.current+1].Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}
