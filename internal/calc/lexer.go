package calc

import (
	"fmt"
	"unicode"
)

// Lexer reads the input text and collects all the tokens that can be found.
// A lexer is single-use; restarting means constructing a new one.
type Lexer struct {
	start   int
	current int
	source  []rune
	tokens  []*Token
}

// NewLexer creates a new lexer for the given input
func NewLexer(source []rune) *Lexer {
	lexer := new(Lexer)
	lexer.start = 0
	lexer.current = 0
	lexer.source = source
	lexer.tokens = make([]*Token, 0)
	return lexer
}

// Scan reads the input and collects every token that was found. The returned
// sequence always ends with exactly one EOF token. Scanning stops at the
// first invalid character or malformed numeric literal.
func (lexer *Lexer) Scan() ([]*Token, error) {
	if len(lexer.tokens) != 0 {
		return lexer.tokens, nil
	}

	for lexer.hasNext() {
		lexer.start = lexer.current
		switch r := lexer.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t', '\n':
		// Single character tokens
		case '(':
			lexer.addToken(LEFT_PAREN)
		case ')':
			lexer.addToken(RIGHT_PAREN)
		case '+':
			lexer.addToken(PLUS)
		case '-':
			lexer.addToken(MINUS)
		case '/':
			lexer.addToken(SLASH)
		case '=':
			lexer.addToken(EQUAL)
		case '^':
			lexer.addToken(POWER)
		// "**" is an alias for "^"
		case '*':
			if lexer.match('*') {
				lexer.addToken(POWER)
			} else {
				lexer.addToken(STAR)
			}
		// Literals
		default:
			if unicode.IsDigit(r) {
				if err := lexer.scanNumber(); err != nil {
					return nil, err
				}
			} else if isBeginIdent(r) {
				lexer.scanIdentifier()
			} else {
				return nil, NewLexError(
					lexer.start,
					fmt.Sprintf("Invalid character '%c'.", r),
				)
			}
		}
	}
	lexer.tokens = append(
		lexer.tokens,
		NewToken(EOF, "", len(lexer.source)),
	)
	return lexer.tokens, nil
}

func (lexer *Lexer) scanNumber() error {
	// go through continuous digits
	for unicode.IsDigit(lexer.peek()) {
		lexer.advance()
	}
	// fractional part, a digit must follow the decimal point
	if lexer.peek() == '.' {
		lexer.advance()
		if !unicode.IsDigit(lexer.peek()) {
			return NewLexError(
				lexer.current,
				"Expect digit after decimal point.",
			)
		}
		for unicode.IsDigit(lexer.peek()) {
			lexer.advance()
		}
	}
	// exponent part, a digit must follow the marker and the optional sign
	if lexer.peek() == 'e' || lexer.peek() == 'E' {
		lexer.advance()
		if lexer.peek() == '+' || lexer.peek() == '-' {
			lexer.advance()
		}
		if !unicode.IsDigit(lexer.peek()) {
			return NewLexError(
				lexer.current,
				"Expect digit in exponent.",
			)
		}
		for unicode.IsDigit(lexer.peek()) {
			lexer.advance()
		}
	}
	lexer.addToken(NUMBER)
	return nil
}

func (lexer *Lexer) scanIdentifier() {
	for isAlphanumeric(lexer.peek()) {
		lexer.advance()
	}
	lexer.addToken(IDENTIFIER)
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type
func (lexer *Lexer) addToken(typ TokenType) {
	lexeme := string(lexer.source[lexer.start:lexer.current])
	lexer.tokens = append(lexer.tokens, NewToken(typ, lexeme, lexer.start))
}

// hasNext returns true if the lexer has not read past the input length
func (lexer *Lexer) hasNext() bool {
	return lexer.current < len(lexer.source)
}

// advance consumes and returns the rune at the current position
func (lexer *Lexer) advance() rune {
	r := lexer.source[lexer.current]
	lexer.current++
	return r
}

// match checks if the rune at the current position is equal to the given
// rune, if they are equal, consumes the rune at the current position.
func (lexer *Lexer) match(expected rune) bool {
	if !lexer.hasNext() {
		return false
	}
	if lexer.source[lexer.current] != expected {
		return false
	}
	lexer.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (lexer *Lexer) peek() rune {
	if !lexer.hasNext() {
		return '\x00'
	}
	return lexer.source[lexer.current]
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
