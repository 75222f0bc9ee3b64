package calc

import "fmt"

const (
	// Single-character tokens
	PLUS TokenType = iota
	MINUS
	STAR
	SLASH
	LEFT_PAREN
	RIGHT_PAREN
	EQUAL

	// "^", or "**" as an alias
	POWER

	// Literals
	NUMBER
	IDENTIFIER

	EOF
)

// TokenType identifies the kind of lexeme a token holds.
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case EQUAL:
		return "="
	case POWER:
		return "^"
	case NUMBER:
		return "NUMBER"
	case IDENTIFIER:
		return "IDENTIFIER"
	case EOF:
		return "EOF"
	}
	return ""
}

// Token groups a sequence of characters with additional information that was
// obtained during the scanning phase. Offset is the rune position of the
// lexeme's first character in the input.
type Token struct {
	Typ    TokenType
	Lexeme string
	Offset int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, offset int) *Token {
	return &Token{typ, lexeme, offset}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %q %d", t.Typ.String(), t.Lexeme, t.Offset)
}
