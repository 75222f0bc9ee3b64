package calc

import "fmt"

// LexError wraps an error found while scanning the input text with the rune
// offset at which it occurred.
type LexError struct {
	offset  int
	message string
}

// NewLexError creates a new lexing error
func NewLexError(offset int, message string) error {
	return &LexError{offset, message}
}

func (err *LexError) Error() string {
	return fmt.Sprintf(
		"[offset %d] Error: %s",
		err.offset,
		err.message,
	)
}

// ParseError wraps an error found while parsing the token stream with the
// token at which parsing could not continue.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new parsing error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf(
			"[offset %d] Error at end: %s",
			err.token.Offset,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[offset %d] Error at '%s': %s",
		err.token.Offset,
		err.token.Lexeme,
		err.message,
	)
}

// EvalError wraps an error raised while evaluating the syntax tree with the
// token of the node whose evaluation failed.
type EvalError struct {
	token   *Token
	message string
}

// NewEvalError creates a new evaluation error
func NewEvalError(token *Token, message string) error {
	return &EvalError{token, message}
}

func (err *EvalError) Error() string {
	return fmt.Sprintf(
		"[offset %d] Error at '%s': %s",
		err.token.Offset,
		err.token.Lexeme,
		err.message,
	)
}
