package parser

import (
	"fmt"

	"github.com/leapstack-labs/golox/pkg/token"
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// LexError represents a lexical error with position information.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrUnexpectedToken    = "unexpected token %s, expected %s"
	ErrExpectedBeforeEOF  = "expected %s before end of input"
	ErrUnexpectedEOF      = "unexpected end of input"
	ErrUnexpectedPrimary  = "unexpected token %s, expected a literal or ("
	ErrUnterminatedString = "unterminated string literal"
	ErrUnexpectedChar     = "unexpected character %q"
)

// ScanErrors converts the diagnostic tokens in toks into errors, one
// *LexError per diagnostic, in stream order.
func ScanErrors(toks []token.Token) []error {
	var errs []error
	for _, t := range toks {
		if !t.IsError() {
			continue
		}
		switch t.Type {
		case token.UnterminatedString:
			errs = append(errs, &LexError{Pos: t.Pos, Message: ErrUnterminatedString})
		default:
			errs = append(errs, &LexError{Pos: t.Pos, Message: fmt.Sprintf(ErrUnexpectedChar, t.Lexeme)})
		}
	}
	return errs
}
