// Package token defines the lexical tokens of the Lox expression language.
//
// Token display follows the interpreter book's diagnostic format
// ("LEFT_PAREN ( null"), which the tokenize command prints verbatim.
package token

import (
	"fmt"
	"strconv"
)

// Type represents the type of a lexical token.
type Type int

const (
	// Special tokens
	EOF Type = iota
	Illegal
	UnterminatedString

	// Literals
	Identifier
	String
	Number

	// Single-character tokens
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One- or two-character operators
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Keywords (alphabetical)
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
)

// String returns the diagnostic name of the token type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(t))
}

// typeNames maps token types to their diagnostic names.
var typeNames = map[Type]string{
	EOF:                "EOF",
	Illegal:            "ILLEGAL",
	UnterminatedString: "UNTERMINATED_STRING",

	Identifier: "IDENTIFIER",
	String:     "STRING",
	Number:     "NUMBER",

	LeftParen:  "LEFT_PAREN",
	RightParen: "RIGHT_PAREN",
	LeftBrace:  "LEFT_BRACE",
	RightBrace: "RIGHT_BRACE",
	Comma:      "COMMA",
	Dot:        "DOT",
	Minus:      "MINUS",
	Plus:       "PLUS",
	Semicolon:  "SEMICOLON",
	Slash:      "SLASH",
	Star:       "STAR",

	Bang:         "BANG",
	BangEqual:    "BANG_EQUAL",
	Equal:        "EQUAL",
	EqualEqual:   "EQUAL_EQUAL",
	Greater:      "GREATER",
	GreaterEqual: "GREATER_EQUAL",
	Less:         "LESS",
	LessEqual:    "LESS_EQUAL",

	And:    "AND",
	Class:  "CLASS",
	Else:   "ELSE",
	False:  "FALSE",
	For:    "FOR",
	Fun:    "FUN",
	If:     "IF",
	Nil:    "NIL",
	Or:     "OR",
	Print:  "PRINT",
	Return: "RETURN",
	Super:  "SUPER",
	This:   "THIS",
	True:   "TRUE",
	Var:    "VAR",
	While:  "WHILE",
}

// keywords maps keyword spellings to their token types.
var keywords = map[string]Type{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, Identifier is returned.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return Identifier
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t Type) bool {
	return t >= And && t <= While
}

// IsError returns true for the two error token types the lexer can emit.
func IsError(t Type) bool {
	return t == Illegal || t == UnterminatedString
}

// Token represents a lexical token with position information.
// Str and Num carry the decoded literal value for String and Number tokens;
// they are zero for every other type.
type Token struct {
	Type   Type
	Lexeme string
	Str    string
	Num    float64
	Pos    Position
}

// String renders the token in diagnostic form: the type name, the raw
// lexeme and the decoded literal ("null" when there is none). Error tokens
// render as the scanner's error lines instead.
func (t Token) String() string {
	switch t.Type {
	case Illegal:
		return fmt.Sprintf("[line %d] Error: Unexpected character: %s", t.Pos.Line, t.Lexeme)
	case UnterminatedString:
		return fmt.Sprintf("[line %d] Error: Unterminated string.", t.Pos.Line)
	case String:
		return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, t.Str)
	case Number:
		return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, FormatNumber(t.Num))
	default:
		return fmt.Sprintf("%s %s null", t.Type, t.Lexeme)
	}
}

// IsError returns true if the token is a scanner diagnostic rather than a
// real token.
func (t Token) IsError() bool {
	return IsError(t.Type)
}

// FormatNumber renders a numeric literal in its shortest decimal form
// ("12", "45.67"). Every component that displays number values goes through
// this so diagnostics, printed trees and evaluation results agree.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
