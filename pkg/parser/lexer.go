package parser

import (
	"strconv"
	"unicode"

	"github.com/leapstack-labs/golox/pkg/token"
)

// Lexer tokenizes Lox source input.
//
// Scanning never fails: unexpected characters and unterminated strings are
// emitted as diagnostic tokens (token.Illegal, token.UnterminatedString) so
// callers can report every problem in one pass.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()

	var tok token.Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Lexeme = ""
	case '(':
		tok = l.newToken(token.LeftParen, "(")
	case ')':
		tok = l.newToken(token.RightParen, ")")
	case '{':
		tok = l.newToken(token.LeftBrace, "{")
	case '}':
		tok = l.newToken(token.RightBrace, "}")
	case ',':
		tok = l.newToken(token.Comma, ",")
	case '.':
		tok = l.newToken(token.Dot, ".")
	case '-':
		tok = l.newToken(token.Minus, "-")
	case '+':
		tok = l.newToken(token.Plus, "+")
	case ';':
		tok = l.newToken(token.Semicolon, ";")
	case '*':
		tok = l.newToken(token.Star, "*")
	case '/':
		tok = l.newToken(token.Slash, "/")
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.BangEqual, Lexeme: "!=", Pos: pos}
		} else {
			tok = l.newToken(token.Bang, "!")
		}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EqualEqual, Lexeme: "==", Pos: pos}
		} else {
			tok = l.newToken(token.Equal, "=")
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LessEqual, Lexeme: "<=", Pos: pos}
		} else {
			tok = l.newToken(token.Less, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GreaterEqual, Lexeme: ">=", Pos: pos}
		} else {
			tok = l.newToken(token.Greater, ">")
		}
	case '"':
		return l.readString(pos)
	default:
		switch {
		case isLetter(l.ch) || l.ch == '_':
			lexeme := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(lexeme), Lexeme: lexeme, Pos: pos}
		case isDigit(l.ch):
			return l.readNumber(pos)
		default:
			tok = l.newToken(token.Illegal, string(l.ch))
		}
	}

	l.readChar()
	return tok
}

// newToken creates a single-character token at the current position.
func (l *Lexer) newToken(t token.Type, lexeme string) token.Token {
	return token.Token{Type: t, Lexeme: lexeme, Pos: l.currentPos()}
}

// skipWhitespaceAndComments skips whitespace and // line comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}

		break
	}
}

// readString reads a double-quoted string literal. Lox strings have no
// escape sequences; a newline or end of input before the closing quote
// yields an UnterminatedString diagnostic whose lexeme is the partial
// literal.
func (l *Lexer) readString(pos token.Position) token.Token {
	start := l.pos
	l.readChar() // skip opening quote

	for l.ch != '"' && l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}

	if l.ch != '"' {
		return token.Token{
			Type:   token.UnterminatedString,
			Lexeme: l.input[start:l.pos],
			Str:    l.input[start+1 : l.pos],
			Pos:    pos,
		}
	}

	l.readChar() // skip closing quote
	lexeme := l.input[start:l.pos]
	return token.Token{
		Type:   token.String,
		Lexeme: lexeme,
		Str:    lexeme[1 : len(lexeme)-1],
		Pos:    pos,
	}
}

// readNumber reads a numeric literal: digits with one optional fractional
// part. The dot is only consumed when a digit follows, so "12." lexes as
// the number 12 followed by a Dot token.
func (l *Lexer) readNumber(pos token.Position) token.Token {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	lexeme := l.input[start:l.pos]
	// Digits with at most one interior dot; ParseFloat cannot fail on it.
	num, _ := strconv.ParseFloat(lexeme, 64)
	return token.Token{Type: token.Number, Lexeme: lexeme, Num: num, Pos: pos}
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// isLetter returns true if ch is a letter.
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch))
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input, ending with EOF. Diagnostic
// tokens are included in stream order.
func Tokenize(input string) []token.Token {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens
}
