// Package parser turns Lox source text into expression trees.
//
// # Usage
//
//	expr, err := parser.Parse("(12 + 34) * 5")
//	if err != nil {
//	    // handle error
//	}
//
// # Grammar Overview
//
// The parser implements a recursive descent parser for Lox expressions:
//
//	expression → equality
//	equality   → comparison (("==" | "!=") comparison)*
//	comparison → term (("<" | "<=" | ">" | ">=") term)*
//	term       → factor (("+" | "-") factor)*
//	factor     → unary (("*" | "/") unary)*
//	unary      → ("-" | "!") unary | primary
//	primary    → NUMBER | STRING | IDENTIFIER | "true" | "false" | "nil"
//	           | "(" expression ")"
package parser

import (
	"fmt"

	"github.com/leapstack-labs/golox/pkg/ast"
	"github.com/leapstack-labs/golox/pkg/token"
)

// Parser parses Lox source into an expression tree.
type Parser struct {
	lexer  *Lexer
	token  token.Token // current token
	peek   token.Token // lookahead token
	errors []error
}

// NewParser creates a new parser for the given source input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses the input as a single expression and returns its tree.
// On failure the first error is returned; it is always a *ParseError.
func Parse(input string) (ast.Expr, error) {
	p := NewParser(input)
	expr := p.parseExpression()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return expr, nil
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.Type) bool {
	return p.token.Type == t
}

// expect consumes the current token if it matches, otherwise adds an error.
func (p *Parser) expect(t token.Type) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	if p.check(token.EOF) {
		p.addError(fmt.Sprintf(ErrExpectedBeforeEOF, t))
		return false
	}
	p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, t))
	return false
}

// addError adds a parse error at the current token.
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &ParseError{
		Pos:     p.token.Pos,
		Message: msg,
	})
}

// ---------- Grammar Rules ----------

// parseExpression parses the top-level expression rule.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseEquality()
}

// parseEquality parses comparison (("==" | "!=") comparison)*.
func (p *Parser) parseEquality() ast.Expr {
	expr := p.parseComparison()
	for p.check(token.EqualEqual) || p.check(token.BangEqual) {
		op := p.token
		p.nextToken()
		right := p.parseComparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// parseComparison parses term (("<" | "<=" | ">" | ">=") term)*.
func (p *Parser) parseComparison() ast.Expr {
	expr := p.parseTerm()
	for p.check(token.Less) || p.check(token.LessEqual) ||
		p.check(token.Greater) || p.check(token.GreaterEqual) {
		op := p.token
		p.nextToken()
		right := p.parseTerm()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// parseTerm parses factor (("+" | "-") factor)*.
func (p *Parser) parseTerm() ast.Expr {
	expr := p.parseFactor()
	for p.check(token.Plus) || p.check(token.Minus) {
		op := p.token
		p.nextToken()
		right := p.parseFactor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// parseFactor parses unary (("*" | "/") unary)*.
func (p *Parser) parseFactor() ast.Expr {
	expr := p.parseUnary()
	for p.check(token.Star) || p.check(token.Slash) {
		op := p.token
		p.nextToken()
		right := p.parseUnary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// parseUnary parses ("-" | "!") unary | primary.
func (p *Parser) parseUnary() ast.Expr {
	if p.check(token.Minus) || p.check(token.Bang) {
		op := p.token
		p.nextToken()
		return &ast.UnaryExpr{Op: op, Expr: p.parseUnary()}
	}
	return p.parsePrimary()
}

// parsePrimary parses literals and parenthesized groupings.
func (p *Parser) parsePrimary() ast.Expr {
	switch p.token.Type {
	case token.Number, token.String, token.Identifier,
		token.True, token.False, token.Nil:
		tok := p.token
		p.nextToken()
		return &ast.LiteralExpr{Value: tok}
	case token.LeftParen:
		p.nextToken()
		expr := p.parseExpression()
		p.expect(token.RightParen)
		return &ast.GroupingExpr{Expr: expr}
	case token.EOF:
		p.addError(ErrUnexpectedEOF)
		return nil
	case token.UnterminatedString:
		p.addError(ErrUnterminatedString)
		p.nextToken()
		return nil
	default:
		p.addError(fmt.Sprintf(ErrUnexpectedPrimary, p.token.Type))
		p.nextToken()
		return nil
	}
}
