package ast

import (
	"fmt"

	"github.com/leapstack-labs/golox/pkg/token"
)

// Printer renders an expression in parenthesized prefix form: "12 + 34"
// prints as "(+ 12 34)", "(12)" as "(group 12)".
type Printer struct{}

// Print renders the whole tree rooted at e.
func (p *Printer) Print(e Expr) string {
	return p.print(e)
}

func (p *Printer) print(e Expr) string {
	return AcceptExpr[string](e, p)
}

// VisitUnaryExpr renders a unary application.
func (p *Printer) VisitUnaryExpr(op token.Token, expr Expr) string {
	return fmt.Sprintf("(%s %s)", op.Lexeme, p.print(expr))
}

// VisitBinaryExpr renders a binary application, operator first.
func (p *Printer) VisitBinaryExpr(left Expr, op token.Token, right Expr) string {
	return fmt.Sprintf("(%s %s %s)", op.Lexeme, p.print(left), p.print(right))
}

// VisitGroupingExpr renders a parenthesized grouping.
func (p *Printer) VisitGroupingExpr(expr Expr) string {
	return fmt.Sprintf("(group %s)", p.print(expr))
}

// VisitLiteralExpr renders a literal by its value: numbers in shortest
// decimal form, strings without their quotes, everything else by lexeme.
func (p *Printer) VisitLiteralExpr(value token.Token) string {
	switch value.Type {
	case token.Number:
		return token.FormatNumber(value.Num)
	case token.String:
		return value.Str
	default:
		return value.Lexeme
	}
}
