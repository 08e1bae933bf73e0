package ast

import (
	json "github.com/goccy/go-json"

	"github.com/leapstack-labs/golox/pkg/token"
)

// ToJSON encodes the tree rooted at e as an indented JSON document. Every
// node becomes an object tagged with its variant; literals collapse to
// their JSON value.
func ToJSON(e Expr) ([]byte, error) {
	var b jsonBuilder
	return json.MarshalIndent(b.build(e), "", "  ")
}

// jsonBuilder lowers the tree to maps and scalars the JSON encoder accepts.
type jsonBuilder struct{}

func (b *jsonBuilder) build(e Expr) any {
	return AcceptExpr[any](e, b)
}

func (b *jsonBuilder) VisitUnaryExpr(op token.Token, expr Expr) any {
	return map[string]any{
		"type": "unary",
		"op":   op.Lexeme,
		"expr": b.build(expr),
	}
}

func (b *jsonBuilder) VisitBinaryExpr(left Expr, op token.Token, right Expr) any {
	return map[string]any{
		"type":  "binary",
		"op":    op.Lexeme,
		"left":  b.build(left),
		"right": b.build(right),
	}
}

func (b *jsonBuilder) VisitGroupingExpr(expr Expr) any {
	return map[string]any{
		"type": "grouping",
		"expr": b.build(expr),
	}
}

func (b *jsonBuilder) VisitLiteralExpr(value token.Token) any {
	switch value.Type {
	case token.Number:
		return value.Num
	case token.String:
		return value.Str
	case token.True:
		return true
	case token.False:
		return false
	case token.Nil:
		return nil
	default:
		return value.Lexeme
	}
}
