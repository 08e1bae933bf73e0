package ast

import (
	"testing"

	"github.com/leapstack-labs/golox/pkg/token"
)

func opToken(t token.Type, lexeme string) token.Token {
	return token.Token{Type: t, Lexeme: lexeme}
}

func TestPrinter(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{
			name: "number literal",
			expr: NewNumberLiteral(12),
			want: "12",
		},
		{
			name: "number literal keeps fraction",
			expr: NewNumberLiteral(45.67),
			want: "45.67",
		},
		{
			name: "string literal prints without quotes",
			expr: NewStringLiteral("abc"),
			want: "abc",
		},
		{
			name: "boolean literals",
			expr: NewBinary(NewBooleanLiteral(true), opToken(token.EqualEqual, "=="), NewBooleanLiteral(false)),
			want: "(== true false)",
		},
		{
			name: "nil literal",
			expr: NewNilLiteral(),
			want: "nil",
		},
		{
			name: "binary",
			expr: NewBinary(NewNumberLiteral(12), opToken(token.Plus, "+"), NewNumberLiteral(34)),
			want: "(+ 12 34)",
		},
		{
			name: "unary",
			expr: NewUnary(opToken(token.Minus, "-"), NewNumberLiteral(12)),
			want: "(- 12)",
		},
		{
			name: "grouping",
			expr: NewGrouping(NewNumberLiteral(12)),
			want: "(group 12)",
		},
		{
			name: "nested",
			expr: NewBinary(
				NewGrouping(NewBinary(NewNumberLiteral(1), opToken(token.Plus, "+"), NewNumberLiteral(2))),
				opToken(token.Star, "*"),
				NewNumberLiteral(3),
			),
			want: "(* (group (+ 1 2)) 3)",
		},
	}

	var p Printer
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Print(tt.expr); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}
