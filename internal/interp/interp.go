// Package interp evaluates Lox expression trees to runtime values.
//
// The evaluator is a visitor over the ast.Expr family. Every failure is
// reported as a *RuntimeError carrying the position of the operator or
// literal that caused it, so callers can point at the offending source.
package interp

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/leapstack-labs/golox/pkg/ast"
	"github.com/leapstack-labs/golox/pkg/token"
)

// evalResult pairs a value with an evaluation error so both can flow
// through the visitor's single result slot.
type evalResult struct {
	val Value
	err error
}

func ok(v Value) evalResult {
	return evalResult{val: v}
}

func fail(pos token.Position, msg string) evalResult {
	return evalResult{err: &RuntimeError{Pos: pos, Message: msg}}
}

// Interpreter evaluates Lox expression trees.
type Interpreter struct{}

// New creates a new Interpreter.
func New() *Interpreter {
	return &Interpreter{}
}

// Eval evaluates expr and returns its value. On failure the error is
// always a *RuntimeError.
func (i *Interpreter) Eval(expr ast.Expr) (Value, error) {
	r := i.eval(expr)
	return r.val, r.err
}

func (i *Interpreter) eval(expr ast.Expr) evalResult {
	return ast.AcceptExpr[evalResult](expr, i)
}

// ---------- Visitor ----------

// VisitLiteralExpr evaluates a literal token to its value.
func (i *Interpreter) VisitLiteralExpr(value token.Token) evalResult {
	switch value.Type {
	case token.Number:
		return ok(NumberValue(value.Num))
	case token.String:
		return ok(StringValue(value.Str))
	case token.True:
		return ok(BoolValue(true))
	case token.False:
		return ok(BoolValue(false))
	case token.Nil:
		return ok(NilValue())
	case token.Identifier:
		// There is no variable environment; every identifier is unbound.
		return fail(value.Pos, fmt.Sprintf(ErrUndefinedIdentifier, value.Lexeme))
	default:
		return fail(value.Pos, fmt.Sprintf(ErrBadLiteral, value.Type))
	}
}

// VisitGroupingExpr evaluates the grouped expression.
func (i *Interpreter) VisitGroupingExpr(expr ast.Expr) evalResult {
	return i.eval(expr)
}

// VisitUnaryExpr evaluates a unary operation. Negation requires a number
// operand and logical not requires a boolean one.
func (i *Interpreter) VisitUnaryExpr(op token.Token, expr ast.Expr) evalResult {
	r := i.eval(expr)
	if r.err != nil {
		return r
	}

	switch op.Type {
	case token.Minus:
		n, err := expectNumber(op.Pos, r.val)
		if err != nil {
			return evalResult{err: err}
		}
		return ok(NumberValue(-n))
	case token.Bang:
		b, err := expectBoolean(op.Pos, r.val)
		if err != nil {
			return evalResult{err: err}
		}
		return ok(BoolValue(!b))
	default:
		return fail(op.Pos, fmt.Sprintf(ErrBadOperator, op.Lexeme))
	}
}

// VisitBinaryExpr evaluates a binary operation. Both operands are evaluated
// before the operator is applied; the first operand error wins.
func (i *Interpreter) VisitBinaryExpr(left ast.Expr, op token.Token, right ast.Expr) evalResult {
	l := i.eval(left)
	if l.err != nil {
		return l
	}
	r := i.eval(right)
	if r.err != nil {
		return r
	}

	switch op.Type {
	case token.Plus:
		return add(op, l.val, r.val)
	case token.Star:
		return multiply(op, l.val, r.val)
	case token.Minus:
		return arith(op, l.val, r.val, func(a, b float64) float64 { return a - b })
	case token.Slash:
		return arith(op, l.val, r.val, func(a, b float64) float64 { return a / b })
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		return compare(op, l.val, r.val)
	case token.EqualEqual:
		return ok(BoolValue(l.val == r.val))
	case token.BangEqual:
		return ok(BoolValue(l.val != r.val))
	default:
		return fail(op.Pos, fmt.Sprintf(ErrBadOperator, op.Lexeme))
	}
}

// ---------- Operators ----------

// add handles + over two numbers or two strings.
func add(op token.Token, l, r Value) evalResult {
	switch {
	case l.Kind == KindNumber && r.Kind == KindNumber:
		return ok(NumberValue(l.Num + r.Num))
	case l.Kind == KindString && r.Kind == KindString:
		return ok(StringValue(l.Str + r.Str))
	default:
		return fail(op.Pos, fmt.Sprintf(ErrAddMismatch, l.Kind, r.Kind))
	}
}

// multiply handles * over two numbers, or a string repeated a number of
// times. The count truncates toward zero; a negative count is an error.
func multiply(op token.Token, l, r Value) evalResult {
	switch {
	case l.Kind == KindNumber && r.Kind == KindNumber:
		return ok(NumberValue(l.Num * r.Num))
	case l.Kind == KindString && r.Kind == KindNumber:
		if r.Num < 0 {
			return fail(op.Pos, ErrNegativeRepeat)
		}
		return ok(StringValue(strings.Repeat(l.Str, int(r.Num))))
	default:
		return fail(op.Pos, fmt.Sprintf(ErrMultiplyMismatch, l.Kind, r.Kind))
	}
}

// arith applies f over two number operands.
func arith(op token.Token, l, r Value, f func(a, b float64) float64) evalResult {
	ln, err := expectNumber(op.Pos, l)
	if err != nil {
		return evalResult{err: err}
	}
	rn, err := expectNumber(op.Pos, r)
	if err != nil {
		return evalResult{err: err}
	}
	return ok(NumberValue(f(ln, rn)))
}

// compare handles the ordered comparisons over two numbers or two strings.
func compare(op token.Token, l, r Value) evalResult {
	switch {
	case l.Kind == KindNumber && r.Kind == KindNumber:
		return ok(BoolValue(ordered(op.Type, l.Num, r.Num)))
	case l.Kind == KindString && r.Kind == KindString:
		return ok(BoolValue(ordered(op.Type, l.Str, r.Str)))
	default:
		return fail(op.Pos, fmt.Sprintf(ErrCompareMismatch, l.Kind, r.Kind))
	}
}

func ordered[T cmp.Ordered](t token.Type, a, b T) bool {
	switch t {
	case token.Greater:
		return a > b
	case token.GreaterEqual:
		return a >= b
	case token.Less:
		return a < b
	default:
		return a <= b
	}
}

func expectNumber(pos token.Position, v Value) (float64, error) {
	if v.Kind != KindNumber {
		return 0, &RuntimeError{Pos: pos, Message: fmt.Sprintf(ErrExpectedNumber, v.Kind)}
	}
	return v.Num, nil
}

func expectBoolean(pos token.Position, v Value) (bool, error) {
	if v.Kind != KindBoolean {
		return false, &RuntimeError{Pos: pos, Message: fmt.Sprintf(ErrExpectedBoolean, v.Kind)}
	}
	return v.Bool, nil
}
