package astgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exprSchema mirrors the expression family the repository generates for
// itself, with the sub-expression fields typed as the sum type.
var exprSchema = Schema{
	BaseName: "Expr",
	Variants: []Variant{
		{Name: "Unary", Fields: []Field{
			{Name: "op", Type: "token.Token"},
			{Name: "expr", Type: "Expr"},
		}},
		{Name: "Binary", Fields: []Field{
			{Name: "left", Type: "Expr"},
			{Name: "op", Type: "token.Token"},
			{Name: "right", Type: "Expr"},
		}},
		{Name: "Grouping", Fields: []Field{
			{Name: "expr", Type: "Expr"},
		}},
		{Name: "Literal", Fields: []Field{
			{Name: "value", Type: "token.Token"},
		}},
	},
}

func TestNodeTypes(t *testing.T) {
	want := `// Expr is the interface implemented by every Expr variant.
type Expr interface {
	exprNode()
}

// UnaryExpr is the Unary variant of Expr.
type UnaryExpr struct {
	Op   token.Token
	Expr Expr
}

func (*UnaryExpr) exprNode() {}

// BinaryExpr is the Binary variant of Expr.
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// GroupingExpr is the Grouping variant of Expr.
type GroupingExpr struct {
	Expr Expr
}

func (*GroupingExpr) exprNode() {}

// LiteralExpr is the Literal variant of Expr.
type LiteralExpr struct {
	Value token.Token
}

func (*LiteralExpr) exprNode() {}
`
	require.Equal(t, want, NodeTypes(exprSchema))
}

func TestNodeTypesEmptyVariant(t *testing.T) {
	s := Schema{
		BaseName: "Expr",
		Variants: []Variant{{Name: "Nil"}},
	}

	out := NodeTypes(s)
	assert.Contains(t, out, "type NilExpr struct{}\n")
	assert.Contains(t, out, "func (*NilExpr) exprNode() {}\n")
}

func TestVisitorInterface(t *testing.T) {
	want := `// ExprVisitor handles every Expr variant and produces an R.
type ExprVisitor[R any] interface {
	VisitUnaryExpr(op token.Token, expr Expr) R
	VisitBinaryExpr(left Expr, op token.Token, right Expr) R
	VisitGroupingExpr(expr Expr) R
	VisitLiteralExpr(value token.Token) R
}
`
	require.Equal(t, want, VisitorInterface(exprSchema))
}

func TestAcceptFunc(t *testing.T) {
	want := `// AcceptExpr dispatches n to the ExprVisitor method for its variant.
func AcceptExpr[R any](n Expr, v ExprVisitor[R]) R {
	switch n := n.(type) {
	case *UnaryExpr:
		return v.VisitUnaryExpr(n.Op, n.Expr)
	case *BinaryExpr:
		return v.VisitBinaryExpr(n.Left, n.Op, n.Right)
	case *GroupingExpr:
		return v.VisitGroupingExpr(n.Expr)
	case *LiteralExpr:
		return v.VisitLiteralExpr(n.Value)
	default:
		panic(fmt.Sprintf("unhandled Expr variant %T", n))
	}
}
`
	require.Equal(t, want, AcceptFunc(exprSchema))
}

func TestAcceptFuncExhaustive(t *testing.T) {
	out := AcceptFunc(exprSchema)

	assert.Equal(t, len(exprSchema.Variants), strings.Count(out, "\tcase *"),
		"one case arm per variant")
	assert.Equal(t, 1, strings.Count(out, "\tdefault:"))
	for _, v := range exprSchema.Variants {
		assert.Equal(t, 1, strings.Count(out, "case *"+v.Name+"Expr:"), v.Name)
	}
}

func TestSingleVariantSchema(t *testing.T) {
	s := Schema{
		BaseName: "Expr",
		Variants: []Variant{
			{Name: "Literal", Fields: []Field{{Name: "value", Type: "Token"}}},
		},
	}

	assert.Contains(t, NodeTypes(s), "type LiteralExpr struct {\n\tValue Token\n}\n")
	assert.Contains(t, VisitorInterface(s), "\tVisitLiteralExpr(value Token) R\n")

	wantDispatch := `// AcceptExpr dispatches n to the ExprVisitor method for its variant.
func AcceptExpr[R any](n Expr, v ExprVisitor[R]) R {
	switch n := n.(type) {
	case *LiteralExpr:
		return v.VisitLiteralExpr(n.Value)
	default:
		panic(fmt.Sprintf("unhandled Expr variant %T", n))
	}
}
`
	require.Equal(t, wantDispatch, AcceptFunc(s))
}

func TestFieldOrderFidelity(t *testing.T) {
	s := Schema{
		BaseName: "Node",
		Variants: []Variant{
			{Name: "Pair", Fields: []Field{
				{Name: "a", Type: "T1"},
				{Name: "b", Type: "T2"},
			}},
		},
	}

	assert.Contains(t, NodeTypes(s), "type PairNode struct {\n\tA T1\n\tB T2\n}\n",
		"struct fields keep declaration order")
	assert.Contains(t, VisitorInterface(s), "VisitPairNode(a T1, b T2) R",
		"parameters keep declaration order")
	assert.Contains(t, AcceptFunc(s), "return v.VisitPairNode(n.A, n.B)",
		"forwarded arguments keep declaration order")
}

func TestGenerationDeterministic(t *testing.T) {
	require.Equal(t, NodeTypes(exprSchema), NodeTypes(exprSchema))
	require.Equal(t, VisitorInterface(exprSchema), VisitorInterface(exprSchema))
	require.Equal(t, AcceptFunc(exprSchema), AcceptFunc(exprSchema))
}

func TestDerivedNames(t *testing.T) {
	s := Schema{BaseName: "Stmt"}
	assert.Equal(t, "stmtNode", s.markerMethod())
	assert.Equal(t, "StmtVisitor", s.visitorName())
	assert.Equal(t, "AcceptStmt", s.acceptName())

	v := Variant{Name: "print"}
	assert.Equal(t, "PrintStmt", v.structName("Stmt"))
	assert.Equal(t, "VisitPrintStmt", v.methodName("Stmt"))
}
