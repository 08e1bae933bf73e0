package astgen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMarker = "// Custom implementations"

var tinySchema = Schema{
	BaseName: "Expr",
	Variants: []Variant{
		{Name: "Literal", Fields: []Field{{Name: "value", Type: "Token"}}},
	},
}

func TestMerge(t *testing.T) {
	current := []byte("old generated junk\n// Custom implementations\nfunc custom() {}\n")

	got, found := Merge(tinySchema, "package ast\n", testMarker, current)
	require.True(t, found)

	want := `package ast

// Expr is the interface implemented by every Expr variant.
type Expr interface {
	exprNode()
}

// LiteralExpr is the Literal variant of Expr.
type LiteralExpr struct {
	Value Token
}

func (*LiteralExpr) exprNode() {}

// ExprVisitor handles every Expr variant and produces an R.
type ExprVisitor[R any] interface {
	VisitLiteralExpr(value Token) R
}

// AcceptExpr dispatches n to the ExprVisitor method for its variant.
func AcceptExpr[R any](n Expr, v ExprVisitor[R]) R {
	switch n := n.(type) {
	case *LiteralExpr:
		return v.VisitLiteralExpr(n.Value)
	default:
		panic(fmt.Sprintf("unhandled Expr variant %T", n))
	}
}

// Custom implementations
func custom() {}
`
	require.Equal(t, want, string(got))
}

func TestMergePreservesArbitraryContent(t *testing.T) {
	// The preserved region is opaque text, not parsed as code.
	preserved := "// Custom implementations for the Expr family.\nanything at all\n\tincluding tabs\n"
	current := []byte("HEADER\n" + preserved)

	got, found := Merge(tinySchema, "HEADER2\n", testMarker, current)
	require.True(t, found)
	assert.True(t, bytes.HasSuffix(got, []byte(preserved)),
		"marker and everything after it survive verbatim")
}

func TestMergeFirstOccurrenceWins(t *testing.T) {
	current := []byte("top\n// Custom implementations\none\n// Custom implementations\ntwo\n")

	got, found := Merge(tinySchema, "h\n", testMarker, current)
	require.True(t, found)
	assert.True(t, bytes.HasSuffix(got,
		[]byte("// Custom implementations\none\n// Custom implementations\ntwo\n")))
}

func TestMergeMarkerAbsent(t *testing.T) {
	got, found := Merge(tinySchema, "package ast\n", testMarker, []byte("no marker here\n"))

	assert.False(t, found)
	assert.True(t, bytes.HasPrefix(got, []byte("package ast\n\n")))
	assert.True(t, bytes.HasSuffix(got, []byte("}\n\n")),
		"output is the generated region alone")
	assert.NotContains(t, string(got), "no marker here")
}

func TestMergeIdempotent(t *testing.T) {
	seed := []byte("seed\n// Custom implementations\nfunc custom() {}\n")

	first, found := Merge(exprSchema, "package ast\n", testMarker, seed)
	require.True(t, found)

	second, found := Merge(exprSchema, "package ast\n", testMarker, first)
	require.True(t, found)
	require.Equal(t, string(first), string(second))
}

func TestRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expr.go")
	seed := "stale\n// Custom implementations\nfunc custom() {}\n"
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	res, err := Rewrite(path, tinySchema, "package ast\n", testMarker)
	require.NoError(t, err)
	assert.True(t, res.MarkerFound)

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(first, []byte("package ast\n\n// Expr is")))
	assert.True(t, bytes.HasSuffix(first, []byte("// Custom implementations\nfunc custom() {}\n")))
	assert.NotContains(t, string(first), "stale")

	// A second run over the file's own output changes nothing.
	res, err = Rewrite(path, tinySchema, "package ast\n", testMarker)
	require.NoError(t, err)
	assert.True(t, res.MarkerFound)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
}

func TestRewriteMarkerAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expr.go")
	require.NoError(t, os.WriteFile(path, []byte("just text\n"), 0o600))

	res, err := Rewrite(path, tinySchema, "package ast\n", testMarker)
	require.NoError(t, err, "a missing marker is not an error")
	assert.False(t, res.MarkerFound)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(got), "just text")
}

func TestRewriteMissingTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.go")

	_, err := Rewrite(path, tinySchema, "package ast\n", testMarker)

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, path, readErr.Path)
	assert.Contains(t, readErr.Error(), "read target")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "a failed read must not create the target")
}

func TestRewriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expr.go")
	require.NoError(t, os.WriteFile(path, []byte("x\n// Custom implementations\ny\n"), 0o600))

	_, err := Rewrite(path, tinySchema, "package ast\n", testMarker)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "expr.go", entries[0].Name())
}
