// Package astgen generates AST node families from a declarative schema: a
// sum type over variant structs, a generic visitor interface with one method
// per variant, and the type-switch dispatch that bridges the two.
//
// Generation rewrites an existing target file in place. Everything above a
// preservation marker is owned by the generator and overwritten on every
// run; the marker and everything after it belong to the file's human author
// and are copied through verbatim. Identical schemas always produce
// identical text, so regeneration is idempotent as long as the region below
// the marker is untouched.
package astgen

import "strings"

// Field is one member of a variant: an identifier and its declared type.
// The type is an opaque lexeme emitted verbatim; no validation is performed
// on it.
type Field struct {
	Name string
	Type string
}

// Variant is one alternative of the sum type. Field order is load bearing:
// it fixes struct layout, visitor parameter order and dispatch argument
// order.
type Variant struct {
	Name   string
	Fields []Field
}

// Schema describes a whole node family. BaseName becomes the interface name
// and the stem of every derived identifier. Variant order fixes declaration
// and dispatch order.
type Schema struct {
	BaseName string
	Variants []Variant
}

// ---------- Derived Names ----------

// markerMethod is the unexported method that stamps variant structs as
// members of the sum type: "exprNode" for base Expr.
func (s Schema) markerMethod() string {
	return lowerFirst(s.BaseName) + "Node"
}

// visitorName is the visitor interface identifier: "ExprVisitor" for base
// Expr.
func (s Schema) visitorName() string {
	return s.BaseName + "Visitor"
}

// acceptName is the dispatch function identifier: "AcceptExpr" for base
// Expr.
func (s Schema) acceptName() string {
	return "Accept" + s.BaseName
}

// structName is the variant struct identifier: variant Unary of base Expr
// becomes "UnaryExpr".
func (v Variant) structName(base string) string {
	return upperFirst(v.Name) + base
}

// methodName is the visitor method identifier: variant Unary of base Expr
// becomes "VisitUnaryExpr".
func (v Variant) methodName(base string) string {
	return "Visit" + upperFirst(v.Name) + base
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
