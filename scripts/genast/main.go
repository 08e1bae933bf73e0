// Package main regenerates the expression AST from its schema.
//
// Usage:
//
//	go run ./scripts/genast -out=pkg/ast/expr.go
//
// The target file must already exist. Everything above the preservation
// marker is replaced on each run; the marker and everything after it
// survive verbatim.
package main

import (
	"flag"
	"log"

	"github.com/leapstack-labs/golox/pkg/astgen"
)

var outFlag = flag.String("out", "pkg/ast/expr.go", "target file to regenerate (must exist)")

// marker splits the target file: the generated region above, hand-written
// code at and below.
const marker = "// Custom implementations"

// header is the target file's import/header block, copied verbatim above
// the generated declarations. It imports fmt for the dispatch default arm.
const header = `// Code generated by scripts/genast. DO NOT EDIT.
// The generated region ends at the marker below; everything after it is
// hand written and survives regeneration.

// Package ast holds the Lox expression tree: node types and visitor
// dispatch generated by scripts/genast, plus hand-written constructors and
// the printers that consume them.
package ast

import (
	"fmt"

	"github.com/leapstack-labs/golox/pkg/token"
)
`

// exprSchema is the expression node family. Field order is load bearing: it
// fixes struct layout, visitor parameter order and dispatch argument order,
// so reordering fields here breaks every hand-written visitor.
var exprSchema = astgen.Schema{
	BaseName: "Expr",
	Variants: []astgen.Variant{
		{Name: "Unary", Fields: []astgen.Field{
			{Name: "op", Type: "token.Token"},
			{Name: "expr", Type: "Expr"},
		}},
		{Name: "Binary", Fields: []astgen.Field{
			{Name: "left", Type: "Expr"},
			{Name: "op", Type: "token.Token"},
			{Name: "right", Type: "Expr"},
		}},
		{Name: "Grouping", Fields: []astgen.Field{
			{Name: "expr", Type: "Expr"},
		}},
		{Name: "Literal", Fields: []astgen.Field{
			{Name: "value", Type: "token.Token"},
		}},
	},
}

func main() {
	flag.Parse()

	res, err := astgen.Rewrite(*outFlag, exprSchema, header, marker)
	if err != nil {
		log.Fatalf("regenerate %s: %v", *outFlag, err)
	}
	if !res.MarkerFound {
		log.Printf("warning: marker %q not found in %s, nothing below the generated region was preserved", marker, *outFlag)
	}

	log.Printf("Generated %s", *outFlag)
}
