package astgen

import (
	"bytes"
	"fmt"
	"strings"
)

// NodeTypes renders the sum type: an interface with an unexported marker
// method plus one struct per variant, in schema order. Struct fields keep
// declaration order and are emitted pre-aligned, so the text matches gofmt
// output without a formatting pass. A variant with no fields becomes an
// empty struct.
func NodeTypes(s Schema) string {
	var buf bytes.Buffer

	marker := s.markerMethod()

	fmt.Fprintf(&buf, "// %s is the interface implemented by every %s variant.\n", s.BaseName, s.BaseName)
	fmt.Fprintf(&buf, "type %s interface {\n", s.BaseName)
	fmt.Fprintf(&buf, "\t%s()\n", marker)
	buf.WriteString("}\n")

	for _, v := range s.Variants {
		name := v.structName(s.BaseName)

		buf.WriteString("\n")
		fmt.Fprintf(&buf, "// %s is the %s variant of %s.\n", name, upperFirst(v.Name), s.BaseName)
		if len(v.Fields) == 0 {
			fmt.Fprintf(&buf, "type %s struct{}\n", name)
		} else {
			fmt.Fprintf(&buf, "type %s struct {\n", name)
			width := fieldWidth(v.Fields)
			for _, f := range v.Fields {
				fmt.Fprintf(&buf, "\t%-*s %s\n", width, upperFirst(f.Name), f.Type)
			}
			buf.WriteString("}\n")
		}
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "func (*%s) %s() {}\n", name, marker)
	}

	return buf.String()
}

// VisitorInterface renders the visitor capability: one method per variant,
// in schema order, all sharing the single generic result type R. Parameters
// mirror the variant's fields in order, names lowered, types verbatim.
func VisitorInterface(s Schema) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// %s handles every %s variant and produces an R.\n", s.visitorName(), s.BaseName)
	fmt.Fprintf(&buf, "type %s[R any] interface {\n", s.visitorName())
	for _, v := range s.Variants {
		fmt.Fprintf(&buf, "\t%s(%s) R\n", v.methodName(s.BaseName), v.paramList())
	}
	buf.WriteString("}\n")

	return buf.String()
}

// AcceptFunc renders the dispatch bridge: a type switch with exactly one
// case per variant, forwarding the struct's fields positionally to the
// matching visitor method. The default arm is unreachable for values built
// from the generated structs; it panics with the concrete type so a schema
// drift surfaces immediately. The emitted code calls fmt.Sprintf, so the
// target file's header must import fmt.
func AcceptFunc(s Schema) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// %s dispatches n to the %s method for its variant.\n", s.acceptName(), s.visitorName())
	fmt.Fprintf(&buf, "func %s[R any](n %s, v %s[R]) R {\n", s.acceptName(), s.BaseName, s.visitorName())
	buf.WriteString("\tswitch n := n.(type) {\n")
	for _, v := range s.Variants {
		fmt.Fprintf(&buf, "\tcase *%s:\n", v.structName(s.BaseName))
		fmt.Fprintf(&buf, "\t\treturn v.%s(%s)\n", v.methodName(s.BaseName), v.argList())
	}
	buf.WriteString("\tdefault:\n")
	fmt.Fprintf(&buf, "\t\tpanic(fmt.Sprintf(\"unhandled %s variant %%T\", n))\n", s.BaseName)
	buf.WriteString("\t}\n")
	buf.WriteString("}\n")

	return buf.String()
}

// paramList renders the visitor method parameter list for the variant.
func (v Variant) paramList() string {
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = lowerFirst(f.Name) + " " + f.Type
	}
	return strings.Join(parts, ", ")
}

// argList renders the dispatch forwarding arguments, in field order, read
// off the switch binding.
func (v Variant) argList() string {
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = "n." + upperFirst(f.Name)
	}
	return strings.Join(parts, ", ")
}

// fieldWidth is the name column width gofmt would pad variant fields to.
func fieldWidth(fields []Field) int {
	w := 0
	for _, f := range fields {
		if n := len(upperFirst(f.Name)); n > w {
			w = n
		}
	}
	return w
}
