package interp

import (
	"strconv"

	"github.com/leapstack-labs/golox/pkg/token"
)

// Kind identifies the runtime type of a Value.
type Kind int

const (
	KindNil Kind = iota
	KindBoolean
	KindNumber
	KindString
)

var kindNames = map[Kind]string{
	KindNil:     "nil",
	KindBoolean: "boolean",
	KindNumber:  "number",
	KindString:  "string",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "KIND(" + strconv.Itoa(int(k)) + ")"
}

// Value is a Lox runtime value. Only the field matching Kind is meaningful;
// the others stay zero, so == compares values structurally. The zero Value
// is nil.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Bool bool
}

// NumberValue returns a number Value.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBoolean, Bool: b}
}

// NilValue returns the nil Value.
func NilValue() Value {
	return Value{Kind: KindNil}
}

// String renders the value the way the evaluate command prints it.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return token.FormatNumber(v.Num)
	case KindString:
		return v.Str
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	default:
		return "nil"
	}
}
