package interp

import (
	"fmt"

	"github.com/leapstack-labs/golox/pkg/token"
)

// RuntimeError represents an evaluation failure with position information.
type RuntimeError struct {
	Pos     token.Position
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrExpectedNumber      = "expected number value, got %s"
	ErrExpectedBoolean     = "expected boolean value, got %s"
	ErrAddMismatch         = "cannot add values of different types: %s and %s"
	ErrMultiplyMismatch    = "cannot multiply values of different types: %s and %s"
	ErrCompareMismatch     = "cannot compare values of different types: %s and %s"
	ErrNegativeRepeat      = "cannot repeat a string a negative number of times"
	ErrUndefinedIdentifier = "undefined identifier %s"
	ErrBadLiteral          = "unexpected literal token %s"
	ErrBadOperator         = "unsupported operator %s"
)
