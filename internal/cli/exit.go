package cli

import (
	"errors"

	"github.com/leapstack-labs/golox/internal/interp"
	"github.com/leapstack-labs/golox/pkg/parser"
)

// Exit codes follow the sysexits convention: syntax problems and runtime
// failures are distinguishable for scripting.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitSyntax  = 65
	ExitRuntime = 70
)

// ExitCode maps an error returned by Execute to a process exit code.
// Wrapped and joined errors are inspected through the whole chain, so
// already-reported errors still map by their underlying cause.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var parseErr *parser.ParseError
	var lexErr *parser.LexError
	if errors.As(err, &parseErr) || errors.As(err, &lexErr) {
		return ExitSyntax
	}

	var runtimeErr *interp.RuntimeError
	if errors.As(err, &runtimeErr) {
		return ExitRuntime
	}

	return ExitUsage
}
