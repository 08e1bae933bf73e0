package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/golox/internal/interp"
)

// replHarness returns a command with captured streams for driving the
// REPL helpers directly.
func replHarness() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd, out, errOut
}

func TestEvalLine(t *testing.T) {
	cmd, out, errOut := replHarness()

	evalLine(cmd, interp.New(), "2 * 21")
	assert.Equal(t, "42\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestEvalLineParseError(t *testing.T) {
	cmd, out, errOut := replHarness()

	evalLine(cmd, interp.New(), "1 +")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error: parse error")
}

func TestEvalLineRuntimeError(t *testing.T) {
	cmd, out, errOut := replHarness()

	evalLine(cmd, interp.New(), `-"x"`)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error: runtime error")
}

func TestHandleDotCommandQuit(t *testing.T) {
	cmd, _, _ := replHarness()

	assert.True(t, handleDotCommand(cmd, ".quit"))
	assert.True(t, handleDotCommand(cmd, ".exit"))
	assert.False(t, handleDotCommand(cmd, ".help"))
}

func TestHandleDotCommandHelp(t *testing.T) {
	cmd, out, _ := replHarness()

	handleDotCommand(cmd, ".help")
	assert.Contains(t, out.String(), ".tokens <expr>")
	assert.Contains(t, out.String(), ".quit / .exit")
}

func TestHandleDotCommandTokens(t *testing.T) {
	cmd, out, _ := replHarness()

	handleDotCommand(cmd, ".tokens 1 + 2")
	assert.Contains(t, out.String(), "NUMBER 1 1")
	assert.Contains(t, out.String(), "PLUS + null")
}

func TestHandleDotCommandTokensMissingArg(t *testing.T) {
	cmd, _, errOut := replHarness()

	handleDotCommand(cmd, ".tokens")
	assert.Contains(t, errOut.String(), "Usage: .tokens <expression>")
}

func TestHandleDotCommandAST(t *testing.T) {
	cmd, out, _ := replHarness()

	handleDotCommand(cmd, ".ast 1 + 2 * 3")
	assert.Equal(t, "(+ 1 (* 2 3))\n", out.String())
}

func TestHandleDotCommandJSON(t *testing.T) {
	cmd, out, _ := replHarness()

	handleDotCommand(cmd, ".json !true")
	assert.JSONEq(t, `{"type": "unary", "op": "!", "expr": true}`, out.String())
}

func TestHandleDotCommandUnknown(t *testing.T) {
	cmd, _, errOut := replHarness()

	assert.False(t, handleDotCommand(cmd, ".bogus"))
	assert.Contains(t, errOut.String(), "Unknown command: .bogus")
}

func TestReplCompleterCoversDotCommands(t *testing.T) {
	completer := replCompleter()

	names := make([]string, 0, len(completer.GetChildren()))
	for _, child := range completer.GetChildren() {
		names = append(names, string(child.GetName()))
	}

	for _, want := range []string{".help ", ".tokens ", ".ast ", ".json ", ".clear ", ".quit ", ".exit "} {
		assert.Contains(t, names, want)
	}
}
