package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/golox/internal/cli/config"
	clitest "github.com/leapstack-labs/golox/internal/cli/testutil"
	"github.com/leapstack-labs/golox/internal/testutil"
)

// newTestContext builds a CommandContext around a captured renderer, the
// seam the run functions are written against.
func newTestContext(t *testing.T, tr *clitest.TestRenderer) *CommandContext {
	t.Helper()
	return &CommandContext{
		Cfg:      &config.Config{Output: config.DefaultOutput, Watch: config.DefaultWatch},
		Logger:   testutil.NewTestLogger(t),
		Renderer: tr.Renderer,
	}
}

func TestRunTokenizeSplitsDiagnosticsFromTokens(t *testing.T) {
	tr := clitest.NewTestRendererAuto()
	cc := newTestContext(t, tr)

	err := runTokenize(cc, "@ 1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReported)

	assert.Contains(t, tr.Output(), "NUMBER 1 1")
	assert.NotContains(t, tr.Output(), "Unexpected character")
	assert.Contains(t, tr.ErrorOutput(), "[line 1] Error: Unexpected character: @")
}

func TestRunTokenizeTableMode(t *testing.T) {
	tr := clitest.NewTestRendererTable()
	cc := newTestContext(t, tr)

	require.NoError(t, runTokenize(cc, "1 + 2"))

	out := tr.Output()
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "PLUS")
	clitest.AssertNoANSI(t, out)
}

func TestRunEvaluateJSONMode(t *testing.T) {
	tr := clitest.NewTestRendererJSON()
	cc := newTestContext(t, tr)

	require.NoError(t, runEvaluate(cc, "1 + 2"))

	assert.JSONEq(t, `{"kind": "number", "value": "3"}`, tr.Output())
	clitest.AssertNoANSI(t, tr.Output())
}

func TestRunCheckTableMode(t *testing.T) {
	good := clitest.WriteSourceFile(t, "1 + 2")
	bad := clitest.WriteSourceFile(t, "(1")

	tr := clitest.NewTestRendererTable()
	cc := newTestContext(t, tr)

	err := runCheck(context.Background(), cc, []string{good, bad}, &CheckOptions{Concurrency: 2})
	require.Error(t, err)

	out := tr.Output()
	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "error")
	clitest.AssertNoANSI(t, out)
}

func TestRendererReset(t *testing.T) {
	tr := clitest.NewTestRendererAuto()
	cc := newTestContext(t, tr)

	require.NoError(t, runEvaluate(cc, "1"))
	assert.NotEmpty(t, tr.Output())

	tr.Reset()
	assert.Empty(t, tr.Output())
	assert.Empty(t, tr.ErrorOutput())
}
