package output_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/golox/internal/cli/output"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func TestModeValid(t *testing.T) {
	for _, m := range []output.Mode{output.ModeAuto, output.ModeText, output.ModeTable, output.ModeJSON} {
		assert.True(t, m.Valid(), "%s should be valid", m)
	}
	assert.False(t, output.Mode("yaml").Valid())
	assert.False(t, output.Mode("").Valid())
}

func TestResolved(t *testing.T) {
	tests := []struct {
		name  string
		mode  output.Mode
		isTTY bool
		want  output.Mode
	}{
		{"auto on terminal", output.ModeAuto, true, output.ModeTable},
		{"auto on pipe", output.ModeAuto, false, output.ModeText},
		{"explicit text on terminal", output.ModeText, true, output.ModeText},
		{"explicit json on pipe", output.ModeJSON, false, output.ModeJSON},
		{"unknown falls back to auto", output.Mode("bogus"), false, output.ModeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := output.NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.Resolved())
		})
	}
}

func TestTable(t *testing.T) {
	out := &bytes.Buffer{}
	r := output.NewRendererWithTTY(out, &bytes.Buffer{}, false, output.ModeTable)

	r.Table([]string{"TYPE", "LEXEME"}, [][]string{
		{"NUMBER", "12"},
		{"PLUS", "+"},
	})

	got := out.String()
	assert.Contains(t, got, "TYPE")
	assert.Contains(t, got, "LEXEME")
	assert.Contains(t, got, "NUMBER")
	assert.Contains(t, got, "PLUS")
}

func TestJSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := output.NewRendererWithTTY(out, &bytes.Buffer{}, false, output.ModeJSON)

	require.NoError(t, r.JSON(map[string]any{"value": "46"}))
	assert.JSONEq(t, `{"value": "46"}`, out.String())
}

func TestNoANSIWithoutTerminal(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r := output.NewRendererWithTTY(out, errOut, false, output.ModeText)

	r.Successf("done in %d steps", 3)
	r.Errorf("failed: %s", "boom")

	assert.False(t, ansiPattern.MatchString(out.String()), "stdout contains ANSI codes: %q", out.String())
	assert.False(t, ansiPattern.MatchString(errOut.String()), "stderr contains ANSI codes: %q", errOut.String())
	assert.Contains(t, out.String(), "done in 3 steps")
	assert.Contains(t, errOut.String(), "failed: boom")
}

func TestWriters(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r := output.NewRendererWithTTY(out, errOut, false, output.ModeText)

	r.Printf("a %s\n", "b")
	r.Println("c")

	assert.Equal(t, "a b\nc\n", out.String())
	assert.Empty(t, errOut.String())
}
