package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/golox/internal/cli/output"
	"github.com/leapstack-labs/golox/pkg/parser"
	"github.com/leapstack-labs/golox/pkg/token"
)

// NewTokenizeCommand creates the tokenize command.
func NewTokenizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Print the token stream for a Lox source file",
		Long: `Scan a Lox source file and print every token.

Scanning never stops at the first problem: unexpected characters and
unterminated strings are reported on stderr while the remaining tokens
still appear. Use "-" to read from stdin.`,
		Example: `  golox tokenize expr.lox
  echo '1 + 2' | golox tokenize -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			return runTokenize(cc, source)
		},
	}
}

func runTokenize(cc *CommandContext, source string) error {
	toks := parser.Tokenize(source)
	scanErrs := parser.ScanErrors(toks)
	cc.Logger.Debug("tokenized source", "tokens", len(toks), "errors", len(scanErrs))

	switch cc.Renderer.Resolved() {
	case output.ModeJSON:
		if err := renderTokensJSON(cc.Renderer, toks); err != nil {
			return err
		}
	case output.ModeTable:
		renderTokensTable(cc.Renderer, toks)
	default:
		renderTokensText(cc.Renderer, toks)
	}

	if len(scanErrs) > 0 {
		return Reported(errors.Join(scanErrs...))
	}
	return nil
}

func renderTokensText(r *output.Renderer, toks []token.Token) {
	for _, tok := range toks {
		if tok.IsError() {
			r.Errorf("%s", tok)
			continue
		}
		r.Println(tok)
	}
}

func renderTokensTable(r *output.Renderer, toks []token.Token) {
	rows := make([][]string, 0, len(toks))
	for _, tok := range toks {
		if tok.IsError() {
			continue
		}
		rows = append(rows, []string{
			tok.Type.String(),
			tok.Lexeme,
			literalDisplay(tok),
			fmt.Sprintf("%d:%d", tok.Pos.Line, tok.Pos.Column),
		})
	}
	r.Table([]string{"Type", "Lexeme", "Literal", "Pos"}, rows)

	for _, tok := range toks {
		if tok.IsError() {
			r.Errorf("%s", tok)
		}
	}
}

func renderTokensJSON(r *output.Renderer, toks []token.Token) error {
	type tokenJSON struct {
		Type    string `json:"type"`
		Lexeme  string `json:"lexeme"`
		Literal any    `json:"literal"`
		Line    int    `json:"line"`
		Column  int    `json:"column"`
	}

	out := make([]tokenJSON, 0, len(toks))
	for _, tok := range toks {
		var literal any
		switch tok.Type {
		case token.Number:
			literal = tok.Num
		case token.String:
			literal = tok.Str
		}
		out = append(out, tokenJSON{
			Type:    tok.Type.String(),
			Lexeme:  tok.Lexeme,
			Literal: literal,
			Line:    tok.Pos.Line,
			Column:  tok.Pos.Column,
		})
	}
	return r.JSON(out)
}

func literalDisplay(tok token.Token) string {
	switch tok.Type {
	case token.Number:
		return token.FormatNumber(tok.Num)
	case token.String:
		return tok.Str
	default:
		return "null"
	}
}
