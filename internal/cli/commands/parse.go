package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/golox/internal/cli/output"
	"github.com/leapstack-labs/golox/pkg/ast"
	"github.com/leapstack-labs/golox/pkg/parser"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Lox source file and print its syntax tree",
		Long: `Parse a Lox source file into an expression tree.

The tree prints in parenthesized prefix form, or as a nested JSON
document with --output json. Use "-" to read from stdin.`,
		Example: `  golox parse expr.lox
  golox parse --output json expr.lox`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			return runParse(cc, source)
		},
	}
}

func runParse(cc *CommandContext, source string) error {
	expr, err := parser.Parse(source)
	if err != nil {
		return err
	}

	if cc.Renderer.Resolved() == output.ModeJSON {
		data, err := ast.ToJSON(expr)
		if err != nil {
			return err
		}
		cc.Renderer.Println(string(data))
		return nil
	}

	var p ast.Printer
	cc.Renderer.Println(p.Print(expr))
	return nil
}
