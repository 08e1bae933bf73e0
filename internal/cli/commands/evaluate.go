package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/golox/internal/cli/output"
	"github.com/leapstack-labs/golox/internal/interp"
	"github.com/leapstack-labs/golox/pkg/parser"
)

// NewEvaluateCommand creates the evaluate command.
func NewEvaluateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "evaluate <file>",
		Aliases: []string{"eval"},
		Short:   "Evaluate a Lox source file and print the result",
		Long: `Parse and evaluate a Lox expression, printing its value.

Numbers print in their shortest decimal form, strings print without
quotes. Use "-" to read from stdin.`,
		Example: `  golox evaluate expr.lox
  echo '(1 + 2) * 3' | golox eval -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			return runEvaluate(cc, source)
		},
	}
}

func runEvaluate(cc *CommandContext, source string) error {
	expr, err := parser.Parse(source)
	if err != nil {
		return err
	}

	val, err := interp.New().Eval(expr)
	if err != nil {
		return err
	}
	cc.Logger.Debug("evaluated expression", "kind", val.Kind.String())

	if cc.Renderer.Resolved() == output.ModeJSON {
		return cc.Renderer.JSON(map[string]any{
			"kind":  val.Kind.String(),
			"value": val.String(),
		})
	}

	cc.Renderer.Println(val)
	return nil
}
