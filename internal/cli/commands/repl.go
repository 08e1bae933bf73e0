package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/golox/internal/interp"
	"github.com/leapstack-labs/golox/pkg/ast"
	"github.com/leapstack-labs/golox/pkg/parser"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "repl",
		Aliases: []string{"shell"},
		Short:   "Start an interactive Lox session",
		Long: `Start a read-eval-print loop for Lox expressions.

Each line is parsed and evaluated immediately. Dot-commands inspect the
pipeline: .tokens and .ast show the scanner and parser view of an
expression without evaluating it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			return runREPL(cmd, cc)
		},
	}
}

func runREPL(cmd *cobra.Command, cc *CommandContext) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lox> ",
		HistoryFile:     cc.Cfg.HistoryFilePath(),
		AutoComplete:    replCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "golox REPL (history: %s)\n", cc.Cfg.HistoryFilePath())
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	interpreter := interp.New()
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(cmd, line); quit {
				break
			}
			continue
		}

		evalLine(cmd, interpreter, line)
	}

	return nil
}

func evalLine(cmd *cobra.Command, interpreter *interp.Interpreter, line string) {
	expr, err := parser.Parse(line)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	val, err := interpreter.Eval(expr)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), val)
}

func handleDotCommand(cmd *cobra.Command, line string) (quit bool) {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	rest := strings.TrimSpace(strings.TrimPrefix(line, parts[0]))

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())

	case ".tokens":
		if rest == "" {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .tokens <expression>")
			break
		}
		for _, tok := range parser.Tokenize(rest) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), tok)
		}

	case ".ast":
		if rest == "" {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .ast <expression>")
			break
		}
		expr, err := parser.Parse(rest)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			break
		}
		var p ast.Printer
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), p.Print(expr))

	case ".json":
		if rest == "" {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .json <expression>")
			break
		}
		expr, err := parser.Parse(rest)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			break
		}
		data, err := ast.ToJSON(expr)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			break
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))

	case ".clear":
		_, _ = fmt.Fprint(cmd.OutOrStdout(), "\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}

	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help              Show this help message
  .tokens <expr>     Print the token stream for an expression
  .ast <expr>        Print the syntax tree for an expression
  .json <expr>       Print the syntax tree as JSON
  .clear             Clear the screen
  .quit / .exit      Exit the REPL

Tips:
  - Use arrow keys to navigate history
  - Tab completion works for dot-commands
`
	_, _ = fmt.Fprintln(w, help)
}

// replCompleter creates a readline completer for the dot-commands.
func replCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".tokens"),
		readline.PcItem(".ast"),
		readline.PcItem(".json"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
