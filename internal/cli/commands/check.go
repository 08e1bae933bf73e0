package commands

import (
	"context"
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/golox/internal/cli/output"
	"github.com/leapstack-labs/golox/pkg/parser"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Concurrency int
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check Lox source files for syntax errors",
		Long: `Scan and parse one or more Lox source files, reporting every
syntax problem found. Files are checked in parallel.`,
		Example: `  golox check expr.lox
  golox check examples/*.lox`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			return runCheck(cmd.Context(), cc, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 4, "Number of files checked in parallel")

	return cmd
}

type checkResult struct {
	Path string
	Errs []error
}

func runCheck(ctx context.Context, cc *CommandContext, paths []string, opts *CheckOptions) error {
	runID := uuid.NewString()
	cc.Logger.Debug("starting check run", "run_id", runID, "files", len(paths))

	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}

	results := make([]checkResult, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(path)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	var all []error
	for _, res := range results {
		all = append(all, res.Errs...)
	}
	cc.Logger.Debug("check run finished", "run_id", runID, "errors", len(all))

	switch cc.Renderer.Resolved() {
	case output.ModeJSON:
		if err := renderCheckJSON(cc.Renderer, results); err != nil {
			return err
		}
	case output.ModeTable:
		renderCheckTable(cc.Renderer, results)
	default:
		renderCheckText(cc.Renderer, results)
	}

	if len(all) > 0 {
		return Reported(errors.Join(all...))
	}
	return nil
}

// checkFile scans and parses one file, collecting every diagnostic. Lexer
// diagnostics and the first parse error are reported together.
func checkFile(path string) checkResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return checkResult{Path: path, Errs: []error{err}}
	}
	source := string(data)

	var errs []error
	errs = append(errs, parser.ScanErrors(parser.Tokenize(source))...)
	if _, err := parser.Parse(source); err != nil {
		errs = append(errs, err)
	}
	return checkResult{Path: path, Errs: errs}
}

func renderCheckText(r *output.Renderer, results []checkResult) {
	failed := 0
	for _, res := range results {
		if len(res.Errs) == 0 {
			r.Printf("%s: ok\n", res.Path)
			continue
		}
		failed++
		for _, err := range res.Errs {
			r.Errorf("%s: %v", res.Path, err)
		}
	}

	if failed == 0 {
		r.Successf("%d files checked, no errors", len(results))
	} else {
		r.Errorf("%d of %d files have errors", failed, len(results))
	}
}

func renderCheckTable(r *output.Renderer, results []checkResult) {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		status := "ok"
		detail := ""
		if len(res.Errs) > 0 {
			status = "error"
			detail = res.Errs[0].Error()
		}
		rows = append(rows, []string{res.Path, status, detail})
	}
	r.Table([]string{"File", "Status", "Detail"}, rows)
}

func renderCheckJSON(r *output.Renderer, results []checkResult) error {
	type fileJSON struct {
		Path   string   `json:"path"`
		OK     bool     `json:"ok"`
		Errors []string `json:"errors,omitempty"`
	}

	out := make([]fileJSON, 0, len(results))
	for _, res := range results {
		f := fileJSON{Path: res.Path, OK: len(res.Errs) == 0}
		for _, err := range res.Errs {
			f.Errors = append(f.Errors, err.Error())
		}
		out = append(out, f)
	}
	return r.JSON(out)
}
