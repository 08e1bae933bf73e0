package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/golox/internal/ui"
)

// NewUICommand creates the ui command.
func NewUICommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "ui <file>",
		Short: "Open an interactive viewer for a Lox source file",
		Long: `Open a terminal viewer showing a Lox source file alongside its token
stream, syntax tree, and evaluated result. With watching enabled the
views reload whenever the file is saved.`,
		Example: `  # Inspect a file, reloading on save
  golox ui expr.lox

  # One-shot inspection without the file watcher
  golox ui --watch=false expr.lox`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)

			// The config default applies unless the flag was given.
			if !cmd.Flags().Changed("watch") {
				watch = cc.Cfg.Watch
			}

			cc.Logger.Debug("starting viewer", "file", args[0], "watch", watch)
			return ui.Run(cmd.Context(), ui.Config{
				Path:   args[0],
				Watch:  watch,
				Logger: cc.Logger,
			})
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", true, "reload the viewer when the file changes")

	return cmd
}
