package commands

import (
	"os/signal"
	"syscall"

	"github.com/pyxgen/pyxgen/internal/cli/output"
	"github.com/pyxgen/pyxgen/internal/engine"
	"github.com/spf13/cobra"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Watch a directory and convert Python files as they change",
		Long: `Watch a directory for changes to .py files and regenerate the
converted output on every save. All files present when the watch starts
are converted once up front. Runs until interrupted.`,
		Example: `  # Watch the current directory
  pyxgen watch

  # Watch a source tree
  pyxgen watch src/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runWatch(cmd, dir)
		},
	}

	return cmd
}

func runWatch(cmd *cobra.Command, dir string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	styles := output.DefaultStyles()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r.Printf("Watching %s for changes (Ctrl+C to stop)\n", dir)

	err = cmdCtx.Engine.Watch(ctx, dir, func(src, out string, result *engine.Result) {
		line := styles.Success.Render("converted") + " " + src + " -> " + out
		if result.RawStatements > 0 {
			line += " " + styles.Warning.Render("(partial)")
		}
		r.Println(line)
	})
	if err != nil && ctx.Err() == nil {
		return err
	}

	return nil
}
