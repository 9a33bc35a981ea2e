package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pyxgen/pyxgen/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Convert a file and write a setup.py that compiles it",
		Long: `Convert a Python source file and write the generated module together
with a setup.py build script, ready for compilation.`,
		Example: `  # Generate fib.pyx and setup.py next to the source
  pyxgen build fib.py

  # Generate into a separate directory
  pyxgen build fib.py --out-dir build/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args[0])
		},
	}

	return cmd
}

func runBuild(cmd *cobra.Command, path string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	result, err := cmdCtx.Engine.Build(cmd.Context(), path, cmdCtx.Cfg.OutDir)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		buildOutput := output.BuildOutput{
			Source:    path,
			OutPath:   result.OutPath,
			SetupPath: result.SetupPath,
		}
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(buildOutput)
	default:
		r.Printf("Wrote %s\n", result.OutPath)
		r.Printf("Wrote %s\n", result.SetupPath)
		r.Printf("Run: python setup.py build_ext --inplace\n")
	}

	return nil
}
