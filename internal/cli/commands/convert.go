package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/pyxgen/pyxgen/internal/cli/output"
	"github.com/pyxgen/pyxgen/internal/engine"
	"github.com/spf13/cobra"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert an annotated Python file to the target dialect",
		Long: `Convert a Python source file to the configured target dialect.

Function definitions with recognized type annotations are rewritten as
native declarations; everything the converter does not understand is
passed through unchanged. With no file argument the source is read from
stdin and the result is written to stdout.

Output adapts to environment:
  - Terminal: Plain source (suitable for syntax highlighting)
  - Piped/Scripted: Markdown with code block`,
		Example: `  # Convert a file and print the result
  pyxgen convert fib.py

  # Convert and write fib.pyx next to the source
  pyxgen convert fib.py --write

  # Convert stdin to stdout
  cat fib.py | pyxgen convert

  # Convert as JSON (includes per-function details)
  pyxgen convert fib.py --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runConvert(cmd, path, write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result next to the source instead of printing")

	return cmd
}

func runConvert(cmd *cobra.Command, path string, write bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	eng := cmdCtx.Engine
	r := cmdCtx.Renderer

	var result *engine.Result
	if path == "" {
		if write {
			return fmt.Errorf("--write requires a file argument")
		}
		result, err = eng.ConvertReader(cmd.Context(), cmd.InOrStdin())
	} else {
		result, err = eng.ConvertFile(cmd.Context(), path)
	}
	if err != nil {
		return err
	}

	if write {
		out := eng.OutputPath(path)
		if cmdCtx.Cfg.OutDir != "" {
			out = filepath.Join(cmdCtx.Cfg.OutDir, filepath.Base(out))
		}
		if err := eng.WriteFile(out, result.Output); err != nil {
			return err
		}
		r.Printf("Wrote %s\n", out)
		return nil
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		convertOutput := output.ConvertOutput{
			Source:  path,
			Dialect: eng.Dialect().Name,
			Code:    result.Output,
			Stats: output.ConvertStats{
				Functions:     len(result.Functions),
				Statements:    result.Statements,
				RawStatements: result.RawStatements,
			},
			Funcs: result.Functions,
		}
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(convertOutput)
	case output.ModeMarkdown:
		title := "stdin"
		if path != "" {
			title = path
		}
		r.Println(output.FormatHeader(1, fmt.Sprintf("Converted: %s", title)))
		r.Println("")
		r.Println(output.FormatCodeBlock(eng.Dialect().Name, result.Output))
	default:
		// Text mode: just output the converted source directly
		r.Printf("%s", result.Output)
	}

	return nil
}
