package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pyxgen/pyxgen/internal/cli/output"
	"github.com/pyxgen/pyxgen/internal/engine"
	"github.com/spf13/cobra"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show how each function signature would be converted",
		Long: `Inspect a Python source file and report, per function, which
annotations map to native types and which declaration the converter
would emit. Nothing is written; this is a dry run of convert.`,
		Example: `  # Inspect a file
  pyxgen inspect fib.py

  # Inspect against the pure-Python dialect
  pyxgen inspect fib.py --dialect pure

  # Inspect as JSON
  pyxgen inspect fib.py --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}

	return cmd
}

func runInspect(cmd *cobra.Command, path string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	eng := cmdCtx.Engine
	r := cmdCtx.Renderer

	result, err := eng.ConvertFile(cmd.Context(), path)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		inspectOutput := output.InspectOutput{
			Source:  path,
			Dialect: eng.Dialect().Name,
			Funcs:   result.Functions,
		}
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(inspectOutput)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, fmt.Sprintf("Functions: %s", path)))
		r.Println("")
		for _, fn := range result.Functions {
			r.Println(output.FormatHeader(2, fn.Name))
			r.Println("")
			r.Println(output.FormatCodeBlock(eng.Dialect().Name, fn.Signature))
		}
	default:
		printFunctionTable(cmdCtx, path, result)
	}

	return nil
}

func printFunctionTable(cmdCtx *CommandContext, path string, result *engine.Result) {
	r := cmdCtx.Renderer
	styles := output.DefaultStyles()

	if len(result.Functions) == 0 {
		r.Printf("%s: no function definitions found\n", path)
		return
	}

	r.Println(styles.Header.Render(fmt.Sprintf("%s (%s dialect)", path, cmdCtx.Engine.Dialect().Name)))

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Function", "Param", "Annotation", "Native", "Mapped"})

	for _, fn := range result.Functions {
		for i, p := range fn.Params {
			name := ""
			if i == 0 {
				name = fn.Name
			}
			t.AppendRow(table.Row{name, p.Name, orDash(p.Annotation), orDash(p.Native), yesNo(p.Mapped)})
		}
		ret := fn.Returns
		name := ""
		if len(fn.Params) == 0 {
			name = fn.Name
		}
		t.AppendRow(table.Row{name, "(return)", orDash(ret.Annotation), orDash(ret.Native), yesNo(ret.Mapped)})
	}
	t.Render()

	for _, fn := range result.Functions {
		r.Println(styles.Keyword.Render(fn.Signature))
		if len(fn.Options) > 0 {
			r.Println(styles.Muted.Render("  options: " + strings.Join(fn.Options, ", ")))
		}
	}

	if result.RawStatements > 0 {
		r.Println(styles.Warning.Render(fmt.Sprintf("%d statement(s) passed through unmodified", result.RawStatements)))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
