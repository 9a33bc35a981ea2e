package commands

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pyxgen/pyxgen/internal/cli/output"
	"github.com/pyxgen/pyxgen/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List registered target dialects and their type mappings",
		Example: `  # List dialects
  pyxgen dialects

  # List dialects as JSON
  pyxgen dialects --output json`,
		Args: cobra.NoArgs,
		RunE: runDialects,
	}

	return cmd
}

type dialectInfo struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	FileExt     string            `json:"file_ext"`
	Types       map[string]string `json:"types"`
}

func runDialects(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContextWithoutEngine(cmd)
	r := cmdCtx.Renderer

	var infos []dialectInfo
	for _, name := range dialect.List() {
		d, ok := dialect.Get(name)
		if !ok {
			continue
		}
		infos = append(infos, dialectInfo{
			Name:        d.Name,
			Description: d.Description,
			FileExt:     d.FileExt,
			Types:       d.Types,
		})
	}

	if r.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	styles := output.DefaultStyles()
	for _, info := range infos {
		header := info.Name
		if info.Name == cmdCtx.Cfg.Dialect {
			header += " (default)"
		}
		r.Println(styles.Header.Render(header))
		r.Println(styles.Muted.Render(info.Description))

		d, _ := dialect.Get(info.Name)
		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Annotation", "Native type"})
		for _, name := range d.TypeNames() {
			t.AppendRow(table.Row{name, d.Types[name]})
		}
		t.Render()
		r.Println("")
	}

	return nil
}
