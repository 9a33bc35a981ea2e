// Package engine orchestrates conversions: it reads source files, runs the
// parser and emitter, and writes converted output. Commands talk to the
// engine; the engine talks to pkg/.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyxgen/pyxgen/pkg/core"
	"github.com/pyxgen/pyxgen/pkg/dialect"
	"github.com/pyxgen/pyxgen/pkg/emit"
	"github.com/pyxgen/pyxgen/pkg/parser"
)

// Engine converts Python-subset sources into a target dialect.
type Engine struct {
	dialect *dialect.Dialect
	logger  *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// Dialect is the target dialect name (must be registered).
	Dialect string
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// New creates an engine for the configured target dialect.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	name := cfg.Dialect
	if name == "" {
		return nil, dialect.ErrDialectRequired
	}
	d, ok := dialect.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (available: %s)", name, strings.Join(dialect.List(), ", "))
	}

	logger.Debug("initializing engine", "dialect", d.Name)

	return &Engine{dialect: d, logger: logger}, nil
}

// Dialect returns the engine's target dialect.
func (e *Engine) Dialect() *dialect.Dialect {
	return e.dialect
}

// Result holds the outcome of one conversion.
type Result struct {
	// Output is the complete converted source text.
	Output string
	// Functions describes every top-level function that was converted.
	Functions []FunctionInfo
	// Statements is the number of top-level statements.
	Statements int
	// RawStatements counts top-level statements passed through verbatim.
	RawStatements int
}

// FunctionInfo summarizes one converted function for inspection output.
type FunctionInfo struct {
	Name      string      `json:"name"`
	Signature string      `json:"signature"`         // the declaration line as it appears in the output
	Params    []ParamInfo `json:"params"`            // per-parameter annotation and mapping outcome
	Returns   ParamInfo   `json:"returns"`           // return annotation; Name is empty
	Options   []string    `json:"options,omitempty"` // decorator-derived qualifiers
	Typed     bool        `json:"typed"`             // true when any annotation mapped
}

// ParamInfo records how one annotation was resolved.
type ParamInfo struct {
	Name       string `json:"name,omitempty"`
	Annotation string `json:"annotation,omitempty"` // as written, empty when absent
	Native     string `json:"native,omitempty"`     // mapped keyword, empty when unmapped
	Mapped     bool   `json:"mapped"`
}

// Convert parses the source text and emits it in the target dialect.
// Unsupported statements are passed through verbatim; conversion itself
// never fails. What can fail is everything around it (I/O), which the
// file-level helpers report.
func (e *Engine) Convert(src string) *Result {
	module := parser.Parse(src)
	result := &Result{
		Output:     emit.Emit(module, e.dialect),
		Statements: len(module.Body),
	}
	for _, stmt := range module.Body {
		if _, ok := stmt.(*core.RawStmt); ok {
			result.RawStatements++
		}
	}
	for _, fn := range module.Functions() {
		result.Functions = append(result.Functions, e.describe(fn))
	}

	e.logger.Debug("converted source",
		"dialect", e.dialect.Name,
		"statements", result.Statements,
		"functions", len(result.Functions),
		"raw", result.RawStatements)

	return result
}

// ConvertFile reads and converts a single file.
func (e *Engine) ConvertFile(ctx context.Context, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return e.Convert(string(data)), nil
}

// ConvertReader converts everything readable from r (typically stdin).
func (e *Engine) ConvertReader(ctx context.Context, r io.Reader) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return e.Convert(string(data)), nil
}

// OutputPath returns the converted filename for a source path, replacing
// the extension with the dialect's ("fib.py" -> "fib.pyx").
func (e *Engine) OutputPath(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	out := base + e.dialect.FileExt
	if out == path {
		// Pure mode keeps .py; avoid clobbering the input.
		out = base + ".cy" + e.dialect.FileExt
	}
	return out
}

// WriteFile writes converted output, creating parent directories as needed.
func (e *Engine) WriteFile(path, output string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	e.logger.Info("wrote converted file", "path", path)
	return nil
}

// describe resolves a function's annotations against the type mapping.
func (e *Engine) describe(fn *core.FunctionDef) FunctionInfo {
	info := FunctionInfo{
		Name:      fn.Name,
		Signature: emit.Signature(fn, e.dialect),
	}
	for _, param := range fn.Params {
		pi := ParamInfo{Name: param.Name, Annotation: param.Annotation}
		if param.Annotation != "" {
			pi.Native, pi.Mapped = e.dialect.MapType(param.Annotation)
		}
		if pi.Mapped {
			info.Typed = true
		}
		info.Params = append(info.Params, pi)
	}
	if fn.Returns != "" {
		info.Returns = ParamInfo{Annotation: fn.Returns}
		info.Returns.Native, info.Returns.Mapped = e.dialect.MapType(fn.Returns)
		if info.Returns.Mapped {
			info.Typed = true
		}
	}
	info.Options = emit.Options(fn, e.dialect)
	return info
}
