// Package emit renders a parsed module as target-dialect source text.
//
// The emitter is the second half of the conversion: the parser decides what
// each statement is, the dialect supplies the type mapping and keywords, and
// this package writes the lines. Statements the parser preserved as raw
// nodes are written back verbatim.
package emit

import (
	"strings"

	"github.com/pyxgen/pyxgen/pkg/core"
	"github.com/pyxgen/pyxgen/pkg/dialect"
)

// Emitter renders AST nodes for one target dialect.
type Emitter struct {
	dialect *dialect.Dialect
}

// New creates an emitter for the given dialect.
func New(d *dialect.Dialect) *Emitter {
	return &Emitter{dialect: d}
}

// Emit renders the whole module, preamble included.
func Emit(m *core.Module, d *dialect.Dialect) string {
	return New(d).Module(m)
}

// Module renders all top-level statements in order. Top-level compound
// statements get a trailing blank line to keep the output readable.
func (e *Emitter) Module(m *core.Module) string {
	p := &Printer{}

	if len(e.dialect.Preamble) > 0 {
		for _, line := range e.dialect.Preamble {
			p.line(0, line)
		}
		p.blank()
	}

	for _, stmt := range m.Body {
		e.stmt(p, stmt)
		switch stmt.(type) {
		case *core.FunctionDef, *core.ForStmt, *core.WhileStmt, *core.IfStmt:
			p.blank()
		}
	}
	return p.String()
}

// indentOf returns the statement's original indentation in spaces.
func indentOf(s core.Stmt) int {
	return s.Pos().Column - 1
}

func (e *Emitter) stmt(p *Printer, s core.Stmt) {
	ind := indentOf(s)
	switch s := s.(type) {
	case *core.FunctionDef:
		e.functionDef(p, s)
	case *core.ForStmt:
		p.line(ind, "for "+s.Target+" in "+e.expr(s.Iter)+":")
		e.body(p, s.Body)
	case *core.WhileStmt:
		p.line(ind, "while "+e.expr(s.Test)+":")
		e.body(p, s.Body)
	case *core.IfStmt:
		e.ifStmt(p, s)
	case *core.ReturnStmt:
		if s.Value != nil {
			p.line(ind, "return "+e.expr(s.Value))
		} else {
			p.line(ind, "return")
		}
	case *core.PassStmt:
		p.line(ind, e.dialect.Placeholder)
	case *core.BreakStmt:
		p.line(ind, "break")
	case *core.ContinueStmt:
		p.line(ind, "continue")
	case *core.AssignStmt:
		p.line(ind, e.expr(s.Target)+" = "+e.expr(s.Value))
	case *core.AnnAssignStmt:
		p.line(ind, s.Target+": "+s.Annotation+" = "+e.expr(s.Value))
	case *core.AugAssignStmt:
		p.line(ind, e.expr(s.Target)+" "+s.Op+"= "+e.expr(s.Value))
	case *core.ExprStmt:
		p.line(ind, e.expr(s.X))
	case *core.ImportStmt:
		p.line(ind, "import "+strings.Join(s.Names, ", "))
	case *core.ImportFromStmt:
		p.line(ind, "from "+strings.Repeat(".", s.Level)+s.Module+" import "+strings.Join(s.Names, ", "))
	case *core.RaiseStmt:
		if s.Exc != nil {
			p.line(ind, "raise "+e.expr(s.Exc))
		} else {
			p.line(ind, "raise")
		}
	case *core.RawStmt:
		p.line(ind, s.Text)
	}
}

func (e *Emitter) body(p *Printer, body []core.Stmt) {
	for _, s := range body {
		e.stmt(p, s)
	}
}

func (e *Emitter) ifStmt(p *Printer, s *core.IfStmt) {
	ind := indentOf(s)
	keyword := "if"
	if s.AsElif {
		keyword = "elif"
	}
	p.line(ind, keyword+" "+e.expr(s.Test)+":")
	e.body(p, s.Body)

	if len(s.Else) == 0 {
		return
	}
	if chained, ok := s.Else[0].(*core.IfStmt); ok && chained.AsElif && len(s.Else) == 1 {
		e.ifStmt(p, chained)
		return
	}
	p.line(ind, "else:")
	e.body(p, s.Else)
}

// functionDef renders decorators, the declaration, and the body.
func (e *Emitter) functionDef(p *Printer, fn *core.FunctionDef) {
	ind := indentOf(fn)

	var options []string
	for _, dec := range fn.Decorators {
		if render, ok := e.dialect.Option(dec.Name); ok {
			options = append(options, render(e.exprs(dec.Args)))
			continue
		}
		// Unrecognized decorators pass through unchanged.
		p.line(ind, "@"+dec.Name+e.decoratorArgs(dec))
	}

	switch e.dialect.Style {
	case dialect.StyleAnnotated:
		if e.anyMapped(fn) {
			p.line(ind, e.dialect.Marker)
		}
		for _, opt := range options {
			p.line(ind, opt)
		}
		p.line(ind, e.annotatedDecl(fn))
	default:
		p.line(ind, e.cdeclDecl(fn, options))
	}

	e.body(p, fn.Body)
}

// Signature renders just the declaration line for a function, the form
// the converted file will carry. Used by inspection tooling.
func Signature(fn *core.FunctionDef, d *dialect.Dialect) string {
	e := New(d)
	if d.Style == dialect.StyleAnnotated {
		return e.annotatedDecl(fn)
	}
	return e.cdeclDecl(fn, nil)
}

// Options renders the function's recognized decorator fragments for the
// dialect. Unrecognized decorators are not included; they pass through as
// decorator lines instead.
func Options(fn *core.FunctionDef, d *dialect.Dialect) []string {
	e := New(d)
	var options []string
	for _, dec := range fn.Decorators {
		if render, ok := d.Option(dec.Name); ok {
			options = append(options, render(e.exprs(dec.Args)))
		}
	}
	return options
}

// anyMapped reports whether any annotation on the function resolves
// through the dialect's type mapping. This is what decides between the
// native-function marker and a plain def.
func (e *Emitter) anyMapped(fn *core.FunctionDef) bool {
	if _, ok := e.dialect.MapType(fn.Returns); ok && fn.Returns != "" {
		return true
	}
	for _, param := range fn.Params {
		if param.Annotation == "" {
			continue
		}
		if _, ok := e.dialect.MapType(param.Annotation); ok {
			return true
		}
	}
	return false
}

// cdeclDecl renders a classic Cython declaration:
//
//	cdef long add(long a, long b) nogil:
//
// The cdef marker appears when any annotation mapped; otherwise the
// declaration falls back to plain def. Unmapped annotations are dropped,
// leaving the parameter with default object typing.
func (e *Emitter) cdeclDecl(fn *core.FunctionDef, options []string) string {
	var b strings.Builder

	if e.anyMapped(fn) {
		b.WriteString(e.dialect.FunctionKeyword)
		b.WriteByte(' ')
		if native, ok := e.dialect.MapType(fn.Returns); ok && fn.Returns != "" {
			b.WriteString(native)
			b.WriteByte(' ')
		}
	} else {
		b.WriteString("def ")
	}

	b.WriteString(fn.Name)
	b.WriteByte('(')
	for i, param := range fn.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if native, ok := e.dialect.MapType(param.Annotation); ok && param.Annotation != "" {
			b.WriteString(native)
			b.WriteByte(' ')
		}
		b.WriteString(param.Name)
	}
	b.WriteByte(')')

	if len(options) > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(options, ", "))
	}
	b.WriteByte(':')
	return b.String()
}

// annotatedDecl renders a pure-Python-mode declaration:
//
//	def add(a: cython.long, b: cython.long) -> cython.long:
//
// Mapped annotations are rewritten; unmapped ones are kept as written,
// since the output stays valid Python.
func (e *Emitter) annotatedDecl(fn *core.FunctionDef) string {
	var b strings.Builder
	b.WriteString("def ")
	b.WriteString(fn.Name)
	b.WriteByte('(')
	for i, param := range fn.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.Name)
		if param.Annotation != "" {
			b.WriteString(": ")
			b.WriteString(e.mapOrKeep(param.Annotation))
		}
	}
	b.WriteByte(')')
	if fn.Returns != "" {
		b.WriteString(" -> ")
		b.WriteString(e.mapOrKeep(fn.Returns))
	}
	b.WriteByte(':')
	return b.String()
}

func (e *Emitter) mapOrKeep(annotation string) string {
	if native, ok := e.dialect.MapType(annotation); ok {
		return native
	}
	return annotation
}

func (e *Emitter) decoratorArgs(dec core.Decorator) string {
	if dec.Args == nil {
		return ""
	}
	return "(" + strings.Join(e.exprs(dec.Args), ", ") + ")"
}

func (e *Emitter) exprs(list []core.Expr) []string {
	out := make([]string, len(list))
	for i, x := range list {
		out[i] = e.expr(x)
	}
	return out
}
