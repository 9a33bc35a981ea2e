// Package dialect defines target dialect configuration for the converter.
//
// A dialect bundles everything output-specific: the type mapping from Python
// annotation names to native type keywords, the declaration style, the
// placeholder substituted for pass, and the decorator-to-qualifier handlers.
// Dialect values are built once in their implementation package's init and
// never mutated afterwards, so they are safe for concurrent reads.
package dialect

import (
	"sort"

	"github.com/pyxgen/pyxgen/pkg/token"
)

// Style selects how typed function declarations are written.
type Style int

const (
	// StyleCDecl writes classic Cython declarations: cdef long f(long a):
	StyleCDecl Style = iota
	// StyleAnnotated keeps def and annotations, marking typed functions
	// with decorators (Cython pure-Python mode).
	StyleAnnotated
)

// OptionFunc renders a recognized decorator into a dialect fragment.
// For StyleCDecl the fragment is a qualifier appended after the parameter
// list ("nogil", "except -1"); for StyleAnnotated it is a decorator line.
type OptionFunc func(args []string) string

// Dialect describes one conversion target.
type Dialect struct {
	Name        string
	Description string
	FileExt     string // extension for converted files, e.g. ".pyx"
	Style       Style

	// FunctionKeyword marks a native-typed function declaration ("cdef").
	// Used only by StyleCDecl.
	FunctionKeyword string
	// Marker is the decorator placed on typed functions by StyleAnnotated
	// ("@cython.cfunc").
	Marker string
	// Placeholder replaces the pass statement in emitted bodies.
	Placeholder string
	// Preamble lines are written once at the top of every converted file.
	Preamble []string

	// Types maps Python annotation names to native type keywords.
	// A miss means the parameter or return keeps default object typing.
	Types map[string]string

	// Operators maps operator tokens to their rendered spelling.
	Operators map[token.Type]string

	// Options maps recognized decorator names to fragment renderers.
	// Decorators not present here are passed through unchanged.
	Options map[string]OptionFunc
}

// MapType looks up a Python type name in the dialect's type mapping.
func (d *Dialect) MapType(name string) (string, bool) {
	native, ok := d.Types[name]
	return native, ok
}

// Operator returns the rendered spelling for an operator token.
func (d *Dialect) Operator(t token.Type) (string, bool) {
	op, ok := d.Operators[t]
	return op, ok
}

// Option returns the fragment renderer for a recognized decorator name.
func (d *Dialect) Option(name string) (OptionFunc, bool) {
	fn, ok := d.Options[name]
	return fn, ok
}

// TypeNames returns the annotation names in the mapping's domain (sorted).
func (d *Dialect) TypeNames() []string {
	names := make([]string, 0, len(d.Types))
	for name := range d.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
