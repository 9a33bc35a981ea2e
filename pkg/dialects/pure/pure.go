// Package pure provides the Cython pure-Python-mode target dialect.
//
// Pure mode keeps the file valid Python: typed functions are marked with
// @cython.cfunc and annotations are rewritten to cython.* types, so the
// same file runs uncompiled and compiles with Cython for speed.
//
// Import this package with a blank identifier to register the dialect:
//
//	import _ "github.com/pyxgen/pyxgen/pkg/dialects/pure"
package pure

import (
	"strings"

	"github.com/pyxgen/pyxgen/pkg/dialect"
)

func init() {
	dialect.Register(Pure)
}

// Pure is the pure-Python-mode dialect targeting .py files.
var Pure = &dialect.Dialect{
	Name:        "pure",
	Description: "Cython pure-Python mode with @cython.cfunc (.py)",
	FileExt:     ".py",
	Style:       dialect.StyleAnnotated,

	Marker:      "@cython.cfunc",
	Placeholder: "pass", // pass is already valid in pure mode
	Preamble:    []string{"import cython"},

	Types: map[string]string{
		"int":   "cython.long",
		"float": "cython.double",
		"bool":  "cython.bint",
		"str":   "str",
		"bytes": "bytes",
	},

	Operators: dialect.DefaultOperators,

	Options: map[string]dialect.OptionFunc{
		"no_gil": func(_ []string) string {
			return "@cython.nogil"
		},
		"except_error": func(args []string) string {
			return "@cython.exceptval(" + strings.Join(args, ", ") + ")"
		},
	},
}
