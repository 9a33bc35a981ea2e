// Package cython provides the classic Cython (.pyx) target dialect.
//
// Import this package with a blank identifier to register the dialect:
//
//	import _ "github.com/pyxgen/pyxgen/pkg/dialects/cython"
package cython

import (
	"strings"

	"github.com/pyxgen/pyxgen/pkg/dialect"
)

func init() {
	dialect.Register(Cython)
}

// Cython is the classic cdef-declaration dialect targeting .pyx files.
var Cython = &dialect.Dialect{
	Name:        "cython",
	Description: "Classic Cython with cdef declarations (.pyx)",
	FileExt:     ".pyx",
	Style:       dialect.StyleCDecl,

	FunctionKeyword: "cdef",
	Placeholder:     "...",

	Types: map[string]string{
		"int":   "long",
		"float": "double",
		"bool":  "bint",
		"str":   "str",
		"bytes": "bytes",
	},

	Operators: dialect.DefaultOperators,

	Options: map[string]dialect.OptionFunc{
		// @no_gil() releases the global interpreter lock.
		"no_gil": func(_ []string) string {
			return "nogil"
		},
		// @except_error(v) declares the error-indicating return value.
		"except_error": func(args []string) string {
			return "except " + strings.Join(args, ", ")
		},
	},
}
