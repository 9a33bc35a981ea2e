package cython

import (
	"testing"

	"github.com/pyxgen/pyxgen/pkg/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredOnImport(t *testing.T) {
	d, ok := dialect.Get("cython")
	require.True(t, ok)
	assert.Same(t, Cython, d)
}

func TestTypeMapping(t *testing.T) {
	tests := []struct {
		annotation string
		native     string
	}{
		{"int", "long"},
		{"float", "double"},
		{"bool", "bint"},
		{"str", "str"},
		{"bytes", "bytes"},
	}
	for _, tt := range tests {
		native, ok := Cython.MapType(tt.annotation)
		require.True(t, ok, "annotation %q", tt.annotation)
		assert.Equal(t, tt.native, native)
	}

	_, ok := Cython.MapType("complex")
	assert.False(t, ok)
}

func TestOptions(t *testing.T) {
	noGil, ok := Cython.Option("no_gil")
	require.True(t, ok)
	assert.Equal(t, "nogil", noGil(nil))

	exceptErr, ok := Cython.Option("except_error")
	require.True(t, ok)
	assert.Equal(t, "except -1", exceptErr([]string{"-1"}))
}

func TestShape(t *testing.T) {
	assert.Equal(t, dialect.StyleCDecl, Cython.Style)
	assert.Equal(t, ".pyx", Cython.FileExt)
	assert.Equal(t, "cdef", Cython.FunctionKeyword)
	assert.Equal(t, "...", Cython.Placeholder)
	assert.Empty(t, Cython.Preamble)
}
