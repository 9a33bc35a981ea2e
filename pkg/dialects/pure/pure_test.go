package pure

import (
	"testing"

	"github.com/pyxgen/pyxgen/pkg/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredOnImport(t *testing.T) {
	d, ok := dialect.Get("pure")
	require.True(t, ok)
	assert.Same(t, Pure, d)
}

func TestTypeMapping(t *testing.T) {
	native, ok := Pure.MapType("int")
	require.True(t, ok)
	assert.Equal(t, "cython.long", native)

	native, ok = Pure.MapType("str")
	require.True(t, ok)
	assert.Equal(t, "str", native)
}

func TestOptions(t *testing.T) {
	exceptErr, ok := Pure.Option("except_error")
	require.True(t, ok)
	assert.Equal(t, "@cython.exceptval(-1)", exceptErr([]string{"-1"}))
}

func TestShape(t *testing.T) {
	assert.Equal(t, dialect.StyleAnnotated, Pure.Style)
	assert.Equal(t, ".py", Pure.FileExt)
	assert.Equal(t, "@cython.cfunc", Pure.Marker)
	assert.Equal(t, "pass", Pure.Placeholder)
	assert.Equal(t, []string{"import cython"}, Pure.Preamble)
}
