package emit

import (
	"testing"

	"github.com/pyxgen/pyxgen/pkg/dialect"
	"github.com/pyxgen/pyxgen/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/pyxgen/pyxgen/pkg/dialects/cython"
	_ "github.com/pyxgen/pyxgen/pkg/dialects/pure"
)

func cython(t *testing.T) *dialect.Dialect {
	t.Helper()
	d, ok := dialect.Get("cython")
	require.True(t, ok, "cython dialect not registered")
	return d
}

func pure(t *testing.T) *dialect.Dialect {
	t.Helper()
	d, ok := dialect.Get("pure")
	require.True(t, ok, "pure dialect not registered")
	return d
}

func convert(t *testing.T, d *dialect.Dialect, src string) string {
	t.Helper()
	return Emit(parser.Parse(src), d)
}

func TestEmit_FullyAnnotatedFunction(t *testing.T) {
	src := "def add(a: int, b: int) -> int:\n    return a + b\n"
	got := convert(t, cython(t), src)

	assert.Equal(t, "cdef long add(long a, long b):\n    return a + b\n", got)
}

func TestEmit_UnannotatedFunctionKeepsDef(t *testing.T) {
	src := "def poll():\n    pass\n"
	got := convert(t, cython(t), src)

	assert.Equal(t, "def poll():\n    ...\n", got)
}

func TestEmit_BusyLoopWithTrailingCall(t *testing.T) {
	src := "def test():\n    for _ in range(100000):\n        pass\n\n\ntest()\n"
	got := convert(t, cython(t), src)

	want := "def test():\n    for _ in range(100000):\n        ...\n\ntest()\n"
	assert.Equal(t, want, got)
}

func TestEmit_UnmappedTypesLeftUntyped(t *testing.T) {
	// A custom class does not map; the declaration falls back to plain
	// def with the annotations dropped, and no error is raised.
	src := "def handle(event: Event) -> None:\n    pass\n"
	got := convert(t, cython(t), src)

	assert.Equal(t, "def handle(event):\n    ...\n", got)
}

func TestEmit_PartialAnnotationsStillNative(t *testing.T) {
	// One mapped annotation is enough for a native declaration; the
	// unmapped parameter stays untyped.
	src := "def mix(a: int, b: Custom):\n    return a\n"
	got := convert(t, cython(t), src)

	assert.Equal(t, "cdef mix(long a, b):\n    return a\n", got)
}

func TestEmit_ReturnOnlyAnnotation(t *testing.T) {
	src := "def count() -> int:\n    return 0\n"
	got := convert(t, cython(t), src)

	assert.Equal(t, "cdef long count():\n    return 0\n", got)
}

func TestEmit_AllMappedTypes(t *testing.T) {
	src := "def f(a: int, b: float, c: bool, d: str, e: bytes) -> float:\n    return b\n"
	got := convert(t, cython(t), src)

	assert.Equal(t, "cdef double f(long a, double b, bint c, str d, bytes e):\n    return b\n", got)
}

func TestEmit_DecoratorsBecomeOptions(t *testing.T) {
	src := "@no_gil()\n@except_error(-1)\ndef f(x: int) -> int:\n    return x\n"
	got := convert(t, cython(t), src)

	assert.Equal(t, "cdef long f(long x) nogil, except -1:\n    return x\n", got)
}

func TestEmit_UnrecognizedDecoratorPassesThrough(t *testing.T) {
	src := "@lru_cache(128)\ndef f(x: int) -> int:\n    return x\n"
	got := convert(t, cython(t), src)

	assert.Equal(t, "@lru_cache(128)\ncdef long f(long x):\n    return x\n", got)
}

func TestEmit_LoopsAndConditionals(t *testing.T) {
	src := "def total(n: int) -> int:\n" +
		"    acc = 0\n" +
		"    for i in range(n):\n" +
		"        acc += i\n" +
		"    while acc > 100:\n" +
		"        acc -= 1\n" +
		"    if acc == 0:\n" +
		"        return 0\n" +
		"    elif acc < 10:\n" +
		"        return 1\n" +
		"    else:\n" +
		"        return acc\n"
	got := convert(t, cython(t), src)

	want := "cdef long total(long n):\n" +
		"    acc = 0\n" +
		"    for i in range(n):\n" +
		"        acc += i\n" +
		"    while acc > 100:\n" +
		"        acc -= 1\n" +
		"    if acc == 0:\n" +
		"        return 0\n" +
		"    elif acc < 10:\n" +
		"        return 1\n" +
		"    else:\n" +
		"        return acc\n"
	assert.Equal(t, want, got)
}

func TestEmit_UnsupportedLinesPassThrough(t *testing.T) {
	src := "x = {'a': 1}\n" +
		"def f(a: int) -> int:\n" +
		"    return a\n" +
		"y = [v for v in x]\n"
	got := convert(t, cython(t), src)

	want := "x = {'a': 1}\n" +
		"cdef long f(long a):\n" +
		"    return a\n" +
		"\n" +
		"y = [v for v in x]\n"
	assert.Equal(t, want, got)
}

func TestEmit_BlankLineBetweenFunctions(t *testing.T) {
	src := "def a() -> int:\n    return 1\ndef b() -> int:\n    return 2\n"
	got := convert(t, cython(t), src)

	want := "cdef long a():\n    return 1\n\ncdef long b():\n    return 2\n"
	assert.Equal(t, want, got)
}

func TestEmit_MultiLineSignatureStaysNative(t *testing.T) {
	// Parameters wrapped across lines inside the parentheses still map,
	// and the statement after the def is emitted on its own.
	src := "def add(a: int,\n        b: int) -> int:\n    return a + b\ncount = add(1,\n            2)\n"
	got := convert(t, cython(t), src)

	want := "cdef long add(long a, long b):\n    return a + b\n\ncount = add(1, 2)\n"
	assert.Equal(t, want, got)
}

func TestEmit_ImportsAndModuleStatements(t *testing.T) {
	src := "import math\nfrom os import path\nx: int = 5\nprint(x)\n"
	got := convert(t, cython(t), src)

	want := "import math\nfrom os import path\nx: int = 5\nprint(x)\n"
	assert.Equal(t, want, got)
}

func TestEmit_StringsRequoted(t *testing.T) {
	src := "name = \"world\"\nprint('hi', name)\n"
	got := convert(t, cython(t), src)

	assert.Equal(t, "name = 'world'\nprint('hi', name)\n", got)
}

func TestEmit_PureDialect(t *testing.T) {
	src := "def add(a: int, b: int) -> int:\n    return a + b\n"
	got := convert(t, pure(t), src)

	want := "import cython\n" +
		"\n" +
		"@cython.cfunc\n" +
		"def add(a: cython.long, b: cython.long) -> cython.long:\n" +
		"    return a + b\n"
	assert.Equal(t, want, got)
}

func TestEmit_PureDialectKeepsUnmappedAnnotations(t *testing.T) {
	// Pure mode output stays valid Python, so unmapped annotations are
	// kept as written and untyped functions get no marker.
	src := "def handle(event: Event):\n    pass\n"
	got := convert(t, pure(t), src)

	want := "import cython\n" +
		"\n" +
		"def handle(event: Event):\n" +
		"    pass\n"
	assert.Equal(t, want, got)
}

func TestEmit_PureDialectDecorators(t *testing.T) {
	src := "@no_gil()\ndef f(x: int) -> int:\n    return x\n"
	got := convert(t, pure(t), src)

	want := "import cython\n" +
		"\n" +
		"@cython.cfunc\n" +
		"@cython.nogil\n" +
		"def f(x: cython.long) -> cython.long:\n" +
		"    return x\n"
	assert.Equal(t, want, got)
}

func TestSignature(t *testing.T) {
	module := parser.Parse("def add(a: int, b: int) -> int:\n    return a + b\n")
	fns := module.Functions()
	require.Len(t, fns, 1)

	assert.Equal(t, "cdef long add(long a, long b):", Signature(fns[0], cython(t)))
	assert.Equal(t, "def add(a: cython.long, b: cython.long) -> cython.long:", Signature(fns[0], pure(t)))
}

func TestOptions(t *testing.T) {
	module := parser.Parse("@no_gil()\n@except_error(-1)\n@unknown\ndef f() -> int:\n    return 1\n")
	fns := module.Functions()
	require.Len(t, fns, 1)

	assert.Equal(t, []string{"nogil", "except -1"}, Options(fns[0], cython(t)))
}

func TestEmit_NestedFunctionIndentKept(t *testing.T) {
	// Statements under an unrecognized block header keep their column.
	src := "class C:\n    def m(self) -> int:\n        return 1\n"
	got := convert(t, cython(t), src)

	want := "class C:\n    cdef long m(self):\n        return 1\n"
	assert.Equal(t, want, got)
}
