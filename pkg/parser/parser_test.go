package parser

import (
	"testing"

	"github.com/pyxgen/pyxgen/pkg/core"
	"github.com/pyxgen/pyxgen/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AnnotatedFunction(t *testing.T) {
	src := "def add(a: int, b: int) -> int:\n    return a + b\n"
	module := Parse(src)

	require.Len(t, module.Body, 1)
	fn, ok := module.Body[0].(*core.FunctionDef)
	require.True(t, ok, "expected FunctionDef, got %T", module.Body[0])

	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "int", fn.Returns)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, core.Param{Name: "a", Annotation: "int"}, fn.Params[0])
	assert.Equal(t, core.Param{Name: "b", Annotation: "int"}, fn.Params[1])
	assert.True(t, fn.Annotated())

	require.Len(t, fn.Body, 1)
	ret, ok := fn.Body[0].(*core.ReturnStmt)
	require.True(t, ok)
	bin, ok := ret.Value.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, bin.Op)
}

func TestParse_UnannotatedFunction(t *testing.T) {
	src := "def poll():\n    pass\n"
	module := Parse(src)

	require.Len(t, module.Body, 1)
	fn, ok := module.Body[0].(*core.FunctionDef)
	require.True(t, ok)

	assert.Equal(t, "poll", fn.Name)
	assert.Empty(t, fn.Params)
	assert.Empty(t, fn.Returns)
	assert.False(t, fn.Annotated())

	require.Len(t, fn.Body, 1)
	_, ok = fn.Body[0].(*core.PassStmt)
	assert.True(t, ok, "expected PassStmt, got %T", fn.Body[0])
}

func TestParse_StructuredAnnotationDropped(t *testing.T) {
	// list[int] cannot reduce to a plain name; the parameter stays
	// untyped instead of failing the def.
	src := "def f(xs: list[int]) -> int:\n    return 0\n"
	module := Parse(src)

	fn, ok := module.Body[0].(*core.FunctionDef)
	require.True(t, ok)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "xs", fn.Params[0].Name)
	assert.Empty(t, fn.Params[0].Annotation)
	assert.Equal(t, "int", fn.Returns)
}

func TestParse_NoneReturnAnnotation(t *testing.T) {
	src := "def handle(event: Event) -> None:\n    pass\n"
	module := Parse(src)

	fn, ok := module.Body[0].(*core.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "None", fn.Returns)
	assert.Equal(t, "Event", fn.Params[0].Annotation)
}

func TestParse_Decorators(t *testing.T) {
	src := "@no_gil()\n@except_error(-1)\ndef f(x: int) -> int:\n    return x\n"
	module := Parse(src)

	fn, ok := module.Body[0].(*core.FunctionDef)
	require.True(t, ok)
	require.Len(t, fn.Decorators, 2)
	assert.Equal(t, "no_gil", fn.Decorators[0].Name)
	assert.Empty(t, fn.Decorators[0].Args)
	assert.Equal(t, "except_error", fn.Decorators[1].Name)
	require.Len(t, fn.Decorators[1].Args, 1)
}

func TestParse_UnsupportedStatementBecomesRaw(t *testing.T) {
	src := "x = {'a': 1}\n"
	module := Parse(src)

	require.Len(t, module.Body, 1)
	raw, ok := module.Body[0].(*core.RawStmt)
	require.True(t, ok, "expected RawStmt, got %T", module.Body[0])
	assert.Equal(t, "x = {'a': 1}", raw.Text)
}

func TestParse_UnsupportedBlockFlattened(t *testing.T) {
	// A class header is not recognized; its body statements are kept
	// at their own indentation in the flat statement list.
	src := "class Greeter:\n    def hello(self):\n        pass\n"
	module := Parse(src)

	require.Len(t, module.Body, 2)
	raw, ok := module.Body[0].(*core.RawStmt)
	require.True(t, ok)
	assert.Equal(t, "class Greeter:", raw.Text)

	fn, ok := module.Body[1].(*core.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "hello", fn.Name)
	assert.Equal(t, 5, fn.Pos().Column, "original indentation preserved")
}

func TestParse_BracketContinuation(t *testing.T) {
	// A call spanning lines must still end its statement at the closing
	// bracket; the next line parses independently.
	src := "x = f(1,\n      2)\ny = 3\n"
	module := Parse(src)

	require.Len(t, module.Body, 2)

	assign, ok := module.Body[0].(*core.AssignStmt)
	require.True(t, ok, "expected AssignStmt, got %T", module.Body[0])
	call, ok := assign.Value.(*core.CallExpr)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)

	second, ok := module.Body[1].(*core.AssignStmt)
	require.True(t, ok, "expected AssignStmt, got %T", module.Body[1])
	name, ok := second.Target.(*core.Name)
	require.True(t, ok)
	assert.Equal(t, "y", name.ID)
}

func TestParse_MultiLineSignature(t *testing.T) {
	src := "def add(a: int,\n        b: int) -> int:\n    return a + b\n"
	module := Parse(src)

	require.Len(t, module.Body, 1)
	fn, ok := module.Body[0].(*core.FunctionDef)
	require.True(t, ok, "expected FunctionDef, got %T", module.Body[0])

	assert.Equal(t, "int", fn.Returns)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, core.Param{Name: "a", Annotation: "int"}, fn.Params[0])
	assert.Equal(t, core.Param{Name: "b", Annotation: "int"}, fn.Params[1])
	require.Len(t, fn.Body, 1)
}

func TestParse_ElifChain(t *testing.T) {
	src := "if x > 0:\n    return 1\nelif x < 0:\n    return -1\nelse:\n    return 0\n"
	module := Parse(src)

	require.Len(t, module.Body, 1)
	stmt, ok := module.Body[0].(*core.IfStmt)
	require.True(t, ok)
	assert.False(t, stmt.AsElif)

	require.Len(t, stmt.Else, 1)
	chained, ok := stmt.Else[0].(*core.IfStmt)
	require.True(t, ok, "elif nests inside Else")
	assert.True(t, chained.AsElif)
	assert.Len(t, chained.Else, 1)
}

func TestParse_ForLoop(t *testing.T) {
	src := "for i in range(10):\n    total += i\n"
	module := Parse(src)

	loop, ok := module.Body[0].(*core.ForStmt)
	require.True(t, ok)
	assert.Equal(t, "i", loop.Target)

	call, ok := loop.Iter.(*core.CallExpr)
	require.True(t, ok)
	name, ok := call.Func.(*core.Name)
	require.True(t, ok)
	assert.Equal(t, "range", name.ID)

	aug, ok := loop.Body[0].(*core.AugAssignStmt)
	require.True(t, ok)
	assert.Equal(t, "+", aug.Op)
}

func TestParse_WhileLoop(t *testing.T) {
	src := "while n > 1:\n    n = n - 1\n"
	module := Parse(src)

	loop, ok := module.Body[0].(*core.WhileStmt)
	require.True(t, ok)
	_, ok = loop.Test.(*core.BinaryExpr)
	assert.True(t, ok)
	require.Len(t, loop.Body, 1)
}

func TestParse_Imports(t *testing.T) {
	src := "import os, sys.path\nfrom ..pkg import a, b\nfrom . import c\n"
	module := Parse(src)

	require.Len(t, module.Body, 3)

	imp, ok := module.Body[0].(*core.ImportStmt)
	require.True(t, ok)
	assert.Equal(t, []string{"os", "sys.path"}, imp.Names)

	from, ok := module.Body[1].(*core.ImportFromStmt)
	require.True(t, ok)
	assert.Equal(t, "pkg", from.Module)
	assert.Equal(t, 2, from.Level)
	assert.Equal(t, []string{"a", "b"}, from.Names)

	bare, ok := module.Body[2].(*core.ImportFromStmt)
	require.True(t, ok)
	assert.Empty(t, bare.Module)
	assert.Equal(t, 1, bare.Level)
	assert.Equal(t, []string{"c"}, bare.Names)
}

func TestParse_Assignments(t *testing.T) {
	src := "x = 1\ny: int = 2\nz //= 3\n"
	module := Parse(src)

	require.Len(t, module.Body, 3)

	_, ok := module.Body[0].(*core.AssignStmt)
	assert.True(t, ok)

	ann, ok := module.Body[1].(*core.AnnAssignStmt)
	require.True(t, ok)
	assert.Equal(t, "y", ann.Target)
	assert.Equal(t, "int", ann.Annotation)

	aug, ok := module.Body[2].(*core.AugAssignStmt)
	require.True(t, ok)
	assert.Equal(t, "//", aug.Op)
}

func TestParse_RaiseAndBareReturn(t *testing.T) {
	src := "def f():\n    if x:\n        raise ValueError('bad')\n    return\n"
	module := Parse(src)

	fn, ok := module.Body[0].(*core.FunctionDef)
	require.True(t, ok)
	require.Len(t, fn.Body, 2)

	cond, ok := fn.Body[0].(*core.IfStmt)
	require.True(t, ok)
	raiseStmt, ok := cond.Body[0].(*core.RaiseStmt)
	require.True(t, ok)
	assert.NotNil(t, raiseStmt.Exc)

	ret, ok := fn.Body[1].(*core.ReturnStmt)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	src := "x = 1 + 2 * 3\n"
	module := Parse(src)

	assign, ok := module.Body[0].(*core.AssignStmt)
	require.True(t, ok)
	top, ok := assign.Value.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, top.Op, "multiplication binds tighter")

	right, ok := top.Right.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.STAR, right.Op)
}

func TestParse_PowerRightAssociative(t *testing.T) {
	src := "x = 2 ** 3 ** 2\n"
	module := Parse(src)

	assign := module.Body[0].(*core.AssignStmt)
	top, ok := assign.Value.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.DSTAR, top.Op)

	right, ok := top.Right.(*core.BinaryExpr)
	require.True(t, ok, "2 ** (3 ** 2)")
	assert.Equal(t, token.DSTAR, right.Op)
}

func TestParse_PostfixChain(t *testing.T) {
	src := "x = obj.items[0].name\n"
	module := Parse(src)

	assign := module.Body[0].(*core.AssignStmt)
	attr, ok := assign.Value.(*core.AttributeExpr)
	require.True(t, ok)
	assert.Equal(t, "name", attr.Attr)

	sub, ok := attr.Value.(*core.SubscriptExpr)
	require.True(t, ok)
	inner, ok := sub.Value.(*core.AttributeExpr)
	require.True(t, ok)
	assert.Equal(t, "items", inner.Attr)
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, Parse("").Body)
	assert.Empty(t, Parse("\n\n# only comments\n").Body)
}

func TestParse_FunctionsHelper(t *testing.T) {
	src := "x = 1\ndef a():\n    pass\ndef b():\n    pass\n"
	module := Parse(src)

	fns := module.Functions()
	require.Len(t, fns, 2)
	assert.Equal(t, "a", fns[0].Name)
	assert.Equal(t, "b", fns[1].Name)
}
