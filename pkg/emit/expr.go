package emit

import (
	"strings"

	"github.com/pyxgen/pyxgen/pkg/core"
	"github.com/pyxgen/pyxgen/pkg/token"
)

// expr renders an expression using the dialect's operator table.
func (e *Emitter) expr(x core.Expr) string {
	switch x := x.(type) {
	case *core.Name:
		return x.ID
	case *core.NumberLit:
		return x.Lexeme
	case *core.StringLit:
		// Strings are normalized to single quotes on output. Known
		// limitation: a double-quoted string containing a bare apostrophe
		// ("don't") comes out unescaped. Escaping here is not safe because
		// the lexer keeps escape sequences verbatim, so a source 'don\'t'
		// would end up double-escaped.
		return "'" + x.Value + "'"
	case *core.BoolLit:
		if x.Value {
			return "True"
		}
		return "False"
	case *core.NoneLit:
		return "None"
	case *core.CallExpr:
		return e.expr(x.Func) + "(" + strings.Join(e.exprs(x.Args), ", ") + ")"
	case *core.AttributeExpr:
		return e.expr(x.Value) + "." + x.Attr
	case *core.BinaryExpr:
		return e.expr(x.Left) + " " + e.operator(x.Op) + " " + e.expr(x.Right)
	case *core.UnaryExpr:
		if x.Op == token.NOT {
			return "not " + e.expr(x.X)
		}
		return e.operator(x.Op) + e.expr(x.X)
	case *core.ListLit:
		return "[" + strings.Join(e.exprs(x.Elts), ", ") + "]"
	case *core.SubscriptExpr:
		return e.expr(x.Value) + "[" + e.expr(x.Index) + "]"
	case *core.ParenExpr:
		return "(" + e.expr(x.X) + ")"
	default:
		return ""
	}
}

func (e *Emitter) operator(t token.Type) string {
	if op, ok := e.dialect.Operator(t); ok {
		return op
	}
	return t.String()
}
