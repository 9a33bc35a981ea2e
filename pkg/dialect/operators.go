package dialect

import "github.com/pyxgen/pyxgen/pkg/token"

// DefaultOperators maps operator tokens to their rendered text.
// Cython keeps Python's operator set unchanged, so both built-in
// dialects reuse this table.
var DefaultOperators = map[token.Type]string{
	token.PLUS:    "+",
	token.MINUS:   "-",
	token.STAR:    "*",
	token.DSTAR:   "**",
	token.SLASH:   "/",
	token.DSLASH:  "//",
	token.PERCENT: "%",
	token.LSHIFT:  "<<",
	token.RSHIFT:  ">>",
	token.PIPE:    "|",
	token.CARET:   "^",
	token.AMP:     "&",
	token.EQ:      "==",
	token.NE:      "!=",
	token.LT:      "<",
	token.LE:      "<=",
	token.GT:      ">",
	token.GE:      ">=",
	token.IS:      "is",
	token.IN:      "in",
	token.AND:     "and",
	token.OR:      "or",
}
