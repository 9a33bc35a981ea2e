package core

import "github.com/pyxgen/pyxgen/pkg/token"

// Name is an identifier reference.
type Name struct {
	Position token.Position
	ID       string
}

// NumberLit is a numeric literal. The original lexeme is kept so that
// 1e10 and 0.5 round-trip exactly.
type NumberLit struct {
	Position token.Position
	Lexeme   string
}

// StringLit is a string literal. Value holds the unquoted content; the
// emitter re-quotes it with single quotes.
type StringLit struct {
	Position token.Position
	Value    string
}

// BoolLit is True or False.
type BoolLit struct {
	Position token.Position
	Value    bool
}

// NoneLit is the None constant.
type NoneLit struct {
	Position token.Position
}

// CallExpr is a function or method call.
type CallExpr struct {
	Position token.Position
	Func     Expr // Name or AttributeExpr
	Args     []Expr
}

// AttributeExpr is attribute access: <value>.<attr>
type AttributeExpr struct {
	Position token.Position
	Value    Expr
	Attr     string
}

// BinaryExpr is a binary operation. Comparison, arithmetic, bitwise and
// boolean operators all use this node; Op distinguishes them and the
// dialect's operator table supplies the rendered spelling.
type BinaryExpr struct {
	Position token.Position
	Left     Expr
	Op       token.Type
	Right    Expr
}

// UnaryExpr is a prefix operation: -x, not x.
type UnaryExpr struct {
	Position token.Position
	Op       token.Type
	X        Expr
}

// ListLit is a list literal.
type ListLit struct {
	Position token.Position
	Elts     []Expr
}

// SubscriptExpr is an index access: <value>[<index>]
type SubscriptExpr struct {
	Position token.Position
	Value    Expr
	Index    Expr
}

// ParenExpr is a parenthesized expression, kept so the emitter preserves
// grouping the author wrote.
type ParenExpr struct {
	Position token.Position
	X        Expr
}

func (e *Name) Pos() token.Position          { return e.Position }
func (e *NumberLit) Pos() token.Position     { return e.Position }
func (e *StringLit) Pos() token.Position     { return e.Position }
func (e *BoolLit) Pos() token.Position       { return e.Position }
func (e *NoneLit) Pos() token.Position       { return e.Position }
func (e *CallExpr) Pos() token.Position      { return e.Position }
func (e *AttributeExpr) Pos() token.Position { return e.Position }
func (e *BinaryExpr) Pos() token.Position    { return e.Position }
func (e *UnaryExpr) Pos() token.Position     { return e.Position }
func (e *ListLit) Pos() token.Position       { return e.Position }
func (e *SubscriptExpr) Pos() token.Position { return e.Position }
func (e *ParenExpr) Pos() token.Position     { return e.Position }

func (*Name) exprNode()          {}
func (*NumberLit) exprNode()     {}
func (*StringLit) exprNode()     {}
func (*BoolLit) exprNode()       {}
func (*NoneLit) exprNode()       {}
func (*CallExpr) exprNode()      {}
func (*AttributeExpr) exprNode() {}
func (*BinaryExpr) exprNode()    {}
func (*UnaryExpr) exprNode()     {}
func (*ListLit) exprNode()       {}
func (*SubscriptExpr) exprNode() {}
func (*ParenExpr) exprNode()     {}
