// Package core defines the AST node types shared by the parser, the
// dialect definitions, and the emitter.
//
// The node set deliberately covers only the supported Python subset.
// Anything the parser does not recognize is carried through as a RawStmt
// and emitted verbatim, so the tree can always represent a whole file.
package core

import "github.com/pyxgen/pyxgen/pkg/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the node's first token in the source.
	// Column-1 is the statement's original indentation in spaces, which
	// the emitter preserves.
	Pos() token.Position
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Module is the root node: an ordered sequence of top-level statements.
// It is immutable after parsing and holds no reference to the source text
// beyond what RawStmt nodes captured.
type Module struct {
	Body []Stmt
}

// Functions returns all function definitions in the module body, in order.
// Nested definitions are not descended into; the conversion treats each
// top-level def as a unit, the way the original tool did.
func (m *Module) Functions() []*FunctionDef {
	var fns []*FunctionDef
	for _, s := range m.Body {
		if fn, ok := s.(*FunctionDef); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}
