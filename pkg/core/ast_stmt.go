package core

import "github.com/pyxgen/pyxgen/pkg/token"

// Param is a single function parameter with an optional type annotation.
// Annotation is the raw annotation identifier ("int", "MyClass") or empty
// when the parameter is untyped. Annotations the parser could not reduce
// to a plain name are dropped, leaving the parameter untyped.
type Param struct {
	Name       string
	Annotation string
}

// Decorator is a function decorator such as @no_gil() or @except_error(-1).
type Decorator struct {
	Name string
	Args []Expr
}

// FunctionDef is a def statement with its body.
type FunctionDef struct {
	Position   token.Position
	Name       string
	Params     []Param
	Returns    string // return annotation, empty when absent
	Decorators []Decorator
	Body       []Stmt
}

// Annotated returns true if any parameter or the return carries an annotation.
func (f *FunctionDef) Annotated() bool {
	if f.Returns != "" {
		return true
	}
	for _, p := range f.Params {
		if p.Annotation != "" {
			return true
		}
	}
	return false
}

// ForStmt is a for loop: for <target> in <iter>:
type ForStmt struct {
	Position token.Position
	Target   string
	Iter     Expr
	Body     []Stmt
}

// WhileStmt is a while loop.
type WhileStmt struct {
	Position token.Position
	Test     Expr
	Body     []Stmt
}

// IfStmt is an if (or elif) block with an optional else.
// An elif chain parses as an IfStmt with AsElif set, stored as the sole
// element of the preceding branch's Else.
type IfStmt struct {
	Position token.Position
	Test     Expr
	Body     []Stmt
	Else     []Stmt
	AsElif   bool
}

// ReturnStmt is a return statement. Value is nil for a bare return.
type ReturnStmt struct {
	Position token.Position
	Value    Expr
}

// PassStmt is the no-op placeholder statement. The emitter substitutes
// the target dialect's placeholder keyword for it.
type PassStmt struct {
	Position token.Position
}

// BreakStmt is a break statement.
type BreakStmt struct {
	Position token.Position
}

// ContinueStmt is a continue statement.
type ContinueStmt struct {
	Position token.Position
}

// AssignStmt is a plain assignment: <target> = <value>.
type AssignStmt struct {
	Position token.Position
	Target   Expr
	Value    Expr
}

// AnnAssignStmt is an annotated assignment: <target>: <annotation> = <value>.
type AnnAssignStmt struct {
	Position   token.Position
	Target     string
	Annotation string
	Value      Expr
}

// AugAssignStmt is an augmented assignment: <target> <op>= <value>.
// Op holds the operator text without the trailing '=' ("+", "//", "<<").
type AugAssignStmt struct {
	Position token.Position
	Target   Expr
	Op       string
	Value    Expr
}

// ExprStmt is an expression used as a statement, typically a call.
type ExprStmt struct {
	Position token.Position
	X        Expr
}

// ImportStmt is an import statement: import a, b.c
type ImportStmt struct {
	Position token.Position
	Names    []string
}

// ImportFromStmt is a from-import: from ..mod import a, b
type ImportFromStmt struct {
	Position token.Position
	Module   string // empty for bare relative imports
	Level    int    // number of leading dots
	Names    []string
}

// RaiseStmt is a raise statement. Exc is nil for a bare raise.
type RaiseStmt struct {
	Position token.Position
	Exc      Expr
}

// RawStmt carries source text the parser did not recognize. The text is
// emitted verbatim, indentation included, implementing the best-effort
// pass-through policy for unsupported syntax.
type RawStmt struct {
	Position token.Position
	Text     string
}

func (s *FunctionDef) Pos() token.Position    { return s.Position }
func (s *ForStmt) Pos() token.Position        { return s.Position }
func (s *WhileStmt) Pos() token.Position      { return s.Position }
func (s *IfStmt) Pos() token.Position         { return s.Position }
func (s *ReturnStmt) Pos() token.Position     { return s.Position }
func (s *PassStmt) Pos() token.Position       { return s.Position }
func (s *BreakStmt) Pos() token.Position      { return s.Position }
func (s *ContinueStmt) Pos() token.Position   { return s.Position }
func (s *AssignStmt) Pos() token.Position     { return s.Position }
func (s *AnnAssignStmt) Pos() token.Position  { return s.Position }
func (s *AugAssignStmt) Pos() token.Position  { return s.Position }
func (s *ExprStmt) Pos() token.Position       { return s.Position }
func (s *ImportStmt) Pos() token.Position     { return s.Position }
func (s *ImportFromStmt) Pos() token.Position { return s.Position }
func (s *RaiseStmt) Pos() token.Position      { return s.Position }
func (s *RawStmt) Pos() token.Position        { return s.Position }

func (*FunctionDef) stmtNode()    {}
func (*ForStmt) stmtNode()        {}
func (*WhileStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*ReturnStmt) stmtNode()     {}
func (*PassStmt) stmtNode()       {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}
func (*AssignStmt) stmtNode()     {}
func (*AnnAssignStmt) stmtNode()  {}
func (*AugAssignStmt) stmtNode()  {}
func (*ExprStmt) stmtNode()       {}
func (*ImportStmt) stmtNode()     {}
func (*ImportFromStmt) stmtNode() {}
func (*RaiseStmt) stmtNode()      {}
func (*RawStmt) stmtNode()        {}
