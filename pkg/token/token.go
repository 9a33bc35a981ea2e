// Package token defines the lexical token types for the supported Python subset.
//
// Python keywords are case-sensitive, so unlike SQL lexers there is no
// case folding anywhere in this package.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int32

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Layout tokens (Python's significant whitespace)
	NEWLINE
	INDENT
	DEDENT

	// Literals
	IDENT  // add, range, MyClass
	NUMBER // 123, 45.67, 1e10
	STRING // 'hello', "hello"

	// Operators
	PLUS     // +
	MINUS    // -
	STAR     // *
	DSTAR    // **
	SLASH    // /
	DSLASH   // //
	PERCENT  // %
	LSHIFT   // <<
	RSHIFT   // >>
	PIPE     // |
	CARET    // ^
	AMP      // &
	EQ       // ==
	NE       // !=
	LT       // <
	GT       // >
	LE       // <=
	GE       // >=
	ASSIGN   // =
	AUGASSIGN // +=, -=, *= ... (operator text kept in the token literal)
	ARROW    // ->
	COLON    // :
	COMMA    // ,
	DOT      // .
	AT       // @
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]

	// Keywords
	DEF
	RETURN
	PASS
	FOR
	WHILE
	IF
	ELIF
	ELSE
	IN
	IS
	AND
	OR
	NOT
	IMPORT
	FROM
	RAISE
	BREAK
	CONTINUE
	TRUE
	FALSE
	NONE
)

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[Type]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	NEWLINE: "NEWLINE",
	INDENT:  "INDENT",
	DEDENT:  "DEDENT",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	DSTAR:     "**",
	SLASH:     "/",
	DSLASH:    "//",
	PERCENT:   "%",
	LSHIFT:    "<<",
	RSHIFT:    ">>",
	PIPE:      "|",
	CARET:     "^",
	AMP:       "&",
	EQ:        "==",
	NE:        "!=",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	ASSIGN:    "=",
	AUGASSIGN: "AUGASSIGN",
	ARROW:     "->",
	COLON:     ":",
	COMMA:     ",",
	DOT:       ".",
	AT:        "@",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",

	DEF:      "def",
	RETURN:   "return",
	PASS:     "pass",
	FOR:      "for",
	WHILE:    "while",
	IF:       "if",
	ELIF:     "elif",
	ELSE:     "else",
	IN:       "in",
	IS:       "is",
	AND:      "and",
	OR:       "or",
	NOT:      "not",
	IMPORT:   "import",
	FROM:     "from",
	RAISE:    "raise",
	BREAK:    "break",
	CONTINUE: "continue",
	TRUE:     "True",
	FALSE:    "False",
	NONE:     "None",
}

// keywords maps keyword strings to their token types.
var keywords = map[string]Type{
	"def":      DEF,
	"return":   RETURN,
	"pass":     PASS,
	"for":      FOR,
	"while":    WHILE,
	"if":       IF,
	"elif":     ELIF,
	"else":     ELSE,
	"in":       IN,
	"is":       IS,
	"and":      AND,
	"or":       OR,
	"not":      NOT,
	"import":   IMPORT,
	"from":     FROM,
	"raise":    RAISE,
	"break":    BREAK,
	"continue": CONTINUE,
	"True":     TRUE,
	"False":    FALSE,
	"None":     NONE,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, IDENT is returned.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t Type) bool {
	return t >= DEF && t <= NONE
}

// IsOperator returns true if the token type is an operator or delimiter.
func IsOperator(t Type) bool {
	return t >= PLUS && t <= RBRACKET
}
