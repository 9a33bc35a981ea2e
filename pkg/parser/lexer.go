package parser

import (
	"github.com/pyxgen/pyxgen/pkg/token"
)

// Token is a lexical token with its source position.
type Token struct {
	Type    token.Type
	Literal string
	Pos     token.Position
}

// Lexer tokenizes Python-subset input.
//
// Indentation is significant: the lexer maintains an indent stack and emits
// INDENT/DEDENT tokens when the leading whitespace of a logical line grows
// or shrinks, the way CPython's tokenizer does. Newlines inside brackets are
// suppressed so calls and literals can span lines.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	indents []int   // indentation stack, always starts with 0
	pending []Token // queued INDENT/DEDENT/EOF tokens
	depth   int     // bracket nesting depth
	atLine  bool    // true when positioned at the start of a logical line
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:   input,
		line:    1,
		col:     0,
		indents: []int{0},
		atLine:  true,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() Token {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	if l.atLine && l.depth == 0 {
		if tok, ok := l.handleIndent(); ok {
			return tok
		}
	}

	l.skipSpacesAndComments()

	pos := l.currentPos()

	var tok Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		// Close any open blocks before EOF.
		for len(l.indents) > 1 {
			l.indents = l.indents[:len(l.indents)-1]
			l.pending = append(l.pending, Token{Type: token.DEDENT, Pos: pos})
		}
		l.pending = append(l.pending, Token{Type: token.EOF, Pos: pos})
		return l.nextPending()
	case '\n':
		l.readChar()
		if l.depth > 0 {
			// Newlines inside brackets are ordinary whitespace and must
			// not start a new logical line: the indent stack stays
			// untouched until the bracketed expression closes.
			return l.NextToken()
		}
		l.atLine = true
		return Token{Type: token.NEWLINE, Literal: "\n", Pos: pos}
	case '+':
		tok = l.opOrAugmented(token.PLUS, "+")
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return Token{Type: token.ARROW, Literal: "->", Pos: pos}
		}
		tok = l.opOrAugmented(token.MINUS, "-")
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			tok = l.opOrAugmented(token.DSTAR, "**")
		} else {
			tok = l.opOrAugmented(token.STAR, "*")
		}
	case '/':
		if l.peekChar() == '/' {
			l.readChar()
			tok = l.opOrAugmented(token.DSLASH, "//")
		} else {
			tok = l.opOrAugmented(token.SLASH, "/")
		}
	case '%':
		tok = l.opOrAugmented(token.PERCENT, "%")
	case '|':
		tok = l.opOrAugmented(token.PIPE, "|")
	case '^':
		tok = l.opOrAugmented(token.CARET, "^")
	case '&':
		tok = l.opOrAugmented(token.AMP, "&")
	case '<':
		if l.peekChar() == '<' {
			l.readChar()
			tok = l.opOrAugmented(token.LSHIFT, "<<")
		} else if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(token.LE, "<=")
		} else {
			tok = l.newToken(token.LT, "<")
		}
	case '>':
		if l.peekChar() == '>' {
			l.readChar()
			tok = l.opOrAugmented(token.RSHIFT, ">>")
		} else if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(token.GE, ">=")
		} else {
			tok = l.newToken(token.GT, ">")
		}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(token.EQ, "==")
		} else {
			tok = l.newToken(token.ASSIGN, "=")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(token.NE, "!=")
		} else {
			tok = l.newToken(token.ILLEGAL, "!")
		}
	case ':':
		tok = l.newToken(token.COLON, ":")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case '.':
		tok = l.newToken(token.DOT, ".")
	case '@':
		tok = l.newToken(token.AT, "@")
	case '(':
		l.depth++
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		if l.depth > 0 {
			l.depth--
		}
		tok = l.newToken(token.RPAREN, ")")
	case '[':
		l.depth++
		tok = l.newToken(token.LBRACKET, "[")
	case ']':
		if l.depth > 0 {
			l.depth--
		}
		tok = l.newToken(token.RBRACKET, "]")
	case '\'', '"':
		return l.readString(pos)
	default:
		if isDigit(l.ch) {
			return l.readNumber(pos)
		}
		if isIdentStart(l.ch) {
			return l.readIdent(pos)
		}
		tok = l.newToken(token.ILLEGAL, string(l.ch))
	}

	l.readChar()
	return tok
}

// nextPending pops the first queued token.
func (l *Lexer) nextPending() Token {
	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok
}

// newToken builds a single- or multi-character operator token without
// consuming the final character (NextToken's trailing readChar does that).
func (l *Lexer) newToken(t token.Type, literal string) Token {
	pos := l.currentPos()
	pos.Column -= len(literal) - 1
	pos.Offset -= len(literal) - 1
	return Token{Type: t, Literal: literal, Pos: pos}
}

// opOrAugmented returns either the plain operator or, when followed by '=',
// an AUGASSIGN token whose literal is the operator text.
func (l *Lexer) opOrAugmented(t token.Type, literal string) Token {
	if l.peekChar() == '=' {
		l.readChar()
		tok := l.newToken(token.AUGASSIGN, literal)
		tok.Literal = literal
		return tok
	}
	return l.newToken(t, literal)
}

// handleIndent compares the leading whitespace of the new line against the
// indent stack and queues INDENT/DEDENT tokens. Blank and comment-only
// lines produce no tokens at all, matching CPython's tokenizer.
func (l *Lexer) handleIndent() (Token, bool) {
	width := 0
	for l.ch == ' ' || l.ch == '\t' {
		if l.ch == '\t' {
			width += 4
		} else {
			width++
		}
		l.readChar()
	}

	// Blank or comment-only line: consume it and try again.
	if l.ch == '#' {
		l.skipComment()
	}
	if l.ch == '\n' {
		l.readChar()
		return l.handleIndent()
	}
	if l.ch == 0 {
		l.atLine = false
		return Token{}, false
	}

	l.atLine = false
	pos := l.currentPos()
	current := l.indents[len(l.indents)-1]

	switch {
	case width > current:
		l.indents = append(l.indents, width)
		return Token{Type: token.INDENT, Pos: pos}, true
	case width < current:
		for len(l.indents) > 1 && l.indents[len(l.indents)-1] > width {
			l.indents = l.indents[:len(l.indents)-1]
			l.pending = append(l.pending, Token{Type: token.DEDENT, Pos: pos})
		}
		return l.nextPending(), true
	default:
		return Token{}, false
	}
}

// skipSpacesAndComments consumes horizontal whitespace and comments.
// Newlines are left for NextToken so logical line ends are visible.
func (l *Lexer) skipSpacesAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.readChar()
		case l.ch == '#':
			l.skipComment()
		case l.ch == '\\' && l.peekChar() == '\n':
			// Explicit line continuation.
			l.readChar()
			l.readChar()
		default:
			return
		}
	}
}

func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readString reads a string literal delimited by single or double quotes.
// Escape sequences are kept verbatim; the emitter re-quotes the content.
func (l *Lexer) readString(pos token.Position) Token {
	quote := l.ch
	l.readChar()
	start := l.pos
	for l.ch != quote && l.ch != 0 && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	literal := l.input[start:l.pos]
	if l.ch == quote {
		l.readChar()
		return Token{Type: token.STRING, Literal: literal, Pos: pos}
	}
	return Token{Type: token.ILLEGAL, Literal: literal, Pos: pos}
}

// readNumber reads an integer or floating-point literal, keeping the
// original lexeme.
func (l *Lexer) readNumber(pos token.Position) Token {
	start := l.pos
	for isDigit(l.ch) || l.ch == '.' || l.ch == '_' {
		l.readChar()
	}
	// Exponent part: 1e10, 2.5e-3
	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return Token{Type: token.NUMBER, Literal: l.input[start:l.pos], Pos: pos}
}

// readIdent reads an identifier or keyword.
func (l *Lexer) readIdent(pos token.Position) Token {
	start := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	literal := l.input[start:l.pos]
	return Token{Type: token.LookupIdent(literal), Literal: literal, Pos: pos}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
