// Package parser turns Python-subset source text into an AST.
//
// # Behavior on unsupported input
//
// The parser never fails on a statement it does not understand. Any logical
// line that does not match a recognized statement form is captured as a
// core.RawStmt holding the original text, which the emitter writes out
// verbatim. Conversion is best effort: the output is only as correct as
// the recognized subset.
//
// # Grammar overview
//
//	module     → statement*
//	statement  → funcdef | for | while | if | simple NEWLINE | RAW
//	funcdef    → decorator* "def" IDENT "(" params ")" ["->" annotation] suite
//	suite      → ":" NEWLINE INDENT statement+ DEDENT
//	simple     → return | pass | break | continue | raise | import | assignment | expr
package parser

import (
	"fmt"
	"strings"

	"github.com/pyxgen/pyxgen/pkg/core"
	"github.com/pyxgen/pyxgen/pkg/token"
)

// Parser parses Python-subset source into a core.Module.
type Parser struct {
	lexer *Lexer
	src   string
	tok   Token // current token
	peek  Token // lookahead token
}

// NewParser creates a new parser for the given source text.
func NewParser(src string) *Parser {
	p := &Parser{
		lexer: NewLexer(src),
		src:   src,
	}
	// Read two tokens to initialize current and peek.
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses the source and returns the module. It does not fail:
// unrecognized statements are preserved as raw nodes.
func Parse(src string) *core.Module {
	p := NewParser(src)
	return &core.Module{Body: p.parseStatements()}
}

// ---------- Token helpers ----------

func (p *Parser) nextToken() {
	p.tok = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) check(t token.Type) bool {
	return p.tok.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.Type) bool {
	if p.tok.Type == t {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token or returns an error naming what was wanted.
func (p *Parser) expect(t token.Type) (Token, error) {
	if p.tok.Type != t {
		return Token{}, fmt.Errorf("line %d: expected %s, found %s", p.tok.Pos.Line, t, p.tok.Type)
	}
	tok := p.tok
	p.nextToken()
	return tok, nil
}

// ---------- Statements ----------

// parseStatements parses statements until DEDENT or EOF, skipping blank
// logical lines. An unexpected INDENT (the body of an unrecognized block
// header) is flattened into the current list; original indentation is kept
// on every node, so the emitted text is unchanged.
func (p *Parser) parseStatements() []core.Stmt {
	var stmts []core.Stmt
	for !p.check(token.EOF) && !p.check(token.DEDENT) {
		if p.match(token.NEWLINE) {
			continue
		}
		if p.match(token.INDENT) {
			stmts = append(stmts, p.parseStatements()...)
			p.match(token.DEDENT)
			continue
		}
		stmts = append(stmts, p.parseStatement())
	}
	return stmts
}

// parseStatement parses one statement, falling back to a raw node when the
// statement does not match any recognized form.
func (p *Parser) parseStatement() core.Stmt {
	start := p.tok.Pos
	stmt, err := p.tryStatement()
	if err != nil {
		return p.rawFrom(start)
	}
	return stmt
}

func (p *Parser) tryStatement() (core.Stmt, error) {
	switch p.tok.Type {
	case token.AT, token.DEF:
		return p.parseFunctionDef()
	case token.FOR:
		return p.parseFor()
	case token.WHILE:
		return p.parseWhile()
	case token.IF:
		return p.parseIf(false)
	case token.RETURN:
		return p.parseReturn()
	case token.PASS:
		pos := p.tok.Pos
		p.nextToken()
		return &core.PassStmt{Position: pos}, p.endOfLine()
	case token.BREAK:
		pos := p.tok.Pos
		p.nextToken()
		return &core.BreakStmt{Position: pos}, p.endOfLine()
	case token.CONTINUE:
		pos := p.tok.Pos
		p.nextToken()
		return &core.ContinueStmt{Position: pos}, p.endOfLine()
	case token.RAISE:
		return p.parseRaise()
	case token.IMPORT:
		return p.parseImport()
	case token.FROM:
		return p.parseImportFrom()
	default:
		return p.parseExprOrAssign()
	}
}

// endOfLine consumes the statement terminator.
func (p *Parser) endOfLine() error {
	if p.check(token.EOF) || p.check(token.DEDENT) {
		return nil
	}
	_, err := p.expect(token.NEWLINE)
	return err
}

// rawFrom discards tokens to the end of the current logical line and
// returns a raw statement holding the original source text, indentation
// excluded (the emitter re-applies it from the position).
func (p *Parser) rawFrom(start token.Position) *core.RawStmt {
	for !p.check(token.NEWLINE) && !p.check(token.EOF) {
		p.nextToken()
	}
	end := len(p.src)
	if p.check(token.NEWLINE) {
		end = p.tok.Pos.Offset
		p.nextToken()
	}
	text := strings.TrimRight(p.src[start.Offset:end], " \t\r\n")
	return &core.RawStmt{Position: start, Text: text}
}

// parseFunctionDef parses decorators and a def statement with its suite.
func (p *Parser) parseFunctionDef() (core.Stmt, error) {
	pos := p.tok.Pos

	var decorators []core.Decorator
	for p.check(token.AT) {
		dec, err := p.parseDecorator()
		if err != nil {
			return nil, err
		}
		decorators = append(decorators, dec)
	}

	if _, err := p.expect(token.DEF); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	returns := ""
	if p.match(token.ARROW) {
		returns = p.parseAnnotation(token.COLON)
	}

	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}

	return &core.FunctionDef{
		Position:   pos,
		Name:       name.Literal,
		Params:     params,
		Returns:    returns,
		Decorators: decorators,
		Body:       body,
	}, nil
}

// parseDecorator parses @name or @name(args) followed by a newline.
func (p *Parser) parseDecorator() (core.Decorator, error) {
	if _, err := p.expect(token.AT); err != nil {
		return core.Decorator{}, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return core.Decorator{}, err
	}
	dec := core.Decorator{Name: name.Literal}
	if p.match(token.LPAREN) {
		for !p.check(token.RPAREN) {
			arg, err := p.parseExpression()
			if err != nil {
				return core.Decorator{}, err
			}
			dec.Args = append(dec.Args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return core.Decorator{}, err
		}
	}
	return dec, p.endOfLine()
}

// parseParams parses the parameter list of a def. Each parameter is
// `name` or `name: annotation`; annotations that are not a plain
// identifier are skipped and the parameter is left untyped.
func (p *Parser) parseParams() ([]core.Param, error) {
	var params []core.Param
	for p.check(token.IDENT) {
		param := core.Param{Name: p.tok.Literal}
		p.nextToken()
		if p.match(token.COLON) {
			param.Annotation = p.parseAnnotation(token.COMMA)
		}
		params = append(params, param)
		if !p.match(token.COMMA) {
			break
		}
	}
	return params, nil
}

// parseAnnotation reads a type annotation and returns its name when it is a
// plain identifier (or None). Anything more structured, like list[int] or a
// dotted path, is consumed and discarded, leaving the parameter or return
// untyped rather than failing the whole def.
func (p *Parser) parseAnnotation(stop token.Type) string {
	simple := p.check(token.IDENT) || p.check(token.NONE)
	name := p.tok.Literal
	if simple {
		p.nextToken()
		if p.check(stop) || p.check(token.RPAREN) {
			return name
		}
	}
	// Skip a structured annotation, balancing brackets.
	depth := 0
	for !p.check(token.EOF) && !p.check(token.NEWLINE) {
		switch p.tok.Type {
		case token.LPAREN, token.LBRACKET:
			depth++
		case token.RBRACKET:
			depth--
		case token.RPAREN:
			if depth == 0 {
				return ""
			}
			depth--
		default:
			if depth == 0 && (p.check(stop) || p.check(token.COLON)) {
				return ""
			}
		}
		p.nextToken()
	}
	return ""
}

// parseSuite parses `: NEWLINE INDENT statements DEDENT`.
func (p *Parser) parseSuite() ([]core.Stmt, error) {
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.NEWLINE); err != nil {
		return nil, err
	}
	for p.match(token.NEWLINE) {
	}
	if _, err := p.expect(token.INDENT); err != nil {
		return nil, err
	}
	body := p.parseStatements()
	p.match(token.DEDENT)
	if len(body) == 0 {
		return nil, fmt.Errorf("line %d: empty block", p.tok.Pos.Line)
	}
	return body, nil
}

func (p *Parser) parseFor() (core.Stmt, error) {
	pos := p.tok.Pos
	p.nextToken()
	target, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.IN); err != nil {
		return nil, err
	}
	iter, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return &core.ForStmt{Position: pos, Target: target.Literal, Iter: iter, Body: body}, nil
}

func (p *Parser) parseWhile() (core.Stmt, error) {
	pos := p.tok.Pos
	p.nextToken()
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return &core.WhileStmt{Position: pos, Test: test, Body: body}, nil
}

// parseIf parses an if statement and any elif/else continuation at the
// same indentation. An elif chain nests inside Else, mirroring how
// Python's own AST stores it.
func (p *Parser) parseIf(asElif bool) (core.Stmt, error) {
	pos := p.tok.Pos
	p.nextToken()
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	stmt := &core.IfStmt{Position: pos, Test: test, Body: body, AsElif: asElif}

	if p.check(token.ELIF) {
		chained, err := p.parseIf(true)
		if err != nil {
			return nil, err
		}
		stmt.Else = []core.Stmt{chained}
	} else if p.check(token.ELSE) {
		p.nextToken()
		stmt.Else, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseReturn() (core.Stmt, error) {
	pos := p.tok.Pos
	p.nextToken()
	stmt := &core.ReturnStmt{Position: pos}
	if !p.check(token.NEWLINE) && !p.check(token.EOF) && !p.check(token.DEDENT) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}
	return stmt, p.endOfLine()
}

func (p *Parser) parseRaise() (core.Stmt, error) {
	pos := p.tok.Pos
	p.nextToken()
	stmt := &core.RaiseStmt{Position: pos}
	if !p.check(token.NEWLINE) && !p.check(token.EOF) && !p.check(token.DEDENT) {
		exc, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Exc = exc
	}
	return stmt, p.endOfLine()
}

func (p *Parser) parseImport() (core.Stmt, error) {
	pos := p.tok.Pos
	p.nextToken()
	var names []string
	for {
		name, err := p.parseDottedName()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		if !p.match(token.COMMA) {
			break
		}
	}
	return &core.ImportStmt{Position: pos, Names: names}, p.endOfLine()
}

func (p *Parser) parseImportFrom() (core.Stmt, error) {
	pos := p.tok.Pos
	p.nextToken()
	level := 0
	for p.match(token.DOT) {
		level++
	}
	module := ""
	if p.check(token.IDENT) {
		var err error
		module, err = p.parseDottedName()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.IMPORT); err != nil {
		return nil, err
	}
	var names []string
	for {
		name, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		names = append(names, name.Literal)
		if !p.match(token.COMMA) {
			break
		}
	}
	return &core.ImportFromStmt{Position: pos, Module: module, Level: level, Names: names}, p.endOfLine()
}

func (p *Parser) parseDottedName() (string, error) {
	name, err := p.expect(token.IDENT)
	if err != nil {
		return "", err
	}
	parts := []string{name.Literal}
	for p.check(token.DOT) && p.peek.Type == token.IDENT {
		p.nextToken()
		parts = append(parts, p.tok.Literal)
		p.nextToken()
	}
	return strings.Join(parts, "."), nil
}

// parseExprOrAssign parses an expression statement or one of the
// assignment forms (plain, annotated, augmented).
func (p *Parser) parseExprOrAssign() (core.Stmt, error) {
	pos := p.tok.Pos

	// Annotated assignment: name : annotation = value
	if p.check(token.IDENT) && p.peek.Type == token.COLON {
		target := p.tok.Literal
		p.nextToken()
		p.nextToken()
		ann, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ASSIGN); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &core.AnnAssignStmt{Position: pos, Target: target, Annotation: ann.Literal, Value: value}, p.endOfLine()
	}

	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	switch p.tok.Type {
	case token.ASSIGN:
		p.nextToken()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &core.AssignStmt{Position: pos, Target: left, Value: value}, p.endOfLine()
	case token.AUGASSIGN:
		op := p.tok.Literal
		p.nextToken()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &core.AugAssignStmt{Position: pos, Target: left, Op: op, Value: value}, p.endOfLine()
	default:
		return &core.ExprStmt{Position: pos, X: left}, p.endOfLine()
	}
}
