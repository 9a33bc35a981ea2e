package parser

import (
	"fmt"

	"github.com/pyxgen/pyxgen/pkg/core"
	"github.com/pyxgen/pyxgen/pkg/token"
)

// Binding powers, lowest to highest. Python's full grammar has more levels;
// these cover the supported operator set.
const (
	precLowest = iota
	precOr
	precAnd
	precNot
	precCompare
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precAdd
	precMul
	precUnary
	precPower
)

var precedences = map[token.Type]int{
	token.OR:      precOr,
	token.AND:     precAnd,
	token.EQ:      precCompare,
	token.NE:      precCompare,
	token.LT:      precCompare,
	token.GT:      precCompare,
	token.LE:      precCompare,
	token.GE:      precCompare,
	token.IS:      precCompare,
	token.IN:      precCompare,
	token.PIPE:    precBitOr,
	token.CARET:   precBitXor,
	token.AMP:     precBitAnd,
	token.LSHIFT:  precShift,
	token.RSHIFT:  precShift,
	token.PLUS:    precAdd,
	token.MINUS:   precAdd,
	token.STAR:    precMul,
	token.SLASH:   precMul,
	token.DSLASH:  precMul,
	token.PERCENT: precMul,
	token.DSTAR:   precPower,
}

// parseExpression parses a full expression.
func (p *Parser) parseExpression() (core.Expr, error) {
	return p.parseBinary(precLowest)
}

// parseBinary is a precedence-climbing loop over the binary operator table.
// ** is right-associative; everything else is left-associative.
func (p *Parser) parseBinary(minPrec int) (core.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		prec, ok := precedences[p.tok.Type]
		if !ok || prec <= minPrec {
			return left, nil
		}
		op := p.tok.Type
		pos := p.tok.Pos
		p.nextToken()

		rightPrec := prec
		if op == token.DSTAR {
			rightPrec = prec - 1
		}
		right, err := p.parseBinary(rightPrec)
		if err != nil {
			return nil, err
		}
		left = &core.BinaryExpr{Position: pos, Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parseUnary() (core.Expr, error) {
	switch p.tok.Type {
	case token.MINUS, token.PLUS, token.NOT:
		pos := p.tok.Pos
		op := p.tok.Type
		p.nextToken()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &core.UnaryExpr{Position: pos, Op: op, X: x}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any chain of calls,
// attribute accesses and subscripts.
func (p *Parser) parsePostfix() (core.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.tok.Type {
		case token.LPAREN:
			pos := p.tok.Pos
			p.nextToken()
			var args []core.Expr
			for !p.check(token.RPAREN) {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.match(token.COMMA) {
					break
				}
			}
			if _, err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			expr = &core.CallExpr{Position: pos, Func: expr, Args: args}
		case token.DOT:
			p.nextToken()
			attr, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			expr = &core.AttributeExpr{Position: attr.Pos, Value: expr, Attr: attr.Literal}
		case token.LBRACKET:
			pos := p.tok.Pos
			p.nextToken()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			expr = &core.SubscriptExpr{Position: pos, Value: expr, Index: index}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (core.Expr, error) {
	pos := p.tok.Pos
	switch p.tok.Type {
	case token.IDENT:
		name := p.tok.Literal
		p.nextToken()
		return &core.Name{Position: pos, ID: name}, nil
	case token.NUMBER:
		lexeme := p.tok.Literal
		p.nextToken()
		return &core.NumberLit{Position: pos, Lexeme: lexeme}, nil
	case token.STRING:
		value := p.tok.Literal
		p.nextToken()
		return &core.StringLit{Position: pos, Value: value}, nil
	case token.TRUE:
		p.nextToken()
		return &core.BoolLit{Position: pos, Value: true}, nil
	case token.FALSE:
		p.nextToken()
		return &core.BoolLit{Position: pos, Value: false}, nil
	case token.NONE:
		p.nextToken()
		return &core.NoneLit{Position: pos}, nil
	case token.LBRACKET:
		p.nextToken()
		var elts []core.Expr
		for !p.check(token.RBRACKET) {
			elt, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elts = append(elts, elt)
			if !p.match(token.COMMA) {
				break
			}
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
		return &core.ListLit{Position: pos, Elts: elts}, nil
	case token.LPAREN:
		p.nextToken()
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &core.ParenExpr{Position: pos, X: x}, nil
	default:
		return nil, fmt.Errorf("line %d: unexpected %s in expression", pos.Line, p.tok.Type)
	}
}
