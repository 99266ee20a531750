package calc

import (
	"fmt"
	"strconv"

	"github.com/agbru/fraccalc/internal/fraction"
)

// node is an expression that evaluates to a Fraction.
type node interface {
	eval(s *Session) (fraction.Fraction, error)
}

// statement is a parsed line.
type statement interface {
	exec(s *Session) (Result, error)
}

type literal struct {
	value fraction.Fraction
}

// decimal keeps the parsed float so that binary operators can route it
// through the scalar overloads instead of converting it twice.
type decimal struct {
	value float64
}

type variable struct {
	name string
	pos  int
}

type negation struct {
	operand node
}

type binary struct {
	op          fraction.Op
	left, right node
}

type exprStmt struct {
	expr node
}

type compareStmt struct {
	rel         fraction.Rel
	left, right node
}

type assignStmt struct {
	name  string
	value node
}

type stepStmt struct {
	name      string
	pos       int
	increment bool
	prefix    bool
}

var relations = map[tokenKind]fraction.Rel{
	tokEq: fraction.RelEq,
	tokNe: fraction.RelNe,
	tokLt: fraction.RelLt,
	tokGt: fraction.RelGt,
	tokLe: fraction.RelLe,
	tokGe: fraction.RelGe,
}

type parser struct {
	tokens []token
	pos    int
}

// parse turns one line into a statement.
func parse(line string) (statement, error) {
	tokens, err := lex(line)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	if p.peek().kind == tokEOF {
		return nil, &SyntaxError{Pos: 0, Msg: "empty statement"}
	}
	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %q", tok.text)}
	}
	return stmt, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(offset int) token {
	if i := p.pos + offset; i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) statement() (statement, error) {
	first, second := p.peek(), p.peekAt(1)
	switch {
	case (first.kind == tokInc || first.kind == tokDec) && second.kind == tokIdent:
		p.pos += 2
		return stepStmt{name: second.text, pos: second.pos, increment: first.kind == tokInc, prefix: true}, nil
	case first.kind == tokIdent && (second.kind == tokInc || second.kind == tokDec):
		p.pos += 2
		return stepStmt{name: first.text, pos: first.pos, increment: second.kind == tokInc}, nil
	case first.kind == tokIdent && second.kind == tokAssign:
		if first.text == ansName {
			return nil, &SyntaxError{Pos: first.pos, Msg: "cannot assign to " + ansName}
		}
		p.pos += 2
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		return assignStmt{name: first.text, value: value}, nil
	}

	left, err := p.expr()
	if err != nil {
		return nil, err
	}
	rel, ok := relations[p.peek().kind]
	if !ok {
		return exprStmt{expr: left}, nil
	}
	p.next()
	right, err := p.expr()
	if err != nil {
		return nil, err
	}
	return compareStmt{rel: rel, left: left, right: right}, nil
}

func (p *parser) expr() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		var op fraction.Op
		switch p.peek().kind {
		case tokPlus:
			op = fraction.OpAdd
		case tokMinus:
			op = fraction.OpSub
		default:
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, left: left, right: right}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		var op fraction.Op
		switch p.peek().kind {
		case tokStar:
			op = fraction.OpMul
		case tokSlash:
			op = fraction.OpDiv
		default:
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, left: left, right: right}
	}
}

func (p *parser) unary() (node, error) {
	if p.peek().kind == tokMinus {
		minus := p.next()
		if lit := p.peek(); lit.kind == tokInt {
			p.next()
			return intLiteral("-"+lit.text, minus.pos)
		}
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return negation{operand: operand}, nil
	}
	return p.primary()
}

// intLiteral parses a possibly signed integer literal. The sign is part of
// the text so that math.MinInt32 can be written directly.
func intLiteral(text string, pos int) (node, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("literal %s at column %d: %w", text, pos+1, fraction.ErrOverflow)
	}
	return literal{value: fraction.FromInt(int32(n))}, nil
}

func (p *parser) primary() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokInt:
		return intLiteral(tok.text, tok.pos)
	case tokDecimal:
		f, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("invalid number %q", tok.text)}
		}
		return decimal{value: f}, nil
	case tokIdent:
		return variable{name: tok.text, pos: tok.pos}, nil
	case tokLParen:
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, &SyntaxError{Pos: closing.pos, Msg: "missing ')'"}
		}
		return inner, nil
	case tokEOF:
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unexpected end of statement"}
	}
	return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %q", tok.text)}
}
