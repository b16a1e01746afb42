// Package parser turns FibLang source text into an ast.Node tree.
//
// The grammar:
//
//	START       ← STATEMENTS
//	STATEMENTS  ← (DEFINITION / EXPRESSION)*
//	DEFINITION  ← 'def' Identifier '(' Identifier ')' EXPRESSION
//	EXPRESSION  ← TERNARY
//	TERNARY     ← CONDITION ('?' EXPRESSION ':' EXPRESSION)?
//	CONDITION   ← INFIX ('<' INFIX)?
//	INFIX       ← CALL (('+' / '-') CALL)*
//	CALL        ← PRIMARY ('(' EXPRESSION ')')?
//	PRIMARY     ← FOR / Identifier / '(' EXPRESSION ')' / Number
//	FOR         ← 'for' Identifier 'from' Number 'to' Number EXPRESSION
//
// A rule whose optional suffix is absent returns its operand directly
// instead of a wrapper node, so the evaluator only ever sees ternary,
// condition, infix and call nodes that carry real work.
package parser

import (
	"fmt"

	"github.com/yhirose/fiblang/pkg/ast"
	"github.com/yhirose/fiblang/pkg/lexer"
)

// ParseError reports a syntax error with a 1-based position.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse tokenizes source and parses it into a program tree.
func Parse(source string) (*ast.Statements, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		if le, ok := err.(*lexer.LexError); ok {
			return nil, &ParseError{Line: le.Line, Col: le.Col, Msg: le.Msg}
		}
		return nil, err
	}
	p := &parser{tokens: tokens}
	program, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if p.peek() != lexer.TokEOF {
		return nil, p.errorf("unexpected %s", p.current().Type)
	}
	return program, nil
}

func (p *parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) peek() lexer.TokenType {
	return p.tokens[p.pos].Type
}

func (p *parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(typ lexer.TokenType) (lexer.Token, error) {
	tok := p.current()
	if tok.Type != typ {
		return tok, p.errorf("expected %s, got %s", typ, tok.Type)
	}
	return p.advance(), nil
}

func (p *parser) errorf(format string, args ...any) error {
	tok := p.current()
	return &ParseError{Line: tok.Line, Col: tok.Col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseStatements() (*ast.Statements, error) {
	program := &ast.Statements{}
	for p.peek() != lexer.TokEOF {
		var stmt ast.Node
		var err error
		if p.peek() == lexer.TokDef {
			stmt, err = p.parseDefinition()
		} else {
			stmt, err = p.parseExpression()
		}
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, stmt)
	}
	return program, nil
}

func (p *parser) parseDefinition() (ast.Node, error) {
	if _, err := p.expect(lexer.TokDef); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.TokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return nil, err
	}
	param, err := p.expect(lexer.TokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokRParen); err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Definition{Name: name.Text, Param: param.Text, Body: body}, nil
}

func (p *parser) parseExpression() (ast.Node, error) {
	return p.parseTernary()
}

func (p *parser) parseTernary() (ast.Node, error) {
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if p.peek() != lexer.TokQuestion {
		return cond, nil
	}
	p.advance()
	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokColon); err != nil {
		return nil, err
	}
	els, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Ternary{Cond: cond, Then: then, Else: els}, nil
}

func (p *parser) parseCondition() (ast.Node, error) {
	left, err := p.parseInfix()
	if err != nil {
		return nil, err
	}
	if p.peek() != lexer.TokLess {
		return left, nil
	}
	p.advance()
	right, err := p.parseInfix()
	if err != nil {
		return nil, err
	}
	return &ast.Condition{Left: left, Right: right}, nil
}

func (p *parser) parseInfix() (ast.Node, error) {
	first, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	var rest []ast.InfixTerm
	for p.peek() == lexer.TokPlus || p.peek() == lexer.TokMinus {
		op := p.advance()
		operand, err := p.parseCall()
		if err != nil {
			return nil, err
		}
		rest = append(rest, ast.InfixTerm{Op: op.Text, Operand: operand})
	}
	if len(rest) == 0 {
		return first, nil
	}
	return &ast.Infix{First: first, Rest: rest}, nil
}

func (p *parser) parseCall() (ast.Node, error) {
	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek() != lexer.TokLParen {
		return primary, nil
	}
	p.advance()
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokRParen); err != nil {
		return nil, err
	}
	return &ast.Call{Callee: primary, Argument: arg}, nil
}

func (p *parser) parsePrimary() (ast.Node, error) {
	switch p.peek() {
	case lexer.TokFor:
		return p.parseFor()
	case lexer.TokIdent:
		tok := p.advance()
		return &ast.Identifier{Name: tok.Text}, nil
	case lexer.TokLParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokRParen); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.TokNumber:
		tok := p.advance()
		return &ast.NumberLiteral{Text: tok.Text}, nil
	default:
		return nil, p.errorf("expected expression, got %s", p.current().Type)
	}
}

func (p *parser) parseFor() (ast.Node, error) {
	if _, err := p.expect(lexer.TokFor); err != nil {
		return nil, err
	}
	ident, err := p.expect(lexer.TokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokFrom); err != nil {
		return nil, err
	}
	from, err := p.expect(lexer.TokNumber)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokTo); err != nil {
		return nil, err
	}
	to, err := p.expect(lexer.TokNumber)
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ForLoop{
		Var:  ident.Text,
		From: &ast.NumberLiteral{Text: from.Text},
		To:   &ast.NumberLiteral{Text: to.Text},
		Body: body,
	}, nil
}
