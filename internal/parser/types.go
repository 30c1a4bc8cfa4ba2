package parser

import (
	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/token"
)

// parseType parses a type annotation with cur on its first token and
// leaves cur on its last.
func (p *Parser) parseType() ast.Type {
	switch p.cur.Kind {
	case token.KwInt, token.KwFloat, token.KwString, token.KwBool, token.Ident:
		return &ast.NamedType{Sp: p.cur.Span, Name: p.cur.Text}

	case token.KwFunc:
		return p.parseFuncType()

	default:
		p.report(diag.SynExpectType, p.cur.Span,
			"expected type, got "+p.cur.Kind.String())
		return nil
	}
}

func (p *Parser) parseFuncType() ast.Type {
	start := p.cur.Span

	if !p.expectPeek(token.LParen) {
		return nil
	}

	params := make([]ast.Type, 0, 4)
	if p.peekIs(token.RParen) {
		p.advance()
	} else {
		p.advance()
		t := p.parseType()
		if t == nil {
			return nil
		}
		params = append(params, t)
		for p.peekIs(token.Comma) {
			p.advance()
			p.advance()
			t = p.parseType()
			if t == nil {
				return nil
			}
			params = append(params, t)
		}
		if !p.expectPeek(token.RParen) {
			return nil
		}
	}

	if !p.expectPeek(token.Arrow) {
		return nil
	}
	p.advance()
	ret := p.parseType()
	if ret == nil {
		return nil
	}

	return &ast.FuncType{Sp: start.Cover(ret.Span()), Params: params, Return: ret}
}
