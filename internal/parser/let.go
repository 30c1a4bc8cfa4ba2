package parser

import (
	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/token"
)

func (p *Parser) parseLetStmt() ast.Stmt {
	start := p.cur.Span
	mutable := false

	if p.peekIs(token.KwMut) {
		mutable = true
		p.advance()
	}

	if !p.expectPeek(token.Ident) {
		return nil
	}
	name := p.cur.Text
	nameSpan := p.cur.Span
	end := p.cur.Span

	var typ ast.Type
	if p.peekIs(token.Colon) {
		p.advance()
		p.advance()
		typ = p.parseType()
		if typ == nil {
			return nil
		}
		end = typ.Span()
	}

	var init ast.Expr
	if p.peekIs(token.Assign) {
		p.advance()
		p.advance()
		init = p.parseExpression(precLowest)
		if init != nil {
			end = init.Span()
		}
	}

	if p.peekIs(token.Semicolon) {
		p.advance()
	}

	return &ast.LetStmt{
		Sp:       start.Cover(end),
		Name:     name,
		NameSpan: nameSpan,
		Mutable:  mutable,
		Type:     typ,
		Init:     init,
	}
}

func (p *Parser) parseConstStmt() ast.Stmt {
	start := p.cur.Span

	if p.peekIs(token.KwMut) {
		p.report(diag.SynMutOnConst, p.peek.Span,
			"Cannot use 'mut' with 'const'. Constants are always immutable.")
		p.advance()
	}

	if !p.expectPeek(token.Ident) {
		return nil
	}
	name := p.cur.Text
	nameSpan := p.cur.Span

	var typ ast.Type
	if p.peekIs(token.Colon) {
		p.advance()
		p.advance()
		typ = p.parseType()
		if typ == nil {
			return nil
		}
	}

	if !p.expectPeek(token.Assign) {
		return nil
	}
	p.advance()
	init := p.parseExpression(precLowest)
	if init == nil {
		return nil
	}

	if p.peekIs(token.Semicolon) {
		p.advance()
	}

	return &ast.ConstStmt{
		Sp:       start.Cover(init.Span()),
		Name:     name,
		NameSpan: nameSpan,
		Type:     typ,
		Init:     init,
	}
}
