package parser

import (
	"strconv"

	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/source"
	"ferro/internal/token"
)

// parseExpression is the Pratt loop: a prefix parse for the current
// token, then infix extensions while the lookahead binds tighter.
func (p *Parser) parseExpression(prec int) ast.Expr {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}
	return p.parseInfixLoop(left, prec)
}

// parseInfixLoop extends an already-parsed operand while the lookahead
// binds tighter than prec.
func (p *Parser) parseInfixLoop(left ast.Expr, prec int) ast.Expr {
	for !p.peekIs(token.Semicolon) && prec < precedenceOf(p.peek.Kind) {
		switch p.peek.Kind {
		case token.PipeForward:
			pipeSpan := p.peek.Span
			p.advance()
			p.advance()
			right := p.parseExpression(precPipe)
			if right == nil {
				return left
			}
			left = &ast.PipeExpr{
				Sp:    left.Span().Cover(right.Span()).Cover(pipeSpan),
				Left:  left,
				Right: right,
			}
		case token.LParen:
			p.advance()
			left = p.parseCall(left)
		default:
			op, ok := binaryOpOf(p.peek.Kind)
			if !ok {
				return left
			}
			p.advance()
			opPrec := precedenceOf(p.cur.Kind)
			p.advance()
			right := p.parseExpression(opPrec)
			if right == nil {
				return left
			}
			left = &ast.InfixExpr{
				Sp:    left.Span().Cover(right.Span()),
				Op:    op,
				Left:  left,
				Right: right,
			}
		}
	}

	return left
}

// parsePrefix handles literals, identifiers, prefix operators,
// grouping, and the expression keywords.
func (p *Parser) parsePrefix() ast.Expr {
	switch p.cur.Kind {
	case token.Ident:
		return &ast.Ident{Sp: p.cur.Span, Name: p.cur.Text}

	case token.IntLit:
		v, err := strconv.ParseInt(p.cur.Text, 10, 64)
		if err != nil {
			p.report(diag.LexBadNumber, p.cur.Span, "could not parse "+strconv.Quote(p.cur.Text)+" as integer")
			return &ast.BadExpr{Sp: p.cur.Span}
		}
		return &ast.IntLit{Sp: p.cur.Span, Value: v}

	case token.FloatLit:
		v, err := strconv.ParseFloat(p.cur.Text, 64)
		if err != nil {
			p.report(diag.LexBadNumber, p.cur.Span, "could not parse "+strconv.Quote(p.cur.Text)+" as float")
			return &ast.BadExpr{Sp: p.cur.Span}
		}
		return &ast.FloatLit{Sp: p.cur.Span, Value: v}

	case token.StringLit:
		return &ast.StringLit{Sp: p.cur.Span, Value: p.cur.Text}

	case token.KwTrue, token.KwFalse:
		return &ast.BoolLit{Sp: p.cur.Span, Value: p.cur.Kind == token.KwTrue}

	case token.Minus:
		return p.parsePrefixOp(ast.UnaryNeg)
	case token.Bang:
		return p.parsePrefixOp(ast.UnaryNot)
	case token.Star:
		return p.parsePrefixOp(ast.UnaryDeref)
	case token.Amp:
		op := ast.UnaryRef
		if p.peekIs(token.KwMut) {
			op = ast.UnaryRefMut
			p.advance()
		}
		return p.parsePrefixOp(op)

	case token.LParen:
		p.advance()
		x := p.parseExpression(precLowest)
		if !p.expectPeek(token.RParen) {
			return nil
		}
		return x

	case token.LBrace:
		start := p.cur.Span
		stmts, end := p.parseBlockStmts()
		return &ast.BlockExpr{Sp: start.Cover(end), Stmts: stmts}

	case token.KwIf:
		return p.parseIfExpr()

	case token.KwFunc:
		return p.parseFuncLit()

	case token.KwMatch:
		p.report(diag.SynMatchNotSupported, p.cur.Span, "match expressions not yet implemented")
		return &ast.BadExpr{Sp: p.cur.Span}

	default:
		p.report(diag.SynExpectExpression, p.cur.Span,
			"no prefix parse rule for "+p.cur.Kind.String())
		return nil
	}
}

func (p *Parser) parsePrefixOp(op ast.UnaryOp) ast.Expr {
	start := p.cur.Span
	p.advance()
	operand := p.parseExpression(precPrefix)
	if operand == nil {
		return nil
	}
	return &ast.PrefixExpr{Sp: start.Cover(operand.Span()), Op: op, Operand: operand}
}

// parseCall consumes the argument list with cur on '('.
func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	args := make([]ast.Expr, 0, 4)

	if p.peekIs(token.RParen) {
		p.advance()
		return &ast.CallExpr{Sp: callee.Span().Cover(p.cur.Span), Callee: callee, Args: args}
	}

	p.advance()
	if arg := p.parseExpression(precLowest); arg != nil {
		args = append(args, arg)
	}
	for p.peekIs(token.Comma) {
		p.advance()
		p.advance()
		if arg := p.parseExpression(precLowest); arg != nil {
			args = append(args, arg)
		}
	}

	if !p.expectPeek(token.RParen) {
		return &ast.CallExpr{Sp: callee.Span(), Callee: callee, Args: args}
	}
	return &ast.CallExpr{Sp: callee.Span().Cover(p.cur.Span), Callee: callee, Args: args}
}

func (p *Parser) parseIfExpr() ast.Expr {
	start := p.cur.Span

	if !p.expectPeek(token.LParen) {
		return nil
	}
	p.advance()
	cond := p.parseExpression(precLowest)
	if !p.expectPeek(token.RParen) {
		return nil
	}
	if !p.expectPeek(token.LBrace) {
		return nil
	}

	then, end := p.parseBlockStmts()

	var elseStmts []ast.Stmt
	if p.peekIs(token.KwElse) {
		p.advance()
		if !p.expectPeek(token.LBrace) {
			return nil
		}
		var elseEnd source.Span
		elseStmts, elseEnd = p.parseBlockStmts()
		if elseStmts == nil {
			elseStmts = []ast.Stmt{}
		}
		end = elseEnd
	}

	return &ast.IfExpr{Sp: start.Cover(end), Cond: cond, Then: then, Else: elseStmts}
}

func (p *Parser) parseFuncLit() ast.Expr {
	start := p.cur.Span

	if !p.expectPeek(token.LParen) {
		return nil
	}

	params, ok := p.parseFuncParams()
	if !ok {
		return nil
	}

	var ret ast.Type
	if p.peekIs(token.Arrow) {
		p.advance()
		p.advance()
		ret = p.parseType()
		if ret == nil {
			return nil
		}
	}

	if !p.expectPeek(token.LBrace) {
		return nil
	}
	body, end := p.parseBlockStmts()

	return &ast.FuncLit{
		Sp:     start.Cover(end),
		Params: params,
		Return: ret,
		Body:   body,
	}
}

// parseFuncParams consumes `name: type (, name: type)* )` with cur on
// '(' and leaves cur on ')'.
func (p *Parser) parseFuncParams() ([]ast.Param, bool) {
	params := make([]ast.Param, 0, 4)

	if p.peekIs(token.RParen) {
		p.advance()
		return params, true
	}

	parseOne := func() bool {
		if !p.curIs(token.Ident) {
			p.report(diag.SynExpectIdentifier, p.cur.Span, "expected parameter name")
			return false
		}
		name := p.cur.Text
		nameSpan := p.cur.Span
		if !p.expectPeek(token.Colon) {
			return false
		}
		p.advance()
		typ := p.parseType()
		if typ == nil {
			return false
		}
		params = append(params, ast.Param{Sp: nameSpan.Cover(typ.Span()), Name: name, Type: typ})
		return true
	}

	p.advance()
	if !parseOne() {
		return nil, false
	}
	for p.peekIs(token.Comma) {
		p.advance()
		p.advance()
		if !parseOne() {
			return nil, false
		}
	}

	if !p.expectPeek(token.RParen) {
		return nil, false
	}
	return params, true
}
