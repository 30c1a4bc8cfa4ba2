package lexer

import (
	"ferro/internal/diag"
	"ferro/internal/token"
)

// scanNumber consumes an integer or float literal. A float is a digit
// run containing exactly one '.' followed by at least one digit.
func (lx *Lexer) scanNumber() token.Token {
	m := lx.cursor.Mark()
	kind := token.IntLit

	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump() // '.'
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// A trailing identifier character makes the literal malformed
	// (e.g. 12abc); consume it so the parser is not fed garbage.
	if !lx.cursor.EOF() && isIdentStart(lx.cursor.Peek()) {
		for !lx.cursor.EOF() && isIdentPart(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		span := lx.cursor.SpanFrom(m)
		text := string(lx.file.Content[span.Start:span.End])
		lx.errLex(diag.LexBadNumber, span, "malformed number literal: "+text)
		return token.Token{Kind: token.Invalid, Span: span, Text: text}
	}

	span := lx.cursor.SpanFrom(m)
	return token.Token{
		Kind: kind,
		Span: span,
		Text: string(lx.file.Content[span.Start:span.End]),
	}
}
