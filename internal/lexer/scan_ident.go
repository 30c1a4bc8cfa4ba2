package lexer

import (
	"ferro/internal/token"
)

// scanIdentOrKeyword consumes an identifier and classifies keywords.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentPart(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	span := lx.cursor.SpanFrom(m)
	text := string(lx.file.Content[span.Start:span.End])
	return token.Token{
		Kind: token.LookupKeyword(text),
		Span: span,
		Text: text,
	}
}
