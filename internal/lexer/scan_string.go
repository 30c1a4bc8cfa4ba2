package lexer

import (
	"strings"

	"ferro/internal/diag"
	"ferro/internal/token"
)

// scanString consumes a double-quoted string literal. Token.Text holds
// the unescaped contents without the quotes.
func (lx *Lexer) scanString() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	var b strings.Builder
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			span := lx.cursor.SpanFrom(m)
			lx.errLex(diag.LexUnterminatedString, span, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: span, Text: b.String()}
		}

		ch := lx.cursor.Bump()
		if ch == '"' {
			break
		}
		if ch != '\\' {
			b.WriteByte(ch)
			continue
		}

		esc := lx.cursor.Bump()
		switch esc {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			span := lx.cursor.SpanFrom(m)
			lx.errLex(diag.LexBadEscape, span, "invalid escape sequence '\\"+string(esc)+"'")
			b.WriteByte(esc)
		}
	}

	return token.Token{
		Kind: token.StringLit,
		Span: lx.cursor.SpanFrom(m),
		Text: b.String(),
	}
}
