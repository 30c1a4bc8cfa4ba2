package parser

import (
	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/lexer"
	"ferro/internal/source"
	"ferro/internal/token"
)

// Options configures a parser run.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser holds the state for parsing a single file. It keeps a
// two-token window (cur, peek) over the lexer stream; every parse
// function leaves cur on the last token of its construct.
type Parser struct {
	lx   *lexer.Lexer
	opts Options

	cur  token.Token
	peek token.Token
}

// ParseFile parses one file into an AST. Diagnostics go through
// opts.Reporter; the returned file is never nil.
func ParseFile(lx *lexer.Lexer, fileID source.FileID, opts Options) *ast.File {
	p := &Parser{lx: lx, opts: opts}
	// Prime the token window.
	p.advance()
	p.advance()

	f := &ast.File{FileID: fileID}
	for !p.curIs(token.EOF) {
		stmt := p.parseStmt()
		if stmt != nil {
			f.Stmts = append(f.Stmts, stmt)
		}
		p.advance()
		if p.opts.Enough() {
			break
		}
	}
	return f
}

// IsError reports whether any syntax diagnostics were produced.
func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lx.Next()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

// expectPeek advances when the next token matches, and reports a
// syntax error otherwise.
func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekIs(k) {
		p.advance()
		return true
	}
	p.report(diag.SynUnexpectedToken, p.peek.Span,
		"expected next token to be "+k.String()+", got "+p.peek.Kind.String()+" instead")
	return false
}

func (p *Parser) report(code diag.Code, span source.Span, msg string) {
	p.opts.CurrentErrors++
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, span, msg, nil)
	}
}
