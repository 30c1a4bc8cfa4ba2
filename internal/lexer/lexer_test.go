package lexer_test

import (
	"testing"

	"ferro/internal/diag"
	"ferro/internal/lexer"
	"ferro/internal/source"
	"ferro/internal/token"
)

// testReporter collects every diagnostic the lexer emits.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.fe", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Kind)
	}
	return out
}

func TestLexerBasicStatement(t *testing.T) {
	lx, rep := makeTestLexer("let mut x: int = 5;")
	got := kinds(collectAllTokens(lx))
	want := []token.Kind{
		token.KwLet, token.KwMut, token.Ident, token.Colon, token.KwInt,
		token.Assign, token.IntLit, token.Semicolon, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if rep.HasErrors() {
		t.Error("unexpected lexer diagnostics")
	}
}

func TestLexerOperators(t *testing.T) {
	cases := []struct {
		input string
		want  token.Kind
	}{
		{"+", token.Plus},
		{"-", token.Minus},
		{"->", token.Arrow},
		{"*", token.Star},
		{"/", token.Slash},
		{"%", token.Percent},
		{"=", token.Assign},
		{"==", token.EqEq},
		{"!", token.Bang},
		{"!=", token.BangEq},
		{"<", token.Lt},
		{"<=", token.LtEq},
		{">", token.Gt},
		{">=", token.GtEq},
		{"&", token.Amp},
		{"&&", token.AndAnd},
		{"||", token.OrOr},
		{"|>", token.PipeForward},
	}
	for _, tc := range cases {
		lx, _ := makeTestLexer(tc.input)
		tok := lx.Next()
		if tok.Kind != tc.want {
			t.Errorf("lex(%q) = %v, want %v", tc.input, tok.Kind, tc.want)
		}
		if tok.Text != tc.input {
			t.Errorf("lex(%q) text = %q", tc.input, tok.Text)
		}
	}
}

func TestLexerAmpThenMut(t *testing.T) {
	lx, _ := makeTestLexer("&mut x")
	got := kinds(collectAllTokens(lx))
	want := []token.Kind{token.Amp, token.KwMut, token.Ident, token.EOF}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tokens = %v, want %v", got, want)
		}
	}
}

func TestLexerNumbers(t *testing.T) {
	lx, rep := makeTestLexer("42 3.14 7.")
	toks := collectAllTokens(lx)
	if toks[0].Kind != token.IntLit || toks[0].Text != "42" {
		t.Errorf("first = %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.FloatLit || toks[1].Text != "3.14" {
		t.Errorf("second = %v %q", toks[1].Kind, toks[1].Text)
	}
	// "7." lexes as IntLit then Dot; the dot never glues without a digit
	if toks[2].Kind != token.IntLit || toks[3].Kind != token.Dot {
		t.Errorf("trailing dot: %v %v", toks[2].Kind, toks[3].Kind)
	}
	if rep.HasErrors() {
		t.Error("unexpected diagnostics")
	}
}

func TestLexerBadNumber(t *testing.T) {
	lx, rep := makeTestLexer("12abc")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("kind = %v, want Invalid", tok.Kind)
	}
	if !rep.HasErrors() {
		t.Fatal("expected LexBadNumber diagnostic")
	}
	if rep.diagnostics[0].Code != diag.LexBadNumber {
		t.Fatalf("code = %v", rep.diagnostics[0].Code)
	}
}

func TestLexerString(t *testing.T) {
	lx, rep := makeTestLexer(`"hi\nthere"`)
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("kind = %v", tok.Kind)
	}
	if tok.Text != "hi\nthere" {
		t.Fatalf("text = %q", tok.Text)
	}
	if rep.HasErrors() {
		t.Error("unexpected diagnostics")
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	lx, rep := makeTestLexer("\"oops\nnext")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("kind = %v, want Invalid", tok.Kind)
	}
	if !rep.HasErrors() || rep.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatal("expected LexUnterminatedString")
	}
}

func TestLexerLineComment(t *testing.T) {
	lx, _ := makeTestLexer("1 // trailing note\n2")
	got := kinds(collectAllTokens(lx))
	want := []token.Kind{token.IntLit, token.IntLit, token.EOF}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tokens = %v, want %v", got, want)
		}
	}
}

func TestLexerUnknownChar(t *testing.T) {
	lx, rep := makeTestLexer("@")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("kind = %v", tok.Kind)
	}
	if !rep.HasErrors() || rep.diagnostics[0].Code != diag.LexUnknownChar {
		t.Fatal("expected LexUnknownChar")
	}
}

func TestLexerSpans(t *testing.T) {
	lx, _ := makeTestLexer("let x")
	tok := lx.Next()
	if tok.Span.Start != 0 || tok.Span.End != 3 {
		t.Errorf("let span = %v", tok.Span)
	}
	tok = lx.Next()
	if tok.Span.Start != 4 || tok.Span.End != 5 {
		t.Errorf("x span = %v", tok.Span)
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if lx.Peek().Text != "a" {
		t.Fatal("peek mismatch")
	}
	if lx.Next().Text != "a" {
		t.Fatal("next after peek mismatch")
	}
	if lx.Next().Text != "b" {
		t.Fatal("second next mismatch")
	}
}
