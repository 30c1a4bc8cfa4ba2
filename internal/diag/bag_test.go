package diag

import (
	"testing"

	"ferro/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	d := &Diagnostic{Severity: SevError, Code: SemaTypeMismatch}
	if !b.Add(d) || !b.Add(d) {
		t.Fatal("first two adds should succeed")
	}
	if b.Add(d) {
		t.Fatal("third add should be rejected by the limit")
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestBagErrorCount(t *testing.T) {
	b := NewBag(10)
	b.Add(&Diagnostic{Severity: SevWarning, Code: SemaInfo})
	b.Add(&Diagnostic{Severity: SevError, Code: SemaMemorySafety})
	b.Add(&Diagnostic{Severity: SevError, Code: SemaTypeMismatch})

	if !b.HasErrors() {
		t.Fatal("expected HasErrors")
	}
	if got := b.ErrorCount(); got != 2 {
		t.Fatalf("ErrorCount = %d, want 2", got)
	}
}

func TestBagSortOrdersBySpan(t *testing.T) {
	b := NewBag(10)
	b.Add(&Diagnostic{Code: SemaTypeMismatch, Severity: SevError, Primary: source.Span{Start: 20, End: 21}})
	b.Add(&Diagnostic{Code: SemaMemorySafety, Severity: SevError, Primary: source.Span{Start: 5, End: 6}})
	b.Sort()

	items := b.Items()
	if items[0].Code != SemaMemorySafety || items[1].Code != SemaTypeMismatch {
		t.Fatalf("unexpected order after Sort: %v, %v", items[0].Code, items[1].Code)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	sp := source.Span{Start: 1, End: 2}
	b.Add(&Diagnostic{Code: SemaTypeMismatch, Primary: sp})
	b.Add(&Diagnostic{Code: SemaTypeMismatch, Primary: sp})
	b.Add(&Diagnostic{Code: SemaMemorySafety, Primary: sp})
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("Len after Dedup = %d, want 2", b.Len())
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{SemaMemorySafety, "SEM3011"},
		{IOFileNotRead, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("%d.ID() = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestBagReporter(t *testing.T) {
	b := NewBag(4)
	var r Reporter = BagReporter{Bag: b}
	r.Report(SemaUndefinedVariable, SevError, source.Span{}, "Undefined variable: x", nil)
	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	if b.Items()[0].Message != "Undefined variable: x" {
		t.Fatalf("message = %q", b.Items()[0].Message)
	}
}
