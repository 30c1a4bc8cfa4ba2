package source

import "testing"

func TestFileSetAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.fe", []byte("let x = 1;\nx"))
	f := fs.Get(id)

	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if len(f.LineIdx) != 1 {
		t.Fatalf("LineIdx length = %d, want 1", len(f.LineIdx))
	}
	if f.GetLine(1) != "let x = 1;" {
		t.Errorf("GetLine(1) = %q", f.GetLine(1))
	}
	if f.GetLine(2) != "x" {
		t.Errorf("GetLine(2) = %q", f.GetLine(2))
	}
	if f.GetLine(3) != "" {
		t.Errorf("GetLine(3) = %q, want empty", f.GetLine(3))
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.fe", []byte("ab\ncd"))
	start, end := fs.Resolve(Span{File: id, Start: 3, End: 5})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 3 {
		t.Errorf("end = %d:%d, want 2:3", end.Line, end.Col)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed {
		t.Fatal("expected change")
	}
	if string(out) != "a\nb\rc" {
		t.Fatalf("normalizeCRLF = %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain"))
	if changed || string(out) != "plain" {
		t.Fatalf("normalizeCRLF on plain input changed: %q", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(out) != "x" {
		t.Fatalf("removeBOM = %q, had=%v", out, had)
	}
}
