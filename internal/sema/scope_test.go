package sema

import "testing"

func TestScopeLookupWalksParents(t *testing.T) {
	root := newScope(0, 0, nil)
	root.insert(&Symbol{Name: "x", Type: NewBuiltin(BuiltinInt)})

	child := newScope(1, 1, root)
	if child.Lookup("x") == nil {
		t.Fatal("child must see ancestor bindings")
	}
	if child.LookupCurrent("x") != nil {
		t.Fatal("LookupCurrent must not see ancestor bindings")
	}
}

func TestScopeShadowingInnermostWins(t *testing.T) {
	root := newScope(0, 0, nil)
	root.insert(&Symbol{Name: "x", Type: NewBuiltin(BuiltinInt)})

	child := newScope(1, 1, root)
	child.insert(&Symbol{Name: "x", Type: NewBuiltin(BuiltinBool)})

	sym := child.Lookup("x")
	if sym == nil || !sym.Type.IsBool() {
		t.Fatal("innermost binding must win")
	}
	// The outer binding is untouched.
	if !root.Lookup("x").Type.IsNumeric() {
		t.Fatal("outer binding clobbered")
	}
}

func TestDeclareRejectsDuplicateInSameScope(t *testing.T) {
	a, rep := newTestAnalyzer()
	if !a.declare(testSymbol("x", false)) {
		t.Fatal("first declaration must succeed")
	}
	if a.declare(testSymbol("x", false)) {
		t.Fatal("duplicate declaration must fail")
	}
	if len(rep.codes) != 1 {
		t.Fatalf("codes = %v", rep.codes)
	}
}

func TestDeclareStampsScopeAndLifetime(t *testing.T) {
	a, _ := newTestAnalyzer()
	a.pushScope()
	sym := testSymbol("y", true)
	a.declare(sym)
	if sym.Scope != a.current {
		t.Fatal("symbol scope not stamped")
	}
	if sym.LifetimeID != a.current.LifetimeID {
		t.Fatalf("symbol lifetime = %d, want %d", sym.LifetimeID, a.current.LifetimeID)
	}
}
