package sema

import (
	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/source"
)

// checkBorrowExpr analyzes `&v` / `&mut v` inside the current scope:
// it validates the operand shape, applies the borrow transition table,
// runs the lifetime check, and yields the reference type.
func (a *Analyzer) checkBorrowExpr(e *ast.PrefixExpr) *TypeInfo {
	mutable := e.Op == ast.UnaryRefMut

	ident, ok := e.Operand.(*ast.Ident)
	if !ok {
		a.report(diag.SemaInvalidOperation, e.Sp,
			"reference operator can only be used on variables")
		return NewBuiltin(BuiltinUnknown)
	}

	sym := a.current.Lookup(ident.Name)
	if sym == nil {
		a.report(diag.SemaUndefinedVariable, ident.Sp, "Undefined variable: "+ident.Name)
		return NewBuiltin(BuiltinUnknown)
	}
	sym.IsUsed = true

	if !a.checkBorrowRules(sym, mutable, e.Sp) {
		return NewBuiltin(BuiltinUnknown)
	}

	// A reference lives in the scope that evaluates it, not the
	// referent's scope; it must not be able to outlive the referent.
	if sym.LifetimeID > a.current.LifetimeID {
		a.report(diag.SemaLifetimeViolation, e.Sp, "borrowed value does not live long enough")
		return NewBuiltin(BuiltinUnknown)
	}

	ref := NewReference(sym.Type, mutable)
	ref.LifetimeID = a.current.LifetimeID
	return ref
}

// checkBorrowRules applies the shared-XOR-mutable transition table to
// the symbol's aggregate state and registers the borrow against the
// current scope's lifetime.
func (a *Analyzer) checkBorrowRules(sym *Symbol, mutable bool, span source.Span) bool {
	if mutable {
		if sym.BorrowState != BorrowNone {
			a.report(diag.SemaMemorySafety, span,
				"cannot borrow '"+sym.Name+"' as mutable because it is already borrowed")
			return false
		}
		if !sym.IsMutable {
			a.report(diag.SemaImmutableAssignment, span,
				"cannot mutably borrow immutable variable '"+sym.Name+"'")
			return false
		}
		sym.BorrowState = BorrowMutable
	} else {
		if sym.BorrowState == BorrowMutable {
			a.report(diag.SemaMemorySafety, span,
				"cannot borrow '"+sym.Name+"' as immutable because it is already borrowed as mutable")
			return false
		}
		sym.BorrowState = BorrowShared
		sym.SharedBorrowCount++
	}

	sym.BorrowLifetimeID = a.current.LifetimeID
	return true
}

// releaseBorrows is the scope-exit sweep: every symbol reachable
// through the still-live scope chain whose borrow was minted in the
// dying scope gets its borrow undone. The sweep walks the whole chain
// because a borrow may target a binding declared in an ancestor.
func (a *Analyzer) releaseBorrows(dying *Scope) {
	for sc := a.current; sc != nil; sc = sc.Parent {
		for _, sym := range sc.symbols {
			if sym.BorrowLifetimeID != dying.LifetimeID {
				continue
			}
			switch sym.BorrowState {
			case BorrowMutable:
				sym.BorrowState = BorrowNone
			case BorrowShared:
				sym.SharedBorrowCount--
				if sym.SharedBorrowCount <= 0 {
					sym.SharedBorrowCount = 0
					sym.BorrowState = BorrowNone
				}
			}
			sym.BorrowLifetimeID = 0
		}
	}
}
