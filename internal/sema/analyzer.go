// Package sema implements the semantic analysis stage: lexically
// scoped name resolution, bidirectional type checking over the
// expression-oriented AST, and a single-pass borrow/lifetime checker
// enforcing shared-XOR-mutable aliasing per binding.
//
// The analyzer walks the AST exactly once and never rewrites it.
// Failures produce a diagnostic and the unknown type sentinel; callers
// treat unknown transparently so a single run surfaces as many
// problems as possible.
package sema

import (
	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/source"
)

// Analyzer holds the state of one analysis run over one file.
type Analyzer struct {
	reporter diag.Reporter

	global  *Scope
	current *Scope

	// nextLifetimeID mints dense scope lifetime ids; the global scope
	// owns id 0.
	nextLifetimeID uint32

	// expectedReturn is the declared return type of the function body
	// under analysis, or nil at the top level.
	expectedReturn *TypeInfo

	errCount int
}

// New creates an analyzer reporting through r.
func New(r diag.Reporter) *Analyzer {
	a := &Analyzer{
		reporter:       r,
		nextLifetimeID: 1,
	}
	a.global = newScope(0, 0, nil)
	a.current = a.global
	return a
}

// Analyze walks the file and reports every semantic problem found.
// It returns true when the program is accepted (zero errors).
func (a *Analyzer) Analyze(f *ast.File) bool {
	for _, stmt := range f.Stmts {
		a.analyzeStmt(stmt)
	}
	// The program's end is the end of the global scope: every binding
	// dies, and any borrow still live dies with it.
	for _, sym := range a.global.symbols {
		sym.BorrowState = BorrowNone
		sym.SharedBorrowCount = 0
		sym.BorrowLifetimeID = 0
	}
	return a.errCount == 0
}

// ErrorCount returns the number of error diagnostics produced so far.
func (a *Analyzer) ErrorCount() int {
	return a.errCount
}

// GlobalScope exposes the root scope, mainly for tests asserting
// post-analysis invariants.
func (a *Analyzer) GlobalScope() *Scope {
	return a.global
}

func (a *Analyzer) pushScope() {
	a.current = newScope(a.current.Level+1, a.nextLifetimeID, a.current)
	a.nextLifetimeID++
}

func (a *Analyzer) popScope() {
	if a.current.Parent == nil {
		return
	}
	// Borrows die with the scope that minted them, before the scope's
	// own symbols are discarded.
	a.releaseBorrows(a.current)
	a.current = a.current.Parent
}

// declare inserts a symbol into the current scope, rejecting a name
// already bound there. Shadowing an outer scope is always allowed.
func (a *Analyzer) declare(sym *Symbol) bool {
	if existing := a.current.LookupCurrent(sym.Name); existing != nil {
		a.report(diag.SemaRedefinition, sym.Decl, "Symbol already defined in current scope")
		return false
	}
	sym.Scope = a.current
	sym.LifetimeID = a.current.LifetimeID
	a.current.insert(sym)
	return true
}

func (a *Analyzer) report(code diag.Code, span source.Span, msg string) {
	a.errCount++
	if a.reporter != nil {
		a.reporter.Report(code, diag.SevError, span, msg, nil)
	}
}

// resolveType lowers a parsed annotation into a TypeInfo.
func (a *Analyzer) resolveType(t ast.Type) *TypeInfo {
	switch tt := t.(type) {
	case nil:
		return NewBuiltin(BuiltinUnknown)

	case *ast.NamedType:
		switch tt.Name {
		case "int":
			return NewBuiltin(BuiltinInt)
		case "float":
			return NewBuiltin(BuiltinFloat)
		case "string":
			return NewBuiltin(BuiltinString)
		case "bool":
			return NewBuiltin(BuiltinBool)
		}
		a.report(diag.SemaUndefinedType, tt.Sp, "Undefined type: "+tt.Name)
		return NewBuiltin(BuiltinUnknown)

	case *ast.FuncType:
		params := make([]*TypeInfo, len(tt.Params))
		for i, p := range tt.Params {
			params[i] = a.resolveType(p)
		}
		return NewFunction(params, a.resolveType(tt.Return))

	case *ast.StructType:
		// Reserved surface syntax; nothing can declare one today.
		return NewBuiltin(BuiltinUnknown)

	default:
		return NewBuiltin(BuiltinUnknown)
	}
}
