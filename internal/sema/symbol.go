package sema

import (
	"ferro/internal/source"
)

// SymbolKind classifies a declared name.
type SymbolKind uint8

const (
	SymbolVariable SymbolKind = iota
	SymbolFunction
	SymbolParameter
	SymbolType
)

// BorrowState is the aggregate borrow tag of a binding. The checker
// tracks a counter and a tag per referent rather than individual
// reference identities; shared borrows commute and a mutable borrow
// excludes all others, so the aggregate is exact.
type BorrowState uint8

const (
	BorrowNone BorrowState = iota
	BorrowShared
	BorrowMutable
)

func (s BorrowState) String() string {
	switch s {
	case BorrowNone:
		return "none"
	case BorrowShared:
		return "shared"
	case BorrowMutable:
		return "mutable"
	}
	return "?"
}

// Symbol is one resolved binding, owned by its declaring scope.
// The analyzer is the only mutator; the evaluator never touches it.
type Symbol struct {
	Name string
	Kind SymbolKind
	Type *TypeInfo

	IsConst       bool
	IsMutable     bool
	IsInitialized bool
	IsUsed        bool

	Decl source.Span

	BorrowState       BorrowState
	SharedBorrowCount int
	BorrowLifetimeID  uint32

	LifetimeID uint32
	Scope      *Scope
}
