// Package ast defines the syntax tree for ferro source files.
//
// The node sets are closed: Expr, Stmt, and Type are sealed interfaces
// and consumers switch exhaustively over the concrete node structs.
// Every node carries the source span it was parsed from.
package ast

import (
	"ferro/internal/source"
)

// Node is the common interface of all syntax tree nodes.
type Node interface {
	Span() source.Span
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Type is implemented by every type annotation node.
type Type interface {
	Node
	typeNode()
}

// File is a parsed source file: a flat list of top-level statements.
type File struct {
	FileID source.FileID
	Stmts  []Stmt
}
