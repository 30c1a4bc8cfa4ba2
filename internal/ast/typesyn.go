package ast

import (
	"strings"

	"ferro/internal/source"
)

// NamedType references a type by name: a builtin (int, float, string,
// bool) or a user-declared name.
type NamedType struct {
	Sp   source.Span
	Name string
}

// FuncType is the structural function type `func(T1, ...) -> T`.
type FuncType struct {
	Sp     source.Span
	Params []Type
	Return Type
}

// StructType is reserved in the surface grammar and never produced by
// the parser today.
type StructType struct {
	Sp     source.Span
	Names  []string
	Fields []Type
}

func (t *NamedType) Span() source.Span  { return t.Sp }
func (t *FuncType) Span() source.Span   { return t.Sp }
func (t *StructType) Span() source.Span { return t.Sp }

func (*NamedType) typeNode()  {}
func (*FuncType) typeNode()   {}
func (*StructType) typeNode() {}

// TypeString renders a type annotation the way it is written in source.
func TypeString(t Type) string {
	switch tt := t.(type) {
	case nil:
		return "()"
	case *NamedType:
		return tt.Name
	case *FuncType:
		var b strings.Builder
		b.WriteString("func(")
		for i, p := range tt.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(TypeString(p))
		}
		b.WriteString(") -> ")
		b.WriteString(TypeString(tt.Return))
		return b.String()
	case *StructType:
		return "struct"
	}
	return "?"
}
