package sema

import (
	"strings"
)

// TypeCategory partitions the semantic type universe.
type TypeCategory uint8

const (
	TypeBuiltin TypeCategory = iota
	TypeFunction
	TypeStruct
	TypeErrorCat
)

// BuiltinKind enumerates the builtin types, the unknown sentinel, and
// the two reference kinds.
type BuiltinKind uint8

const (
	BuiltinInt BuiltinKind = iota
	BuiltinFloat
	BuiltinString
	BuiltinBool
	BuiltinUnit
	BuiltinUnknown
	BuiltinRef
	BuiltinMutRef
)

// TypeInfo is the semantic type attached to expressions and symbols.
// It is distinct from the parsed ast.Type annotations.
type TypeInfo struct {
	Category TypeCategory
	Builtin  BuiltinKind

	// Function payload.
	Params []*TypeInfo
	Result *TypeInfo

	// Struct payload (reserved).
	StructName string
	FieldNames []string
	FieldTypes []*TypeInfo

	// PointedTo is meaningful only for Ref/MutRef.
	PointedTo *TypeInfo

	IsOwned    bool
	IsBorrowed bool
	LifetimeID uint32
}

// NewBuiltin builds an owned builtin type.
func NewBuiltin(kind BuiltinKind) *TypeInfo {
	return &TypeInfo{
		Category: TypeBuiltin,
		Builtin:  kind,
		IsOwned:  true,
	}
}

// NewFunction builds a structural function type.
func NewFunction(params []*TypeInfo, result *TypeInfo) *TypeInfo {
	return &TypeInfo{
		Category: TypeFunction,
		Params:   params,
		Result:   result,
		IsOwned:  true,
	}
}

// NewReference builds a borrowed reference to pointedTo.
func NewReference(pointedTo *TypeInfo, mutable bool) *TypeInfo {
	kind := BuiltinRef
	if mutable {
		kind = BuiltinMutRef
	}
	return &TypeInfo{
		Category:   TypeBuiltin,
		Builtin:    kind,
		PointedTo:  pointedTo,
		IsBorrowed: true,
	}
}

// IsUnknown reports whether the type is the error sentinel.
func (t *TypeInfo) IsUnknown() bool {
	return t == nil || (t.Category == TypeBuiltin && t.Builtin == BuiltinUnknown)
}

// IsNumeric reports whether the type is int or float.
func (t *TypeInfo) IsNumeric() bool {
	return t != nil && t.Category == TypeBuiltin &&
		(t.Builtin == BuiltinInt || t.Builtin == BuiltinFloat)
}

// IsComparable reports whether the type supports ordering and equality
// operators: numeric, string, or bool.
func (t *TypeInfo) IsComparable() bool {
	if t == nil || t.Category != TypeBuiltin {
		return false
	}
	switch t.Builtin {
	case BuiltinInt, BuiltinFloat, BuiltinString, BuiltinBool:
		return true
	default:
		return false
	}
}

// IsBool reports whether the type is the builtin bool.
func (t *TypeInfo) IsBool() bool {
	return t != nil && t.Category == TypeBuiltin && t.Builtin == BuiltinBool
}

// IsReference reports whether the type is a ref or mutref.
func (t *TypeInfo) IsReference() bool {
	return t != nil && t.Category == TypeBuiltin &&
		(t.Builtin == BuiltinRef || t.Builtin == BuiltinMutRef)
}

// Equals is structural equality: builtin tags, function shapes
// (parameters in order plus result), and reference kind + pointee.
func (t *TypeInfo) Equals(other *TypeInfo) bool {
	if t == nil || other == nil {
		return false
	}
	if t.Category != other.Category {
		return false
	}

	switch t.Category {
	case TypeBuiltin:
		if t.Builtin != other.Builtin {
			return false
		}
		if t.IsReference() {
			return t.PointedTo.Equals(other.PointedTo)
		}
		return true

	case TypeFunction:
		if len(t.Params) != len(other.Params) {
			return false
		}
		if !t.Result.Equals(other.Result) {
			return false
		}
		for i := range t.Params {
			if !t.Params[i].Equals(other.Params[i]) {
				return false
			}
		}
		return true

	case TypeStruct:
		return t.StructName == other.StructName

	default:
		return false
	}
}

// AssignableTo is the assignability relation: in this language it is
// exactly structural equality, with no implicit numeric coercion.
func (t *TypeInfo) AssignableTo(target *TypeInfo) bool {
	return t.Equals(target)
}

// String renders the type the way it is written in source.
func (t *TypeInfo) String() string {
	if t == nil {
		return "unknown"
	}
	switch t.Category {
	case TypeBuiltin:
		switch t.Builtin {
		case BuiltinInt:
			return "int"
		case BuiltinFloat:
			return "float"
		case BuiltinString:
			return "string"
		case BuiltinBool:
			return "bool"
		case BuiltinUnit:
			return "()"
		case BuiltinUnknown:
			return "unknown"
		case BuiltinRef:
			return "&" + t.PointedTo.String()
		case BuiltinMutRef:
			return "&mut " + t.PointedTo.String()
		}
	case TypeFunction:
		var b strings.Builder
		b.WriteString("func(")
		for i, p := range t.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteString(") -> ")
		b.WriteString(t.Result.String())
		return b.String()
	case TypeStruct:
		return "struct " + t.StructName
	}
	return "unknown"
}
