package token

// keywords maps reserved identifiers to their token kinds.
var keywords = map[string]Kind{
	"let":    KwLet,
	"const":  KwConst,
	"func":   KwFunc,
	"mut":    KwMut,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"match":  KwMatch,
	"type":   KwType,
	"return": KwReturn,
	"true":   KwTrue,
	"false":  KwFalse,
	"int":    KwInt,
	"float":  KwFloat,
	"string": KwString,
	"bool":   KwBool,
}

// LookupKeyword returns the keyword kind for text, or Ident.
func LookupKeyword(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Ident
}

// IsBuiltinType reports whether the kind names one of the builtin
// type keywords.
func IsBuiltinType(k Kind) bool {
	switch k {
	case KwInt, KwFloat, KwString, KwBool:
		return true
	default:
		return false
	}
}
