package diag

import (
	"fmt"
)

// Code identifies a diagnostic category. Ranges: 1000 lexical,
// 2000 syntactic, 3000 semantic, 4000 I/O.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadEscape          Code = 1004

	// Syntactic
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectExpression   Code = 2003
	SynExpectType         Code = 2004
	SynMutOnConst         Code = 2005
	SynMatchNotSupported  Code = 2006
	SynUnclosedDelimiter  Code = 2007
	SynExpectSemicolon    Code = 2008
	SynUnexpectedTopLevel Code = 2009

	// Semantic
	SemaInfo                  Code = 3000
	SemaTypeMismatch          Code = 3001
	SemaUndefinedVariable     Code = 3002
	SemaUndefinedFunction     Code = 3003
	SemaUndefinedType         Code = 3004
	SemaRedefinition          Code = 3005
	SemaImmutableAssignment   Code = 3006
	SemaUninitializedVariable Code = 3007
	SemaInvalidOperation      Code = 3008
	SemaWrongArgumentCount    Code = 3009
	SemaReturnTypeMismatch    Code = 3010
	SemaMemorySafety          Code = 3011
	SemaLifetimeViolation     Code = 3012

	// I/O
	IOError       Code = 4000
	IOFileNotRead Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:               "lexical info",
	LexUnknownChar:        "unknown character",
	LexUnterminatedString: "unterminated string literal",
	LexBadNumber:          "malformed numeric literal",
	LexBadEscape:          "invalid escape sequence",

	SynInfo:               "syntax info",
	SynUnexpectedToken:    "unexpected token",
	SynExpectIdentifier:   "expected identifier",
	SynExpectExpression:   "expected expression",
	SynExpectType:         "expected type",
	SynMutOnConst:         "mut is not allowed on const",
	SynMatchNotSupported:  "match is reserved but not implemented",
	SynUnclosedDelimiter:  "unclosed delimiter",
	SynExpectSemicolon:    "expected semicolon",
	SynUnexpectedTopLevel: "unexpected top-level construct",

	SemaInfo:                  "semantic info",
	SemaTypeMismatch:          "type mismatch",
	SemaUndefinedVariable:     "undefined variable",
	SemaUndefinedFunction:     "undefined function",
	SemaUndefinedType:         "undefined type",
	SemaRedefinition:          "redefinition in the same scope",
	SemaImmutableAssignment:   "mutation of an immutable binding",
	SemaUninitializedVariable: "use of an uninitialized variable",
	SemaInvalidOperation:      "operator applied to a disallowed type",
	SemaWrongArgumentCount:    "wrong argument count",
	SemaReturnTypeMismatch:    "return type mismatch",
	SemaMemorySafety:          "borrow rule violation",
	SemaLifetimeViolation:     "borrow outlives referent",

	IOError:       "I/O error",
	IOFileNotRead: "source file could not be read",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
