package lexer

import (
	"ferro/internal/diag"
)

// Options configures a Lexer instance.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil.
	Reporter diag.Reporter
}
