package diagfmt

import (
	"fmt"
	"io"

	"ferro/internal/diag"
	"ferro/internal/source"
)

// PlainParser writes syntax diagnostics the way the run command
// reports them: a header line then one indented message per item.
func PlainParser(w io.Writer, bag *diag.Bag) {
	fmt.Fprintln(w, "Parser errors:")
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "  %s\n", d.Message)
	}
}

// PlainSemantic writes semantic diagnostics as
// `Semantic errors (N):` followed by `  Line L:C - <message>` lines.
func PlainSemantic(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	fmt.Fprintf(w, "Semantic errors (%d):\n", bag.ErrorCount())
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "  Line %d:%d - %s\n", start.Line, start.Col, d.Message)
	}
}
