// Package diagfmt renders diagnostic bags for humans: a colored,
// caret-underlined form for terminals and the plain line-oriented
// form the run command prints.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ferro/internal/diag"
	"ferro/internal/source"
)

// PrettyOpts configures the pretty renderer.
type PrettyOpts struct {
	// Color enables ANSI colors.
	Color bool
	// PathMode is one of "absolute", "relative", "basename", "auto".
	PathMode string
	// ShowNotes prints attached notes under each diagnostic.
	ShowNotes bool
}

const tabWidth = 8

// visualWidthUpTo computes the rendered width of the line prefix up to
// the given 1-based byte column, accounting for tabs and wide runes.
func visualWidthUpTo(s string, byteCol uint32) int {
	if byteCol <= 1 {
		return 0
	}

	bytePos := 0
	visualPos := 0

	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}

		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}

		bytePos += len(string(r))
	}

	return visualPos
}

// Pretty formats diagnostics in a human-readable form. For each item
// it prints `<path>:<line>:<col>: <SEV> <CODE>: <message>`, the
// offending source line, and a `~~~^` underline over the span.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	var (
		errorColor     = color.New(color.FgRed, color.Bold)
		warningColor   = color.New(color.FgYellow, color.Bold)
		infoColor      = color.New(color.FgCyan, color.Bold)
		pathColor      = color.New(color.FgWhite, color.Bold)
		codeColor      = color.New(color.FgMagenta)
		lineNumColor   = color.New(color.FgBlue)
		underlineColor = color.New(color.FgRed, color.Bold)
	)

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	pathMode := opts.PathMode
	if pathMode == "" {
		pathMode = "auto"
	}

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w)
		}

		lineColStart, lineColEnd := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		displayPath := f.FormatPath(pathMode, fs.BaseDir())

		sevStr := d.Severity.String()
		var sevColored string
		switch d.Severity {
		case diag.SevError:
			sevColored = errorColor.Sprint(sevStr)
		case diag.SevWarning:
			sevColored = warningColor.Sprint(sevStr)
		case diag.SevInfo:
			sevColored = infoColor.Sprint(sevStr)
		default:
			sevColored = sevStr
		}

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			pathColor.Sprint(displayPath),
			lineColStart.Line,
			lineColStart.Col,
			sevColored,
			codeColor.Sprint(d.Code.ID()),
			d.Message,
		)

		lineText := f.GetLine(lineColStart.Line)
		lineNumStr := fmt.Sprintf("%3d", lineColStart.Line)
		gutter := fmt.Sprintf("%s | ", lineNumColor.Sprint(lineNumStr))
		gutterLen := len(lineNumStr) + 3

		fmt.Fprintf(w, "%s%s\n", gutter, lineText)

		startCol := lineColStart.Col
		endCol := lineColEnd.Col
		if lineColEnd.Line > lineColStart.Line {
			endCol = uint32(len(lineText)) + 1
		}

		visualStart := visualWidthUpTo(lineText, startCol)
		visualEnd := visualWidthUpTo(lineText, endCol)

		var underline strings.Builder
		for range gutterLen + visualStart {
			underline.WriteByte(' ')
		}
		spanLen := visualEnd - visualStart
		if spanLen <= 0 {
			underline.WriteByte('^')
		} else {
			for i := range spanLen {
				if i == spanLen-1 {
					underline.WriteByte('^')
				} else {
					underline.WriteByte('~')
				}
			}
		}
		fmt.Fprintln(w, underlineColor.Sprint(underline.String()))

		if opts.ShowNotes && len(d.Notes) > 0 {
			for _, note := range d.Notes {
				nf := fs.Get(note.Span.File)
				noteStart, _ := fs.Resolve(note.Span)
				fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
					infoColor.Sprint("note"),
					pathColor.Sprint(nf.FormatPath(pathMode, fs.BaseDir())),
					noteStart.Line,
					noteStart.Col,
					note.Msg,
				)
			}
		}
	}
}
