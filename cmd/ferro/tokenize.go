package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ferro/internal/diag"
	"ferro/internal/lexer"
	"ferro/internal/source"
	"ferro/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:           "tokenize <file.fe>",
	Short:         "Dump the token stream of a source file",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open file \"%s\".\n", path)
		os.Exit(exitFileError)
	}

	bag := diag.NewBag(maxDiagnostics(cmd))
	lx := lexer.New(fileSet.Get(fileID), lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	for {
		tok := lx.Next()
		start, _ := fileSet.Resolve(tok.Span)
		if tok.Text != "" && tok.Kind.String() != tok.Text {
			fmt.Printf("%4d:%-3d %-10s %q\n", start.Line, start.Col, tok.Kind, tok.Text)
		} else {
			fmt.Printf("%4d:%-3d %s\n", start.Line, start.Col, tok.Kind)
		}
		if tok.Kind == token.EOF {
			break
		}
	}

	if bag.HasErrors() {
		for _, d := range bag.Items() {
			start, _ := fileSet.Resolve(d.Primary)
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", path, start.Line, start.Col, d.Message)
		}
		os.Exit(1)
	}
	return nil
}
