package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/diagfmt"
	"ferro/internal/lexer"
	"ferro/internal/parser"
	"ferro/internal/source"
)

var parseCmd = &cobra.Command{
	Use:           "parse <file.fe>",
	Short:         "Dump the syntax tree of a source file",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
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
	file := parser.ParseFile(lx, fileID, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	ast.Fprint(os.Stdout, file)

	if bag.HasErrors() {
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:    colorEnabled(cmd),
			PathMode: "auto",
		})
		os.Exit(1)
	}
	return nil
}
