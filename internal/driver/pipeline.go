// Package driver wires the pipeline stages together: it loads
// sources, runs lexing, parsing, and semantic analysis, and offers a
// parallel directory walk with a disk cache for clean files.
package driver

import (
	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/lexer"
	"ferro/internal/parser"
	"ferro/internal/sema"
	"ferro/internal/source"
)

// Options configures a single-file pipeline run.
type Options struct {
	// MaxDiagnostics bounds each stage's bag. Zero picks the default.
	MaxDiagnostics int
}

const defaultMaxDiagnostics = 100

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// Result carries everything the CLI needs after checking one file.
type Result struct {
	FS     *source.FileSet
	FileID source.FileID
	File   *ast.File

	// ParseBag holds lexical and syntactic diagnostics; SemaBag holds
	// semantic ones. Semantic analysis only runs on a clean parse.
	ParseBag *diag.Bag
	SemaBag  *diag.Bag
}

// Accepted reports whether the program passed every stage.
func (r *Result) Accepted() bool {
	return !r.ParseBag.HasErrors() && !r.SemaBag.HasErrors()
}

// CheckSource runs lex, parse, and semantic analysis over a file
// already loaded into fs.
func CheckSource(fs *source.FileSet, fileID source.FileID, opts Options) *Result {
	res := &Result{
		FS:       fs,
		FileID:   fileID,
		ParseBag: diag.NewBag(opts.maxDiagnostics()),
		SemaBag:  diag.NewBag(opts.maxDiagnostics()),
	}

	file := fs.Get(fileID)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: res.ParseBag}})
	res.File = parser.ParseFile(lx, fileID, parser.Options{
		Reporter: diag.BagReporter{Bag: res.ParseBag},
	})

	if res.ParseBag.HasErrors() {
		return res
	}

	analyzer := sema.New(diag.BagReporter{Bag: res.SemaBag})
	analyzer.Analyze(res.File)
	res.SemaBag.Sort()
	return res
}

// CheckFile loads the file from disk and checks it.
func CheckFile(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return CheckSource(fs, fileID, opts), nil
}
