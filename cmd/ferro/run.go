package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ferro/internal/diagfmt"
	"ferro/internal/driver"
	"ferro/internal/interp"
	"ferro/internal/project"
	"ferro/internal/source"
)

var runCmd = &cobra.Command{
	Use:   "run [file.fe]",
	Short: "Check and evaluate a Ferro program",
	Long: `Run a Ferro source file through the full pipeline and print the
final value. With no argument the entry file comes from ferro.toml.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runExecution,
}

// exit codes follow the established CLI contract: 1 for any
// diagnostic, 74 for an unreadable input file.
const exitFileError = 74

func runExecution(cmd *cobra.Command, args []string) error {
	path, err := resolveTarget(args)
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open file \"%s\".\n", path)
		os.Exit(exitFileError)
	}

	res := driver.CheckSource(fileSet, fileID, driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
	})

	if res.ParseBag.HasErrors() {
		diagfmt.PlainParser(os.Stdout, res.ParseBag)
		os.Exit(1)
	}
	if res.SemaBag.HasErrors() {
		diagfmt.PlainSemantic(os.Stdout, res.SemaBag, fileSet)
		os.Exit(1)
	}

	env := interp.NewEnvironment()
	value := interp.EvalProgram(res.File, env)
	fmt.Printf("=> %s\n", value.String())
	return nil
}

// resolveTarget picks the source file: an explicit argument, or the
// project manifest's entry point.
func resolveTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	manifestPath, found, err := project.Find(".")
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.New("no ferro.toml found; pass an explicit file or create ferro.toml")
	}
	manifest, err := project.Load(manifestPath)
	if err != nil {
		return "", err
	}
	return manifest.MainPath(), nil
}
