package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ferro/internal/diagfmt"
	"ferro/internal/driver"
	"ferro/internal/project"
	"ferro/internal/source"
	"ferro/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [file.fe|directory]",
	Short: "Run diagnostics without evaluating",
	Long: `Check a source file or every .fe file under a directory. In a
directory check, clean unchanged files are skipped via the on-disk
check cache; a single file is always checked.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = all cores)")
	checkCmd.Flags().String("ui", "off", "live progress for directory checks (auto|on|off)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk check cache")
	checkCmd.Flags().String("cache-dir", "", "override the check cache directory")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	info, err := os.Stat(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open file \"%s\".\n", target)
		os.Exit(exitFileError)
	}

	opts := driver.Options{MaxDiagnostics: maxDiagnostics(cmd)}
	if manifestPath, found, err := project.Find(target); err == nil && found {
		if manifest, err := project.Load(manifestPath); err == nil &&
			manifest.Config.Check.MaxDiagnostics > 0 {
			opts.MaxDiagnostics = manifest.Config.Check.MaxDiagnostics
		}
	}

	if !info.IsDir() {
		return checkSingle(cmd, target, opts)
	}
	return checkDirectory(cmd, target, opts)
}

func checkSingle(cmd *cobra.Command, path string, opts driver.Options) error {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open file \"%s\".\n", path)
		os.Exit(exitFileError)
	}

	res := driver.CheckSource(fileSet, fileID, opts)
	printPretty(cmd, res, fileSet)
	if !res.Accepted() {
		os.Exit(1)
	}
	fmt.Println("ok")
	return nil
}

func checkDirectory(cmd *cobra.Command, dir string, opts driver.Options) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	uiMode, _ := cmd.Flags().GetString("ui")

	var cache *driver.DiskCache
	if !noCache {
		cacheDir, _ := cmd.Flags().GetString("cache-dir")
		var err error
		if cacheDir != "" {
			cache, err = driver.OpenDiskCacheAt(cacheDir)
		} else {
			cache, err = driver.OpenDiskCache("ferro")
		}
		if err != nil {
			// A missing cache only costs speed.
			cache = nil
		}
	}

	dirOpts := driver.DirOptions{
		Options: opts,
		Jobs:    jobs,
		Cache:   cache,
	}

	useUI := uiMode == "on" || (uiMode == "auto" && isTerminal(os.Stdout))
	var results []driver.DirResult
	var err error

	if useUI {
		files, listErr := driver.ListSourceFiles(dir)
		if listErr != nil {
			return listErr
		}
		events := make(chan driver.DirEvent, len(files)*3+8)
		dirOpts.Events = events
		prog := tea.NewProgram(ui.NewProgressModel("checking "+dir, files, events))

		done := make(chan struct{})
		go func() {
			defer close(done)
			results, err = driver.CheckDir(cmd.Context(), dir, dirOpts)
		}()
		if _, uiErr := prog.Run(); uiErr != nil {
			<-done
			return uiErr
		}
		<-done
	} else {
		results, err = driver.CheckDir(cmd.Context(), dir, dirOpts)
	}
	if err != nil {
		return err
	}

	failed := 0
	cached := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
		case r.CacheHit:
			cached++
		case !r.Result.Accepted():
			failed++
			printDirResult(cmd, r)
		}
	}

	fmt.Printf("%d files, %d cached, %d failed\n", len(results), cached, failed)
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

func printDirResult(cmd *cobra.Command, r driver.DirResult) {
	printPretty(cmd, r.Result, r.Result.FS)
}

func printPretty(cmd *cobra.Command, res *driver.Result, fileSet *source.FileSet) {
	prettyOpts := diagfmt.PrettyOpts{
		Color:     colorEnabled(cmd),
		PathMode:  "auto",
		ShowNotes: true,
	}
	if res.ParseBag.Len() > 0 {
		diagfmt.Pretty(os.Stdout, res.ParseBag, fileSet, prettyOpts)
	}
	if res.SemaBag.Len() > 0 {
		diagfmt.Pretty(os.Stdout, res.SemaBag, fileSet, prettyOpts)
	}
}
