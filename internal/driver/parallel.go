package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ferro/internal/source"
)

// Stage labels a file's position in the directory walk.
type Stage uint8

const (
	StageQueued Stage = iota
	StageChecking
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageChecking:
		return "checking"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	}
	return "?"
}

// DirEvent reports per-file progress to an observer (the progress UI).
type DirEvent struct {
	Path     string
	Stage    Stage
	CacheHit bool
}

// DirResult is the outcome of checking one file in a directory walk.
type DirResult struct {
	Path     string
	Result   *Result
	CacheHit bool
	Err      error
}

// DirOptions configures a directory check.
type DirOptions struct {
	Options

	// Jobs bounds worker concurrency; <= 0 means GOMAXPROCS.
	Jobs int

	// Cache, when non-nil, lets clean unchanged files skip analysis.
	Cache *DiskCache

	// Events, when non-nil, receives progress events. The channel is
	// closed when the walk finishes.
	Events chan<- DirEvent
}

// ListSourceFiles returns every .fe file under root, sorted for
// deterministic output.
func ListSourceFiles(root string) ([]string, error) {
	files := make([]string, 0, 16)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".fe") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every .fe file under root with a bounded worker
// pool. Results are returned in file order regardless of completion
// order.
func CheckDir(ctx context.Context, root string, opts DirOptions) ([]DirResult, error) {
	files, err := ListSourceFiles(root)
	if err != nil {
		return nil, err
	}

	emit := func(ev DirEvent) {
		if opts.Events != nil {
			opts.Events <- ev
		}
	}
	defer func() {
		if opts.Events != nil {
			close(opts.Events)
		}
	}()

	for _, path := range files {
		emit(DirEvent{Path: path, Stage: StageQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]DirResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			emit(DirEvent{Path: path, Stage: StageChecking})
			results[i] = checkOne(path, opts)
			stage := StageDone
			if results[i].Err != nil || (results[i].Result != nil && !results[i].Result.Accepted()) {
				stage = StageFailed
			}
			emit(DirEvent{Path: path, Stage: stage, CacheHit: results[i].CacheHit})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkOne(path string, opts DirOptions) DirResult {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return DirResult{Path: path, Err: err}
	}

	digest := HashContent(fileSet.Get(fileID).Content)
	if payload, ok := opts.Cache.Get(digest); ok && payload.Clean {
		return DirResult{Path: path, CacheHit: true}
	}

	res := CheckSource(fileSet, fileID, opts.Options)
	if opts.Cache != nil {
		// Cache write failures are not worth failing the walk over.
		_ = opts.Cache.Put(digest, &DiskPayload{
			Path:        path,
			ContentHash: digest,
			Clean:       res.Accepted(),
		})
	}
	return DirResult{Path: path, Result: res}
}
