package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"podgen/internal/diag"
	"podgen/internal/expand"
	"podgen/internal/source"
)

// DirResult is one file's expansion within a directory walk.
type DirResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Output string
}

// listRustFiles returns a sorted list of all *.rs files under dir.
func listRustFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rs") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order.
	sort.Strings(files)
	return files, nil
}

// ExpandDir expands every *.rs file under dir in parallel. Files are loaded
// up front into one shared FileSet; per-file work touches only its own
// result slot, so no mutex guards the slice. jobs <= 0 means GOMAXPROCS.
func ExpandDir(ctx context.Context, dir string, reg *expand.Registry, maxDiagnostics, jobs int) (*source.FileSet, []DirResult, error) {
	files, err := listRustFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, lerr := fileSet.Load(path)
		if lerr != nil {
			loadErrors[path] = lerr
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = DirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			res := expandLoaded(fileSet, fileSet.Get(fileID), reg, bag)

			results[i] = DirResult{
				Path:   path,
				FileID: fileID,
				Bag:    bag,
				Output: res.Output,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
