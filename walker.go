package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	gitignore "github.com/monochromegane/go-gitignore"
)

// errInvalidRoot is the only fatal scan error: the root path is missing or
// not a directory. Everything else degrades to a per-entry diagnostic.
var errInvalidRoot = errors.New("invalid scan root")

// scanResult carries either a classified record or a diagnostic from a
// worker back to the collector.
type scanResult struct {
	record FileRecord
	diag   *Diagnostic
}

// scanTree walks the tree rooted at root, classifying every file the ignore
// policy admits. Classification runs on a worker pool; per-entry failures are
// collected as diagnostics and never abort the scan.
func scanTree(root string, cfg ScanConfig) (*ScanOutcome, error) {
	// The gitignore matcher resolves entries against its base directory, so
	// the walk has to hand it absolute paths.
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", errInvalidRoot, root)
	}

	var ignoreMatcher gitignore.IgnoreMatcher
	if cfg.UseGitignore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not parse %s: %v\n", gitIgnorePath, err)
			} else {
				ignoreMatcher = matcher
			}
		}
	}

	numWorkers := cfg.Threads
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	jobs := make(chan string, 64)
	results := make(chan scanResult, 64)
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go classifyWorker(jobs, results, &wg)
	}

	outcome := &ScanOutcome{}
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for res := range results {
			if res.diag != nil {
				outcome.Diagnostics = append(outcome.Diagnostics, *res.diag)
				continue
			}
			outcome.Records = append(outcome.Records, res.record)
		}
	}()

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			results <- scanResult{diag: &Diagnostic{Path: path, Err: err}}
			return nil // skip the entry, keep walking
		}
		if path == root {
			return nil
		}

		name := d.Name()
		isDir := d.IsDir()

		if !shouldVisit(name, isDir, cfg) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		// The root .gitignore is consulted after the name-based policy so
		// an explicit include override still wins. The matcher resolves
		// paths against the .gitignore's own directory, so it gets the
		// absolute walk path.
		if ignoreMatcher != nil && !cfg.IncludeOverrides[name] {
			if ignoreMatcher.Match(path, isDir) {
				if isDir {
					return fs.SkipDir
				}
				return nil
			}
		}

		if cfg.MaxDepth > 0 && isDir {
			relPath, relErr := filepath.Rel(root, path)
			if relErr == nil && pathDepth(relPath) >= cfg.MaxDepth {
				return fs.SkipDir
			}
		}

		if isDir {
			return nil
		}
		// Symlinks go through the classifier so a broken one surfaces as a
		// diagnostic; sockets and other irregular entries are skipped.
		if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
			return nil
		}

		jobs <- path
		return nil
	})

	close(jobs)
	wg.Wait()
	close(results)
	<-collected

	if walkErr != nil {
		// WalkDir only returns what the callback returns, and the callback
		// never propagates entry errors, so this is unexpected.
		return nil, fmt.Errorf("walking %s: %w", root, walkErr)
	}
	return outcome, nil
}

// classifyWorker drains candidate paths, measuring and classifying each one.
func classifyWorker(jobs <-chan string, results chan<- scanResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for path := range jobs {
		record, err := classifyFile(path)
		if err != nil {
			results <- scanResult{diag: &Diagnostic{Path: path, Err: err}}
			continue
		}
		results <- scanResult{record: record}
	}
}

// pathDepth counts the directory levels of a relative path: "a" is depth 0,
// "a/b" is depth 1.
func pathDepth(relPath string) int {
	relPath = filepath.ToSlash(relPath)
	if relPath == "." || relPath == "" {
		return 0
	}
	return strings.Count(strings.Trim(relPath, "/"), "/")
}
