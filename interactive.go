package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// runInteractivePicker walks the current directory and lets the user pick
// the directory to scan with a fuzzy finder. Returns "" without error when
// the user aborts.
func runInteractivePicker() (string, error) {
	candidates := []string{"."}
	root := "."

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries just don't become candidates
		}
		if path == root {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if !includeDotfiles && isDotfile(d.Name()) {
			return fs.SkipDir
		}
		if defaultIgnoredDirs[d.Name()] {
			return fs.SkipDir
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error scanning for directories: %w", err)
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select the directory to scan. Enter to confirm."
			}
			path := candidates[i]
			entries, readErr := os.ReadDir(path)
			if readErr != nil {
				return fmt.Sprintf("Path: %s\nError reading: %v", path, readErr)
			}
			return fmt.Sprintf("Path: %s\nEntries: %d", path, len(entries))
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", nil
		}
		return "", fmt.Errorf("fuzzy finder error: %w", err)
	}

	return candidates[idx], nil
}

// isDotfile reports whether a name starts with a dot, excluding the "." and
// ".." pseudo-entries.
func isDotfile(name string) bool {
	return name != "." && name != ".." && len(name) > 0 && name[0] == '.'
}
