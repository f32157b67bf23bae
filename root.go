package main

import (
	"os"
	"path/filepath"
)

// rootIndicators are entries whose presence marks a directory as a project
// root. Checked in order; the first directory (walking upward) containing
// any of them wins.
var rootIndicators = []string{
	".git",
	".gitignore",
	"node_modules",
	"Cargo.toml",
	"go.mod",
	"build.zig",
	"pyproject.toml",
	".luarc.json",
	"tsconfig.json",
	".prettierrc",
	".prettierrc.json",
	".prettierrc.toml",
	"README.md",
	"README",
	"LICENSE",
	"index.html",
}

// findProjectRoot walks upward from dir looking for a recognizable project
// root. It returns "" when the filesystem root is reached without a match,
// letting the caller fall back to the literal directory.
func findProjectRoot(dir string) string {
	dir = filepath.Clean(dir)
	for {
		for _, indicator := range rootIndicators {
			if _, err := os.Stat(filepath.Join(dir, indicator)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
