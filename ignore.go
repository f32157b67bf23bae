package main

import "strings"

// defaultIgnoredDirs are directory names skipped by default: build output and
// dependency trees that would otherwise dominate the statistics.
var defaultIgnoredDirs = map[string]bool{
	"node_modules": true,
	"target":       true,
	"dist":         true,
	"build":        true,
	"public":       true,
	"out":          true,
}

// shouldVisit decides whether a directory entry participates in the scan.
// It is evaluated independently at every tree level; when it rejects a
// directory the walker never descends into it, so its contents are never
// stat'd.
//
// Include overrides are matched by exact entry name, at any depth: an
// override for ".git" re-admits any entry literally named ".git", but never
// acts as a path or glob pattern.
func shouldVisit(name string, isDir bool, cfg ScanConfig) bool {
	if cfg.IncludeOverrides[name] {
		return true
	}
	if strings.HasPrefix(name, ".") && !cfg.IncludeDotfiles {
		return false
	}
	if isDir && defaultIgnoredDirs[name] {
		return false
	}
	return true
}
