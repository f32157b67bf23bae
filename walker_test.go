package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rustLines builds file content of n lines, 12 bytes each.
func rustLines(n int) []byte {
	return []byte(strings.Repeat("0123456789a\n", n))
}

func recordPaths(outcome *ScanOutcome) []string {
	paths := make([]string, 0, len(outcome.Records))
	for _, record := range outcome.Records {
		paths = append(paths, record.Path)
	}
	sort.Strings(paths)
	return paths
}

func TestScanTree_DefaultScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.rs", rustLines(10)) // 120 bytes, 10 lines
	writeFile(t, root, "lib.rs", rustLines(5))   // 60 bytes, 5 lines
	// .git holds a classifiable file that must never be visited.
	writeFile(t, root, ".git/config", []byte("[core]\n"))
	writeFile(t, root, ".git/hooks.rs", []byte("fn x() {}\n"))

	outcome, err := scanTree(root, ScanConfig{})
	require.NoError(t, err)

	t.Run("dotdir contents never visited", func(t *testing.T) {
		for _, path := range recordPaths(outcome) {
			assert.NotContains(t, path, ".git")
		}
	})

	t.Run("single Rust entry with summed totals", func(t *testing.T) {
		report := aggregate(outcome.Records, ScanConfig{})
		require.Len(t, report.Languages, 1)
		assert.Equal(t, LanguageStats{Name: "Rust", Files: 2, Bytes: 180, Lines: 15}, report.Languages[0])
	})

	t.Run("no diagnostics on a clean tree", func(t *testing.T) {
		assert.Empty(t, outcome.Diagnostics)
	})
}

func TestScanTree_PrunesIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.rs", rustLines(1))
	writeFile(t, root, "node_modules/pkg/deep/index.js", []byte("x\n"))
	writeFile(t, root, "a/b/target/buried.rs", rustLines(3))

	outcome, err := scanTree(root, ScanConfig{})
	require.NoError(t, err)

	paths := recordPaths(outcome)
	require.Len(t, paths, 1)
	assert.Contains(t, paths[0], "main.rs")
}

func TestScanTree_IncludeOverrides(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.rs", rustLines(1))
	writeFile(t, root, "node_modules/index.js", []byte("x\n"))
	writeFile(t, root, ".git/hook.py", []byte("pass\n"))

	t.Run("re-admits a default-ignored directory", func(t *testing.T) {
		cfg := ScanConfig{IncludeOverrides: map[string]bool{"node_modules": true}}
		outcome, err := scanTree(root, cfg)
		require.NoError(t, err)

		report := aggregate(outcome.Records, cfg)
		names := []string{}
		for _, lang := range report.Languages {
			names = append(names, lang.Name)
		}
		assert.Contains(t, names, "JavaScript")
	})

	t.Run("re-admits a single dotdir while others stay ignored", func(t *testing.T) {
		cfg := ScanConfig{IncludeOverrides: map[string]bool{".git": true}}
		outcome, err := scanTree(root, cfg)
		require.NoError(t, err)

		paths := recordPaths(outcome)
		found := false
		for _, path := range paths {
			if strings.Contains(path, "hook.py") {
				found = true
			}
			assert.NotContains(t, path, "node_modules")
		}
		assert.True(t, found, "override should admit .git contents")
	})
}

func TestScanTree_IncludeDotfiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "visible.rs", rustLines(1))
	writeFile(t, root, ".hidden.rs", rustLines(2))

	t.Run("excluded by default", func(t *testing.T) {
		outcome, err := scanTree(root, ScanConfig{})
		require.NoError(t, err)
		assert.Len(t, outcome.Records, 1)
	})

	t.Run("included when enabled", func(t *testing.T) {
		outcome, err := scanTree(root, ScanConfig{IncludeDotfiles: true})
		require.NoError(t, err)
		assert.Len(t, outcome.Records, 2)
	})
}

func TestScanTree_InvalidRoot(t *testing.T) {
	t.Run("missing root is fatal", func(t *testing.T) {
		outcome, err := scanTree(filepath.Join(t.TempDir(), "nope"), ScanConfig{})
		assert.ErrorIs(t, err, errInvalidRoot)
		assert.Nil(t, outcome)
	})

	t.Run("file root is fatal", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "main.rs", rustLines(1))
		outcome, err := scanTree(path, ScanConfig{})
		assert.ErrorIs(t, err, errInvalidRoot)
		assert.Nil(t, outcome)
	})
}

func TestScanTree_BrokenSymlinkIsDiagnostic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.rs", rustLines(1))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.rs"), filepath.Join(root, "dangling.rs")))

	outcome, err := scanTree(root, ScanConfig{})
	require.NoError(t, err)

	assert.Len(t, outcome.Records, 1, "scan completes despite the broken entry")
	require.Len(t, outcome.Diagnostics, 1)
	assert.Contains(t, outcome.Diagnostics[0].Path, "dangling.rs")
}

func TestScanTree_Gitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", []byte("gen/\n*.tmp.rs\n"))
	writeFile(t, root, "main.rs", rustLines(1))
	writeFile(t, root, "gen/out.rs", rustLines(4))
	writeFile(t, root, "src/scratch.tmp.rs", rustLines(2))

	t.Run("honored when enabled", func(t *testing.T) {
		outcome, err := scanTree(root, ScanConfig{UseGitignore: true})
		require.NoError(t, err)
		require.Len(t, outcome.Records, 1)
		assert.Contains(t, outcome.Records[0].Path, "main.rs")
	})

	t.Run("nested entries match too", func(t *testing.T) {
		outcome, err := scanTree(root, ScanConfig{UseGitignore: true})
		require.NoError(t, err)
		for _, record := range outcome.Records {
			assert.NotContains(t, record.Path, "scratch.tmp.rs")
		}
	})

	t.Run("skipped when disabled", func(t *testing.T) {
		outcome, err := scanTree(root, ScanConfig{UseGitignore: false})
		require.NoError(t, err)
		assert.Len(t, outcome.Records, 3)
	})
}

func TestScanTree_MaxDepth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "top.rs", rustLines(1))
	writeFile(t, root, "a/mid.rs", rustLines(1))
	writeFile(t, root, "a/b/deep.rs", rustLines(1))

	outcome, err := scanTree(root, ScanConfig{MaxDepth: 1})
	require.NoError(t, err)

	paths := recordPaths(outcome)
	require.Len(t, paths, 2)
	assert.Contains(t, paths[0], "mid.rs")
	assert.Contains(t, paths[1], "top.rs")
}

func TestScanTree_SameSetAcrossRuns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.rs", rustLines(1))
	writeFile(t, root, "b/c.py", []byte("pass\n"))
	writeFile(t, root, "b/d.go", []byte("package d\n"))

	first, err := scanTree(root, ScanConfig{})
	require.NoError(t, err)
	second, err := scanTree(root, ScanConfig{})
	require.NoError(t, err)

	assert.Equal(t, recordPaths(first), recordPaths(second))
}

func TestScanTree_FindModeScenario(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.rs", rustLines(1))

	outcome, err := scanTree(root, ScanConfig{})
	require.NoError(t, err)

	// Requesting a language with no files returns an empty list, not an error.
	assert.Empty(t, findFiles(outcome.Records, "Python", ScanConfig{}))
}
