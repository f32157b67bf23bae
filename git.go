package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// isGitURL reports whether the scan target looks like a remote git
// repository rather than a local directory.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") ||
		strings.HasPrefix(input, "git@")
}

// cloneGitRepo clones a repository's default branch into a temporary
// directory and returns its path. The caller removes the directory when the
// scan is done.
func cloneGitRepo(url string) (string, error) {
	tempDir, err := os.MkdirTemp("", "lingo-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Depth:         1, // statistics only need the working tree
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository %q: %w", url, err)
	}
	return tempDir, nil
}
