package core

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/huangsam/gitwrapped/internal/contract"
)

// ScanRepos returns the directories under root that directly contain a marker
// directory. The root is checked eagerly; a missing or non-directory root is an
// error wrapping contract.ErrFileSystem.
//
// The sequence is lazy and restartable: every range walks the tree again in
// lexical order. The marker directory itself is never entered, but the working
// tree around it is, so nested repositories are found too. Unreadable
// directories are logged and skipped.
func ScanRepos(root, marker string) (iter.Seq[string], error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot access root %q: %w", contract.ErrFileSystem, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: root %q is not a directory", contract.ErrFileSystem, root)
	}

	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				contract.LogWalkError(path, err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if !d.IsDir() {
				return nil
			}
			if d.Name() == marker && path != root {
				return fs.SkipDir
			}
			if isRepo(path, marker) && !yield(path) {
				return fs.SkipAll
			}
			return nil
		})
	}, nil
}

// isRepo reports whether dir holds a marker directory.
func isRepo(dir, marker string) bool {
	info, err := os.Stat(filepath.Join(dir, marker))
	return err == nil && info.IsDir()
}

// collectRepos drains a scan into a slice.
func collectRepos(seq iter.Seq[string]) []string {
	var repos []string
	for repo := range seq {
		repos = append(repos, repo)
	}
	return repos
}
