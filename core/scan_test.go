package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mkdirs creates every directory under root.
func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
}

func TestScanRepos(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"b-repo/.git/objects",
		"a-repo/.git",
		"a-repo/vendor/nested/.git",
		"group/c-repo/.git",
		"plain/src",
	)
	// A .git file (as in worktrees and submodules) is not a marker directory
	require.NoError(t, os.WriteFile(filepath.Join(root, "plain", ".git"), []byte("gitdir: elsewhere"), 0o644))

	seq, err := ScanRepos(root, ".git")
	require.NoError(t, err)

	expected := []string{
		filepath.Join(root, "a-repo"),
		filepath.Join(root, "a-repo", "vendor", "nested"),
		filepath.Join(root, "b-repo"),
		filepath.Join(root, "group", "c-repo"),
	}
	assert.Equal(t, expected, collectRepos(seq))

	// The sequence can be ranged over again with the same result
	assert.Equal(t, expected, collectRepos(seq))
}

func TestScanRepos_RootIsRepo(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, ".git")

	seq, err := ScanRepos(root, ".git")
	require.NoError(t, err)
	assert.Equal(t, []string{root}, collectRepos(seq))
}

func TestScanRepos_CustomMarker(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "one/.hg", "two/.git")

	seq, err := ScanRepos(root, ".hg")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "one")}, collectRepos(seq))
}

func TestScanRepos_EarlyStop(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a/.git", "b/.git", "c/.git")

	seq, err := ScanRepos(root, ".git")
	require.NoError(t, err)

	var first []string
	for repo := range seq {
		first = append(first, repo)
		break
	}
	assert.Equal(t, []string{filepath.Join(root, "a")}, first)
}

func TestScanRepos_Empty(t *testing.T) {
	seq, err := ScanRepos(t.TempDir(), ".git")
	require.NoError(t, err)
	assert.Empty(t, collectRepos(seq))
}

func TestScanRepos_InvalidRoot(t *testing.T) {
	root := t.TempDir()

	_, err := ScanRepos(filepath.Join(root, "missing"), ".git")
	assert.ErrorIs(t, err, contract.ErrFileSystem)
	assert.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = ScanRepos(file, ".git")
	assert.ErrorIs(t, err, contract.ErrFileSystem)
}
