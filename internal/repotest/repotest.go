// Package repotest has helpers for building throwaway Git repositories in tests.
package repotest

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

// SkipIfGitNotAvailable skips the test if the git binary is not found in PATH.
func SkipIfGitNotAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skipf("git binary not found in PATH: %v", err)
	}
}

// Git runs a git command in dir with a fixed identity and fails the test on error.
func Git(t *testing.T, dir string, env []string, args ...string) {
	t.Helper()
	fullArgs := append([]string{"-c", "user.name=Test", "-c", "user.email=test@example.com", "-c", "commit.gpgsign=false"}, args...)
	cmd := exec.Command("git", fullArgs...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// InitRepo creates dir (if needed) and initializes an empty repository in it.
func InitRepo(t *testing.T, dir string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("cannot create %s: %v", dir, err)
	}
	Git(t, dir, nil, "init", "--quiet")
	return dir
}

// WriteFile writes content to a path relative to dir, creating parent directories.
func WriteFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("cannot create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
}

// CommitAt writes rel and commits it with both author and committer dates set to when.
func CommitAt(t *testing.T, dir, rel string, when time.Time) {
	t.Helper()
	WriteFile(t, dir, rel, when.Format(time.RFC3339Nano))
	Git(t, dir, nil, "add", rel)
	stamp := when.Format(time.RFC3339)
	env := []string{"GIT_AUTHOR_DATE=" + stamp, "GIT_COMMITTER_DATE=" + stamp}
	Git(t, dir, env, "commit", "--quiet", "-m", "commit "+stamp)
}
