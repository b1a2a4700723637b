//go:build integration

package integration

import (
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCommitCountVerification runs gitwrapped on the enclosing repository and
// verifies the yearly commit total against git rev-list.
func TestCommitCountVerification(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	repoPath, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		t.Skip("not inside a git repository")
	}
	repoDir := strings.TrimSpace(string(repoPath))

	for _, year := range []int{time.Now().Year(), time.Now().Year() - 1} {
		t.Run(strconv.Itoa(year), func(t *testing.T) {
			stdout, stderr, err := runGitwrapped(t, t.TempDir(), "repos", repoDir,
				"--year", strconv.Itoa(year), "--output", "json", "--image", "verify.png")
			require.NoError(t, err, stderr)

			var doc struct {
				Repos []struct {
					Path    string `json:"path"`
					Commits int    `json:"commits"`
				} `json:"repos"`
			}
			require.NoError(t, json.Unmarshal([]byte(stdout), &doc))

			for _, repo := range doc.Repos {
				if repo.Path != repoDir {
					continue
				}
				since := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local).Format(time.RFC3339)
				until := time.Date(year, time.December, 31, 23, 59, 59, 0, time.Local).Format(time.RFC3339)
				gitCmd := exec.Command("git", "rev-list", "--count", "--since="+since, "--until="+until, "HEAD")
				gitCmd.Dir = repoDir
				out, err := gitCmd.Output()
				require.NoError(t, err)
				expected, err := strconv.Atoi(strings.TrimSpace(string(out)))
				require.NoError(t, err)
				assert.Equal(t, expected, repo.Commits, "commit count mismatch for %s", repoDir)
			}
		})
	}
}
