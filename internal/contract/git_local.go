package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// noCommitsMarker is what git prints when HEAD points to an unborn branch.
const noCommitsMarker = "does not have any commits yet"

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct {
	timeout time.Duration // zero means no timeout
}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
// A positive timeout bounds every git invocation.
func NewLocalGitClient(timeout time.Duration) *LocalGitClient {
	return &LocalGitClient{timeout: timeout}
}

// Run executes a git command with repoPath as its working directory and returns stdout.
// The process working directory is never changed.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoPath
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, &CommandError{
			RepoPath: repoPath,
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(string(exitErr.Stderr)),
			Err:      err,
		}
	} else if err != nil {
		return nil, &CommandError{RepoPath: repoPath, ExitCode: -1, Err: err}
	}
	return out, nil
}

// GetCommitDates implements the GitClient interface.
// A repository without any commit yields empty output rather than an error.
func (c *LocalGitClient) GetCommitDates(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]byte, error) {
	args := []string{
		"log",
		"--no-show-signature",
		"--pretty=format:%cd",
		"--date=iso-strict",
	}
	if !startTime.IsZero() {
		args = append(args, fmt.Sprintf("--since=%s", startTime.Format(DateTimeFormat)))
	}
	if !endTime.IsZero() {
		args = append(args, fmt.Sprintf("--until=%s", endTime.Format(DateTimeFormat)))
	}
	out, err := c.Run(ctx, repoPath, args...)
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && strings.Contains(cmdErr.Stderr, noCommitsMarker) {
		return nil, nil
	}
	return out, err
}
