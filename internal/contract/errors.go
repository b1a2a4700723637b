package contract

import (
	"errors"
	"fmt"
)

// Error categories. Per-repository failures in the first three categories are
// recovered by skipping the repository; anything else aborts the run.
var (
	ErrGitCommand         = errors.New("git command failed")
	ErrMalformedTimestamp = errors.New("malformed commit timestamp")
	ErrFileSystem         = errors.New("file system error")
	ErrUnsupportedFormat  = errors.New("unsupported image format")
	ErrFontLoad           = errors.New("cannot load font")
)

// CommandError describes a failed git invocation.
type CommandError struct {
	RepoPath string
	ExitCode int    // -1 when git could not be started
	Stderr   string // trimmed stderr of the subprocess
	Err      error
}

func (e *CommandError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("git command failed: %v. Ensure Git is installed and available on your PATH", e.Err)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("git command failed in %q (exit %d): %s", e.RepoPath, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("git command failed in %q (exit %d)", e.RepoPath, e.ExitCode)
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is makes every CommandError match ErrGitCommand.
func (e *CommandError) Is(target error) bool {
	return target == ErrGitCommand
}
