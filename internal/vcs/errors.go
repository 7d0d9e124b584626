package vcs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors that can be used with errors.Is() for error type checking
var (
	// ErrNotGitRepository indicates the target path is not a git repository
	ErrNotGitRepository = errors.New("not a git repository")

	// ErrGitOperationFailed indicates a git command returned an error
	ErrGitOperationFailed = errors.New("git operation failed")
)

// GitError represents an error that occurred during a Git operation.
// It captures the command details, underlying error, and stderr.
type GitError struct {
	Operation string
	Args      []string
	Err       error
	Stderr    string
}

// Error implements the error interface.
func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed", e.Operation)
	if out := strings.TrimSpace(e.Stderr); out != "" {
		msg = fmt.Sprintf("%s: %s", msg, out)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *GitError) Unwrap() error {
	return e.Err
}

// NewGitError creates a GitError whose chain contains ErrGitOperationFailed
// followed by cause.
func NewGitError(operation string, args []string, cause error, stderr string) *GitError {
	err := ErrGitOperationFailed
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrGitOperationFailed, cause)
	}
	return &GitError{
		Operation: operation,
		Args:      args,
		Err:       err,
		Stderr:    stderr,
	}
}
