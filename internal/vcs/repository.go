// Package vcs reads staged changes from a git repository and records
// commits. Status comes from go-git; diff, add, commit and push run the git
// binary so hooks, signing and credential helpers behave as usual.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"

	"github.com/go-git/go-git/v5"
	"go.uber.org/zap"

	"github.com/Dhanuzh/git-commit-ai/internal/changes"
)

// Repository is a git working tree.
type Repository struct {
	root     string
	repo     *git.Repository
	executor CommandExecutor
	logger   *zap.Logger
}

// Open finds the repository containing dir. A nil executor uses
// ExecExecutor.
func Open(dir string, executor CommandExecutor, logger *zap.Logger) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotGitRepository)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}

	if executor == nil {
		executor = &ExecExecutor{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Repository{
		root:     wt.Filesystem.Root(),
		repo:     repo,
		executor: executor,
		logger:   logger,
	}, nil
}

// Root returns the top-level directory of the working tree.
func (r *Repository) Root() string {
	return r.root
}

// CurrentBranch returns the short name of HEAD, or "" when detached or
// unborn.
func (r *Repository) CurrentBranch() string {
	head, err := r.repo.Head()
	if err != nil || !head.Name().IsBranch() {
		return ""
	}
	return head.Name().Short()
}

// StagedFiles lists the paths whose index entry differs from HEAD, sorted by
// path. Diffs are fetched for every non-deleted file; a failed diff is
// logged and left empty.
func (r *Repository) StagedFiles(ctx context.Context) ([]changes.FileChange, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read status: %w", err)
	}

	var staged []changes.FileChange
	for path, fileStatus := range status {
		var st changes.Status
		switch fileStatus.Staging {
		case git.Unmodified, git.Untracked:
			continue
		case git.Added:
			st = changes.StatusAdded
		case git.Deleted:
			st = changes.StatusDeleted
		default:
			st = changes.StatusModified
		}
		staged = append(staged, changes.FileChange{Path: path, Status: st})
	}

	sort.Slice(staged, func(i, j int) bool { return staged[i].Path < staged[j].Path })

	for i := range staged {
		if staged[i].Status == changes.StatusDeleted {
			continue
		}
		diff, err := r.StagedDiff(ctx, staged[i].Path)
		if err != nil {
			r.logger.Warn("failed to read staged diff", zap.String("path", staged[i].Path), zap.Error(err))
			continue
		}
		staged[i].Diff = diff
	}

	r.logger.Debug("staged files read", zap.Int("count", len(staged)))
	return staged, nil
}

// StagedDiff returns the staged unified diff for one path.
func (r *Repository) StagedDiff(ctx context.Context, path string) (string, error) {
	return r.output(ctx, "diff", "--staged", "--", path)
}

// StageAll stages every change in the working tree.
func (r *Repository) StageAll(ctx context.Context) error {
	return r.run(ctx, "add", ".")
}

// Commit records the staged changes with message.
func (r *Repository) Commit(ctx context.Context, message string) error {
	return r.run(ctx, "commit", "-m", message)
}

// Push pushes the current branch to its upstream.
func (r *Repository) Push(ctx context.Context) error {
	return r.run(ctx, "push")
}

func (r *Repository) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.root
	return cmd
}

func (r *Repository) run(ctx context.Context, args ...string) error {
	r.logger.Debug("running git", zap.Strings("args", args))
	if err := r.executor.Execute(r.command(ctx, args...)); err != nil {
		return asGitError(args, err)
	}
	return nil
}

func (r *Repository) output(ctx context.Context, args ...string) (string, error) {
	r.logger.Debug("running git", zap.Strings("args", args))
	out, err := r.executor.ExecuteWithOutput(r.command(ctx, args...))
	if err != nil {
		return "", asGitError(args, err)
	}
	return out, nil
}

// asGitError makes sure executor failures surface as *GitError.
func asGitError(args []string, err error) error {
	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return err
	}
	op, rest := "", []string(nil)
	if len(args) > 0 {
		op, rest = args[0], args[1:]
	}
	return NewGitError(op, rest, err, "")
}
