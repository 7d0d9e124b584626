// Package app runs one commit: it reads the staged changes, drafts a message
// with the configured model, asks the user and commits.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Dhanuzh/git-commit-ai/internal/changes"
	"github.com/Dhanuzh/git-commit-ai/internal/config"
	"github.com/Dhanuzh/git-commit-ai/internal/logging"
	"github.com/Dhanuzh/git-commit-ai/internal/prompt"
	"github.com/Dhanuzh/git-commit-ai/internal/prompter"
	"github.com/Dhanuzh/git-commit-ai/internal/provider"
	"github.com/Dhanuzh/git-commit-ai/internal/theme"
)

// Outcome is how a run ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeConfigMissing
	OutcomeNothingStaged
	OutcomeCancelled
	OutcomeCommitted
	OutcomePushed
	OutcomeStageFailed
	OutcomeCommitFailed
	OutcomePushFailed
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:          "none",
	OutcomeConfigMissing: "config missing",
	OutcomeNothingStaged: "nothing staged",
	OutcomeCancelled:     "cancelled",
	OutcomeCommitted:     "committed",
	OutcomePushed:        "pushed",
	OutcomeStageFailed:   "stage failed",
	OutcomeCommitFailed:  "commit failed",
	OutcomePushFailed:    "push failed",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Failed reports whether the outcome should end the process with a non-zero
// status.
func (o Outcome) Failed() bool {
	switch o {
	case OutcomeConfigMissing, OutcomeStageFailed, OutcomeCommitFailed, OutcomePushFailed:
		return true
	}
	return false
}

// Options are the command line switches of a run.
type Options struct {
	All     bool
	Push    bool
	Debug   bool
	Verbose bool
}

// Repository is the version control surface a run needs.
type Repository interface {
	StageAll(ctx context.Context) error
	StagedFiles(ctx context.Context) ([]changes.FileChange, error)
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
	CurrentBranch() string
}

// ConfigLoader loads the stored configuration. A nil config means none is
// stored.
type ConfigLoader interface {
	Load() (*config.Config, error)
}

// FallbackGenerator drafts a message without a model.
type FallbackGenerator interface {
	Message(files []changes.FileChange) string
}

// GeneratorFactory creates the model client for cfg.
type GeneratorFactory func(ctx context.Context, cfg *config.Config) (provider.Generator, error)

// App wires the collaborators of a run.
type App struct {
	Config         ConfigLoader
	OpenRepository func() (Repository, error)
	NewGenerator   GeneratorFactory
	Fallback       FallbackGenerator
	Prompter       prompter.Prompter

	// Spin wraps the model call with progress output. When nil the call
	// runs without it.
	Spin func(label string, fn func() error) error

	// BeforePrompt runs once before the first interactive read. The CLI
	// uses it to hand interrupts back to the default handler.
	BeforePrompt func()

	Out     io.Writer
	Styles  theme.Styles
	Logger  *zap.Logger
	Timeout time.Duration
}

func (a *App) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

func (a *App) say(style lipgloss.Style, format string, args ...interface{}) {
	fmt.Fprintln(a.out(), style.Render(fmt.Sprintf(format, args...)))
}

func (a *App) timeout() time.Duration {
	if a.Timeout <= 0 {
		return provider.DefaultTimeout
	}
	return a.Timeout
}

// Run executes one commit flow.
func (a *App) Run(ctx context.Context, opts Options) (Outcome, error) {
	log := logging.OrNop(a.Logger)

	cfg, err := a.Config.Load()
	if err != nil {
		return OutcomeNone, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return OutcomeConfigMissing, err
	}
	log.Debug("config loaded", zap.String("model", string(cfg.Model)))

	repo, err := a.OpenRepository()
	if err != nil {
		return OutcomeNone, err
	}

	a.say(a.Styles.Muted, "Using model: %s", provider.DisplayName(cfg.Model))
	a.say(a.Styles.Info, "Analyzing git changes...")

	if opts.All {
		if err := repo.StageAll(ctx); err != nil {
			a.say(a.Styles.Error, "Failed to stage changes")
			return OutcomeStageFailed, fmt.Errorf("failed to stage changes: %w", err)
		}
		a.say(a.Styles.Success, "Staged all changes")
	}

	files, err := repo.StagedFiles(ctx)
	if err != nil {
		return OutcomeNone, fmt.Errorf("failed to read staged changes: %w", err)
	}
	if len(files) == 0 {
		a.say(a.Styles.Warning, "No staged changes.")
		a.say(a.Styles.Warning, "Stage changes with git add <file> or use the --all option.")
		return OutcomeNothingStaged, nil
	}

	a.printStaged(files)

	summary := changes.Summarize(files)
	if opts.Verbose {
		a.Prompter.ShowSummary(summary)
	}

	message, err := a.generate(ctx, cfg, summary, files, opts.Debug)
	if err != nil {
		a.say(a.Styles.Error, "Commit cancelled")
		return OutcomeCancelled, nil
	}

	fmt.Fprintln(a.out())
	a.say(a.Styles.Info, "Suggested commit message:")
	a.say(a.Styles.Message, "  %s", message)
	fmt.Fprintln(a.out())

	if a.BeforePrompt != nil {
		a.BeforePrompt()
	}
	return a.confirm(ctx, repo, message, summary, opts.Push)
}

func (a *App) printStaged(files []changes.FileChange) {
	a.say(a.Styles.Success, "%d staged file(s):", len(files))
	for _, f := range files {
		fmt.Fprintf(a.out(), "  %s %s\n", a.Styles.Status(string(f.Status)).Render(string(f.Status)), f.Path)
	}
}

// generate asks the model for a message and falls back to the heuristic
// message on any failure. It returns ctx.Err() when the run itself was
// interrupted.
func (a *App) generate(ctx context.Context, cfg *config.Config, summary string, files []changes.FileChange, debug bool) (string, error) {
	log := logging.OrNop(a.Logger)
	p := prompt.Build(summary, prompt.Options{Language: cfg.Language})

	if debug {
		a.say(a.Styles.Title, "=== System prompt ===")
		fmt.Fprintln(a.out(), p.System)
		a.say(a.Styles.Title, "=== User prompt ===")
		fmt.Fprintln(a.out(), p.User)
	}

	var raw string
	call := func() error {
		gen, err := a.NewGenerator(ctx, cfg)
		if err != nil {
			return err
		}
		callCtx, cancel := context.WithTimeout(ctx, a.timeout())
		defer cancel()

		start := time.Now()
		raw, err = gen.Generate(callCtx, p.System, p.User)
		log.Debug("model call finished",
			zap.String("backend", gen.Name()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return err
	}

	var err error
	if a.Spin != nil {
		err = a.Spin("Generating commit message...", call)
	} else {
		err = call()
	}

	if ctx.Err() != nil {
		log.Debug("run interrupted during generation", zap.Error(ctx.Err()))
		return "", ctx.Err()
	}

	if err != nil {
		log.Info("commit message generation failed, using fallback",
			zap.String("model", string(cfg.Model)),
			zap.Error(err))
		a.say(a.Styles.Warning, "Could not generate a message with the model. Using a fallback message.")
		for _, hint := range provider.Hints(err) {
			a.say(a.Styles.Muted, "hint: %s", hint)
		}
		return a.Fallback.Message(files), nil
	}

	if debug {
		a.say(a.Styles.Title, "=== Model output ===")
		fmt.Fprintln(a.out(), raw)
	}
	return raw, nil
}

func (a *App) confirm(ctx context.Context, repo Repository, message, summary string, push bool) (Outcome, error) {
	answer, err := a.Prompter.Confirm("Commit with this message? (y/n/edit/detail):")
	if err != nil {
		return OutcomeNone, err
	}

	if answer == prompter.AnswerDetail {
		a.Prompter.ShowSummary(summary)
		answer, err = a.Prompter.Confirm("Commit with this message? (y/n/edit):")
		if err != nil {
			return OutcomeNone, err
		}
		// a second detail request is not offered again
		if answer == prompter.AnswerDetail {
			answer = prompter.AnswerCancel
		}
	}

	switch answer {
	case prompter.AnswerYes:
		return a.commit(ctx, repo, message, push)
	case prompter.AnswerEdit:
		edited, err := a.Prompter.Edit(message)
		if err != nil {
			return OutcomeNone, err
		}
		if edited == "" {
			return a.cancel(), nil
		}
		return a.commit(ctx, repo, edited, push)
	default:
		return a.cancel(), nil
	}
}

func (a *App) cancel() Outcome {
	a.say(a.Styles.Error, "Commit cancelled")
	return OutcomeCancelled
}

func (a *App) commit(ctx context.Context, repo Repository, message string, push bool) (Outcome, error) {
	if err := repo.Commit(ctx, message); err != nil {
		a.say(a.Styles.Error, "Commit failed")
		return OutcomeCommitFailed, fmt.Errorf("failed to commit: %w", err)
	}
	a.say(a.Styles.Success, "Committed: %q", message)

	if !push {
		return OutcomeCommitted, nil
	}

	if branch := repo.CurrentBranch(); branch != "" {
		a.say(a.Styles.Info, "Pushing %s...", branch)
	} else {
		a.say(a.Styles.Info, "Pushing changes...")
	}
	if err := repo.Push(ctx); err != nil {
		a.say(a.Styles.Error, "Push failed")
		return OutcomePushFailed, fmt.Errorf("failed to push: %w", err)
	}
	a.say(a.Styles.Success, "Push complete")
	return OutcomePushed, nil
}
