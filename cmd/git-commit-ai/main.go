package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	// earlyinit must be listed before bubbletea so its init() runs first and
	// pre-sets lipgloss.SetHasDarkBackground, preventing bubbletea's init()
	// from sending an OSC 11 terminal colour query that leaks into stdin.
	_ "github.com/Dhanuzh/git-commit-ai/internal/earlyinit"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dhanuzh/git-commit-ai/internal/app"
	"github.com/Dhanuzh/git-commit-ai/internal/config"
	"github.com/Dhanuzh/git-commit-ai/internal/fallback"
	"github.com/Dhanuzh/git-commit-ai/internal/logging"
	"github.com/Dhanuzh/git-commit-ai/internal/prompter"
	"github.com/Dhanuzh/git-commit-ai/internal/provider"
	"github.com/Dhanuzh/git-commit-ai/internal/theme"
	"github.com/Dhanuzh/git-commit-ai/internal/vcs"
)

var (
	version = "1.0.0"
	commit  = "dev"
)

// errFailed marks a run that already reported its failure to the user.
var errFailed = errors.New("run failed")

func main() {
	rootCmd := &cobra.Command{
		Use:   "git-commit-ai",
		Short: "Generate git commit messages from staged changes",
		Long: `git-commit-ai summarizes your staged changes, asks a language model for a
commit message and commits with it once you confirm.`,
		RunE:          runCommit,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolP("all", "a", false, "Stage all changes before committing")
	rootCmd.Flags().BoolP("push", "p", false, "Push after committing")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Show the prompts and the raw model output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show the change summary before confirming")

	rootCmd.AddCommand(
		configCmd(),
		configShowCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			printError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	st := theme.NewStyles(nil)
	fmt.Fprintln(w, st.Error.Render(fmt.Sprintf("Error: %v", err)))
	for _, hint := range cerr.GetAllHints(err) {
		fmt.Fprintln(w, st.Muted.Render("hint: "+hint))
	}
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(logging.Options{Debug: debug, Verbose: verbose})
}

// loadedConfig hands an already loaded config to the run.
type loadedConfig struct {
	cfg *config.Config
}

func (l loadedConfig) Load() (*config.Config, error) { return l.cfg, nil }

func stylesFor(cfg *config.Config) theme.Styles {
	name := ""
	if cfg != nil {
		name = cfg.Theme
	}
	return theme.NewStyles(theme.Resolve(name))
}

func runCommit(cmd *cobra.Command, args []string) error {
	var opts app.Options
	opts.All, _ = cmd.Flags().GetBool("all")
	opts.Push, _ = cmd.Flags().GetBool("push")
	opts.Debug, _ = cmd.Flags().GetBool("debug")
	opts.Verbose, _ = cmd.Flags().GetBool("verbose")

	logger := newLogger(cmd)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewStore("", logger).Load()
	if err != nil {
		return err
	}
	styles := stylesFor(cfg)
	term := prompter.NewTerminal(os.Stdin, os.Stdout, styles)

	a := &app.App{
		Config: loadedConfig{cfg: cfg},
		OpenRepository: func() (app.Repository, error) {
			dir, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			repo, err := vcs.Open(dir, &vcs.ExecExecutor{}, logger)
			if err != nil {
				return nil, err
			}
			return repo, nil
		},
		NewGenerator: provider.New,
		Fallback:     fallback.New(nil),
		Prompter:     term,
		Spin:         term.Spin,
		// a blocked terminal read never sees ctx, so Ctrl-C must end the
		// process from here on
		BeforePrompt: stop,
		Out:          os.Stdout,
		Styles:       styles,
		Logger:       logger,
	}

	outcome, err := a.Run(ctx, opts)
	logger.Debug("run finished", zap.Stringer("outcome", outcome))
	if err != nil {
		return err
	}
	if outcome.Failed() {
		return errFailed
	}
	return nil
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Set up the model and its credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			defer func() { _ = logger.Sync() }()

			store := config.NewStore("", logger)
			current, _ := store.Load()

			setup := config.NewSetup(os.Stdin, os.Stdout, store)
			setup.Styles = stylesFor(current)
			if _, err := setup.Run(); err != nil {
				if errors.Is(err, config.ErrSetupAborted) {
					return errFailed
				}
				return err
			}
			return nil
		},
	}
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config:show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			defer func() { _ = logger.Sync() }()

			cfg, err := config.NewStore("", logger).Load()
			if err != nil {
				return err
			}
			config.Show(os.Stdout, cfg, stylesFor(cfg))
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("git-commit-ai %s (%s)\n", version, commit)
		},
	}
}
