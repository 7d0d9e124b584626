package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Dhanuzh/git-commit-ai/internal/theme"
)

// ErrSetupAborted is returned when the setup flow receives an invalid choice
// or an empty value. Nothing is saved in that case.
var ErrSetupAborted = errors.New("setup aborted")

// Setup runs the interactive configuration flow.
type Setup struct {
	In     io.Reader
	Out    io.Writer
	Store  *Store
	Styles theme.Styles

	// ReadSecret reads a value without echo. When nil, a hidden read is used
	// if In is a terminal and a plain line read otherwise.
	ReadSecret func(prompt string) (string, error)

	reader *bufio.Reader
}

// NewSetup returns a Setup reading from in and writing to out.
func NewSetup(in io.Reader, out io.Writer, store *Store) *Setup {
	return &Setup{
		In:     in,
		Out:    out,
		Store:  store,
		Styles: theme.NewStyles(nil),
	}
}

func (s *Setup) readLine(prompt string) (string, error) {
	if s.reader == nil {
		s.reader = bufio.NewReader(s.In)
	}
	fmt.Fprint(s.Out, prompt)
	line, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Setup) readSecret(prompt string) (string, error) {
	if s.ReadSecret != nil {
		return s.ReadSecret(prompt)
	}
	if f, ok := s.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return readHiddenInput(s.Out, f, prompt)
	}
	return s.readLine(prompt)
}

// readHiddenInput reads input without echoing it (for passwords/keys)
func readHiddenInput(out io.Writer, f *os.File, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	bytes, err := term.ReadPassword(int(f.Fd()))
	if err != nil {
		return "", err
	}
	fmt.Fprintln(out)
	return strings.TrimSpace(string(bytes)), nil
}

// Run asks for the model and its credential, then saves the result.
func (s *Setup) Run() (*Config, error) {
	st := s.Styles

	fmt.Fprintln(s.Out, st.Title.Render("git-commit-ai setup"))
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, st.Prompt.Render("Choose the model to use:"))
	fmt.Fprintf(s.Out, "1. %s (Anthropic API)\n", ModelAnthropic)
	fmt.Fprintf(s.Out, "2. %s (Google Cloud Vertex AI)\n", ModelVertex)

	choice, err := s.readLine("\nSelect a model (1 or 2): ")
	if err != nil {
		return nil, fmt.Errorf("failed to read model choice: %w", err)
	}

	cfg, err := s.Store.LoadFile()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &Config{}
	}

	switch choice {
	case "1":
		cfg.Model = ModelAnthropic
	case "2":
		cfg.Model = ModelVertex
	default:
		fmt.Fprintln(s.Out, st.Error.Render("Invalid choice. Nothing was saved."))
		return nil, fmt.Errorf("invalid model choice %q: %w", choice, ErrSetupAborted)
	}

	switch cfg.Model {
	case ModelAnthropic:
		fmt.Fprintln(s.Out, st.Prompt.Render("\nSet the Anthropic API key."))
		fmt.Fprintln(s.Out, st.Muted.Render("Keys are available at https://console.anthropic.com/"))
		key, err := s.readSecret("Anthropic API key: ")
		if err != nil {
			return nil, fmt.Errorf("failed to read API key: %w", err)
		}
		if key == "" {
			fmt.Fprintln(s.Out, st.Error.Render("No API key entered. Nothing was saved."))
			return nil, fmt.Errorf("empty API key: %w", ErrSetupAborted)
		}
		cfg.APIKey = key
		cfg.ProjectName = ""

	case ModelVertex:
		fmt.Fprintln(s.Out, st.Prompt.Render("\nSet the Google Cloud project."))
		fmt.Fprintln(s.Out, st.Muted.Render("Enter the ID of a project with Vertex AI enabled."))
		project, err := s.readLine("Project name: ")
		if err != nil {
			return nil, fmt.Errorf("failed to read project name: %w", err)
		}
		if project == "" {
			fmt.Fprintln(s.Out, st.Error.Render("No project name entered. Nothing was saved."))
			return nil, fmt.Errorf("empty project name: %w", ErrSetupAborted)
		}
		cfg.ProjectName = project
		cfg.APIKey = ""
	}

	if err := s.Store.Save(cfg); err != nil {
		return nil, err
	}

	fmt.Fprintln(s.Out, st.Success.Render("\nConfiguration saved."))
	Show(s.Out, cfg, st)
	return cfg, nil
}

// Show prints cfg with the API key redacted. A nil cfg prints a setup hint.
func Show(out io.Writer, cfg *Config, st theme.Styles) {
	if cfg == nil {
		fmt.Fprintln(out, st.Warning.Render("No configuration file found."))
		fmt.Fprintln(out, st.Info.Render(`Run "git-commit-ai config" to set up the tool.`))
		return
	}

	fmt.Fprintln(out, st.Info.Render("Current configuration:"))
	fmt.Fprintln(out, st.Success.Render(fmt.Sprintf("Model: %s", cfg.Model)))
	if cfg.APIKey != "" {
		fmt.Fprintln(out, st.Success.Render(fmt.Sprintf("API key: %s", RedactKey(cfg.APIKey))))
	}
	if cfg.ProjectName != "" {
		fmt.Fprintln(out, st.Success.Render(fmt.Sprintf("Project name: %s", cfg.ProjectName)))
	}
	if cfg.Language != "" {
		fmt.Fprintln(out, st.Success.Render(fmt.Sprintf("Language: %s", cfg.Language)))
	}
	if cfg.Theme != "" {
		fmt.Fprintln(out, st.Success.Render(fmt.Sprintf("Theme: %s", cfg.Theme)))
		reg := theme.NewRegistry()
		if _, err := reg.Get(cfg.Theme); err != nil {
			fmt.Fprintln(out, st.Warning.Render(fmt.Sprintf("Unknown theme, using %s. Available: %s",
				theme.DefaultName, strings.Join(reg.List(), ", "))))
		}
	}
}
