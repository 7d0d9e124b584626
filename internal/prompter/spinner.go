package prompter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dhanuzh/git-commit-ai/internal/theme"
)

type spinnerDoneMsg struct{ err error }

type spinnerModel struct {
	spinner spinner.Model
	label   string
	styles  theme.Styles
	done    bool
	err     error
}

func newSpinnerModel(label string, styles theme.Styles) spinnerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Title
	return spinnerModel{spinner: sp, label: label, styles: styles}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.styles.Info.Render(m.label) + "\n"
}

// runSpinner shows a spinner until fn returns. The spinner reads no input.
func runSpinner(out io.Writer, label string, styles theme.Styles, fn func() error) error {
	p := tea.NewProgram(
		newSpinnerModel(label, styles),
		tea.WithInput(nil),
		tea.WithOutput(out),
	)

	result := make(chan error, 1)
	go func() {
		err := fn()
		result <- err
		p.Send(spinnerDoneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		// the spinner failed to draw; the work itself still completes
		fmt.Fprintln(out, styles.Info.Render(label))
	}
	return <-result
}
