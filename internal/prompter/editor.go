package prompter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dhanuzh/git-commit-ai/internal/theme"
)

// maxMessageWidth caps the editable commit message length.
const maxMessageWidth = 200

type editorModel struct {
	input     textinput.Model
	styles    theme.Styles
	submitted bool
	cancelled bool
}

func newEditorModel(initial string, styles theme.Styles) editorModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "commit message"
	ti.CharLimit = maxMessageWidth
	ti.Width = 72
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()

	return editorModel{input: ti, styles: styles}
}

func (m editorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Prompt.Render("Edit the commit message:"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("enter to accept, esc to cancel"))
	sb.WriteString("\n")
	return sb.String()
}

// Value returns the edited message, or "" when the edit was cancelled.
func (m editorModel) Value() string {
	if m.cancelled {
		return ""
	}
	return strings.TrimSpace(m.input.Value())
}

func runEditor(in io.Reader, out io.Writer, initial string, styles theme.Styles) (string, error) {
	p := tea.NewProgram(
		newEditorModel(initial, styles),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithFilter(filterOSCSequences),
	)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("editor error: %w", err)
	}
	m, ok := final.(editorModel)
	if !ok {
		return "", nil
	}
	return m.Value(), nil
}
