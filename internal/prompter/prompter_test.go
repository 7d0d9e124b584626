package prompter

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dhanuzh/git-commit-ai/internal/theme"
)

func newTestTerminal(input string) (*Terminal, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewTerminal(strings.NewReader(input), out, theme.NewStyles(nil)), out
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want Answer
	}{
		{"y", AnswerYes},
		{"Y", AnswerYes},
		{"yes", AnswerYes},
		{" YES ", AnswerYes},
		{"e", AnswerEdit},
		{"Edit", AnswerEdit},
		{"d", AnswerDetail},
		{"DETAIL", AnswerDetail},
		{"", AnswerCancel},
		{"n", AnswerCancel},
		{"no", AnswerCancel},
		{"yess", AnswerCancel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAnswer(tt.in))
		})
	}
}

func TestAnswerString(t *testing.T) {
	assert.Equal(t, "yes", AnswerYes.String())
	assert.Equal(t, "edit", AnswerEdit.String())
	assert.Equal(t, "detail", AnswerDetail.String())
	assert.Equal(t, "cancel", AnswerCancel.String())
}

func TestTerminalIsNotInteractiveOnBuffers(t *testing.T) {
	term, _ := newTestTerminal("")
	assert.False(t, term.Interactive)
}

func TestConfirmReadsSuccessiveLines(t *testing.T) {
	term, out := newTestTerminal("detail\nyes\n")

	a, err := term.Confirm("Commit with this message? (y/n/e/d)")
	require.NoError(t, err)
	assert.Equal(t, AnswerDetail, a)

	a, err = term.Confirm("Commit with this message? (y/n)")
	require.NoError(t, err)
	assert.Equal(t, AnswerYes, a)

	assert.Contains(t, out.String(), "Commit with this message?")
}

func TestConfirmEOFCancels(t *testing.T) {
	term, _ := newTestTerminal("")
	a, err := term.Confirm("ok?")
	require.NoError(t, err)
	assert.Equal(t, AnswerCancel, a)
}

func TestConfirmWithoutTrailingNewline(t *testing.T) {
	term, _ := newTestTerminal("y")
	a, err := term.Confirm("ok?")
	require.NoError(t, err)
	assert.Equal(t, AnswerYes, a)
}

func TestEditPlainInput(t *testing.T) {
	term, out := newTestTerminal("  Fix: typo in readme  \n")
	msg, err := term.Edit("Update: docs README.md")
	require.NoError(t, err)
	assert.Equal(t, "Fix: typo in readme", msg)
	assert.Contains(t, out.String(), "Enter a new commit message:")
}

func TestEditEmptyInput(t *testing.T) {
	term, _ := newTestTerminal("\n")
	msg, err := term.Edit("Update: docs README.md")
	require.NoError(t, err)
	assert.Empty(t, msg)
}

func TestShowSummary(t *testing.T) {
	term, out := newTestTerminal("")
	term.ShowSummary("# Change overview\n1 file changed.\n")
	assert.Contains(t, out.String(), "Change summary")
	assert.Contains(t, out.String(), "1 file changed.")
}

func TestSpinWithoutTerminalRunsFn(t *testing.T) {
	term, out := newTestTerminal("")
	called := false
	err := term.Spin("Generating commit message...", func() error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Contains(t, out.String(), "Generating commit message...")
}

func TestEditorModel(t *testing.T) {
	m := newEditorModel("Add: feature", theme.NewStyles(nil))
	assert.Equal(t, "Add: feature", m.Value())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	m = next.(editorModel)
	assert.Equal(t, "Add: feature!", m.Value())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(editorModel)
	assert.True(t, m.submitted)
	assert.NotNil(t, cmd)
	assert.Equal(t, "Add: feature!", m.Value())
	assert.Empty(t, m.View())
}

func TestEditorModelCancel(t *testing.T) {
	m := newEditorModel("Add: feature", theme.NewStyles(nil))
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(editorModel)
	assert.True(t, m.cancelled)
	assert.Empty(t, m.Value())
}

func TestSpinnerModelDone(t *testing.T) {
	m := newSpinnerModel("working", theme.NewStyles(nil))
	assert.Contains(t, m.View(), "working")

	next, cmd := m.Update(spinnerDoneMsg{})
	m = next.(spinnerModel)
	assert.True(t, m.done)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestFilterOSCSequences(t *testing.T) {
	tests := []struct {
		name string
		keys string
		drop bool
	}{
		{"plain text", "hello", false},
		{"rgb reply", "rgb:0000/0000/0000", true},
		{"truncated reply", "b:1a1a/1b1b/2626", true},
		{"osc prefix", "]11;rgb:0000/0000/0000", true},
		{"digits", "0000/0000/0000", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.keys)}
			got := filterOSCSequences(nil, msg)
			if tt.drop {
				assert.Nil(t, got)
			} else {
				assert.Equal(t, msg, got)
			}
		})
	}

	other := tea.WindowSizeMsg{Width: 80}
	assert.Equal(t, other, filterOSCSequences(nil, other))
}
