// Package prompter asks the user to accept, edit or inspect a suggested
// commit message.
package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Dhanuzh/git-commit-ai/internal/theme"
)

// Answer is the user's reply to a confirmation.
type Answer int

const (
	AnswerCancel Answer = iota
	AnswerYes
	AnswerEdit
	AnswerDetail
)

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerEdit:
		return "edit"
	case AnswerDetail:
		return "detail"
	default:
		return "cancel"
	}
}

// ParseAnswer maps a typed reply to an Answer. Anything unrecognised cancels.
func ParseAnswer(s string) Answer {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return AnswerYes
	case "e", "edit":
		return AnswerEdit
	case "d", "detail":
		return AnswerDetail
	default:
		return AnswerCancel
	}
}

// Prompter is the interactive surface the run talks to.
type Prompter interface {
	Confirm(message string) (Answer, error)
	Edit(initial string) (string, error)
	ShowSummary(summary string)
}

// Terminal prompts on a terminal, or on plain streams when input is piped.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
	styles theme.Styles

	// Interactive enables the full-screen editor and the spinner.
	Interactive bool
}

// NewTerminal returns a Terminal over in and out. Interactive is set when
// both are terminals.
func NewTerminal(in io.Reader, out io.Writer, styles theme.Styles) *Terminal {
	return &Terminal{
		in:          in,
		out:         out,
		reader:      bufio.NewReader(in),
		styles:      styles,
		Interactive: isTerminal(in) && isTerminal(out),
	}
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (t *Terminal) readLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.reader.ReadString('\n')
	if err == io.EOF {
		// input closed without a newline
		fmt.Fprintln(t.out)
		return strings.TrimSpace(line), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm prints message and reads one reply.
func (t *Terminal) Confirm(message string) (Answer, error) {
	line, err := t.readLine(t.styles.Prompt.Render(message) + " ")
	if err != nil {
		return AnswerCancel, fmt.Errorf("failed to read answer: %w", err)
	}
	return ParseAnswer(line), nil
}

// Edit lets the user change initial. An empty result means the user gave
// up on the message.
func (t *Terminal) Edit(initial string) (string, error) {
	if t.Interactive {
		return runEditor(t.in, t.out, initial, t.styles)
	}
	line, err := t.readLine(t.styles.Prompt.Render("Enter a new commit message:") + " ")
	if err != nil {
		return "", fmt.Errorf("failed to read message: %w", err)
	}
	return line, nil
}

// ShowSummary prints the change summary.
func (t *Terminal) ShowSummary(summary string) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.styles.Title.Render("Change summary"))
	fmt.Fprintln(t.out, t.styles.Muted.Render(strings.TrimRight(summary, "\n")))
}

// Spin runs fn while a spinner labelled label is shown. Without a terminal
// the label is printed once instead.
func (t *Terminal) Spin(label string, fn func() error) error {
	if !t.Interactive {
		fmt.Fprintln(t.out, t.styles.Info.Render(label))
		return fn()
	}
	return runSpinner(t.out, label, t.styles, fn)
}
