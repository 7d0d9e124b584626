package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles used for console output.
type Styles struct {
	Title   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Message lipgloss.Style
	Prompt  lipgloss.Style

	Added    lipgloss.Style
	Modified lipgloss.Style
	Deleted  lipgloss.Style
}

// NewStyles builds the styles for t. A nil theme uses Default.
func NewStyles(t *Theme) Styles {
	if t == nil {
		t = Default()
	}
	return Styles{
		Title:   lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(t.Secondary),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Muted:   lipgloss.NewStyle().Foreground(t.TextDim),
		Message: lipgloss.NewStyle().Foreground(t.Info).Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(t.Warning),

		Added:    lipgloss.NewStyle().Foreground(t.Success),
		Modified: lipgloss.NewStyle().Foreground(t.Secondary),
		Deleted:  lipgloss.NewStyle().Foreground(t.Error),
	}
}

// Status returns the style for a change status ("added", "modified",
// "deleted").
func (s Styles) Status(status string) lipgloss.Style {
	switch status {
	case "added":
		return s.Added
	case "deleted":
		return s.Deleted
	default:
		return s.Modified
	}
}
