// Package earlyinit must be imported before github.com/charmbracelet/bubbletea
// in cmd/git-commit-ai/main.go. Its init pre-sets lipgloss's dark-background
// flag so bubbletea's own init finds the value cached and never sends the
// OSC 11 background colour query.
//
// On some terminals (WSL2 in particular) the OSC 11 reply arrives after
// termenv has given up waiting and is left in the PTY buffer, where the
// commit message editor would read it as typed text.
package earlyinit

import "github.com/charmbracelet/lipgloss"

func init() {
	lipgloss.SetHasDarkBackground(true)
}
