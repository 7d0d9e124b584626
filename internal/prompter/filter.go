package prompter

import (
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var oscColorPattern = regexp.MustCompile(`\d{1,4}/\d{4}/\d{4}`)

// filterOSCSequences drops key messages that are really fragments of an
// OSC 11 color reply leaking into the input stream.
func filterOSCSequences(_ tea.Model, msg tea.Msg) tea.Msg {
	v, ok := msg.(tea.KeyMsg)
	if !ok {
		return msg
	}

	// OSC 11 responses look like: ]11;rgb:0000/0000/0000 or b:0000/0000/0000
	str := v.String()
	if oscColorPattern.MatchString(str) {
		return nil
	}
	if strings.HasPrefix(str, "]11;") ||
		strings.HasPrefix(str, "b:") ||
		strings.HasPrefix(str, "gb:") ||
		strings.HasPrefix(str, "rgb:") ||
		strings.Contains(str, ";rgb:") {
		return nil
	}
	return msg
}
