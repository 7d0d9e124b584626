// Package prompt builds the system and user prompts sent to the model.
package prompt

import (
	"fmt"
	"strings"
)

// DefaultLanguage is used when Options.Language is empty.
const DefaultLanguage = "English"

// MaxMessageLength is the length limit the model is asked to respect.
const MaxMessageLength = 100

// Options tunes the generated prompt.
type Options struct {
	// Language the commit message should be written in.
	Language string
}

// Prompt is a system/user prompt pair.
type Prompt struct {
	System string
	User   string
}

// Build wraps a change summary in the instructions for the model.
func Build(summary string, opts Options) Prompt {
	lang := strings.TrimSpace(opts.Language)
	if lang == "" {
		lang = DefaultLanguage
	}

	system := fmt.Sprintf(
		"You are an assistant that writes git commit messages. "+
			"Write a short, clear commit message in %s.", lang)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a short, clear commit message in %s for the following changes.\n\n", lang)
	sb.WriteString(summary)
	sb.WriteString("\n\nThe commit message must:\n")
	fmt.Fprintf(&sb, "- be at most %d characters\n", MaxMessageLength)
	sb.WriteString("- state the kind of change (add, fix, remove, ...)\n")
	sb.WriteString("- focus on the main change\n")
	sb.WriteString("- contain no bullet points or explanations\n")
	sb.WriteString("\nCommit message:")

	return Prompt{System: system, User: sb.String()}
}
