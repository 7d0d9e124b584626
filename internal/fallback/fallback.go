// Package fallback derives a commit message from change statistics alone.
// It is used whenever the model cannot be reached.
package fallback

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Dhanuzh/git-commit-ai/internal/changes"
)

// ChangeType is the dominant kind of change in a set of files.
type ChangeType string

const (
	ChangeAdd    ChangeType = "add"
	ChangeUpdate ChangeType = "update"
	ChangeRemove ChangeType = "remove"
)

// DefaultNoun is used when the dominant extension has no noun.
const DefaultNoun = "files"

// DefaultVerbs lists the verb synonyms for each change type.
var DefaultVerbs = map[ChangeType][]string{
	ChangeAdd:    {"Add", "Create", "Implement"},
	ChangeUpdate: {"Update", "Fix", "Improve", "Refactor"},
	ChangeRemove: {"Remove", "Delete", "Clean up"},
}

// Analysis is the aggregate view the message is derived from.
type Analysis struct {
	ChangeType ChangeType
	Extension  string
	Noun       string

	Added    int
	Modified int
	Deleted  int
}

// Generator composes heuristic messages. Rand picks the verb synonym; tests
// pass a seeded source to make the choice reproducible.
type Generator struct {
	Rand  *rand.Rand
	Verbs map[ChangeType][]string
}

// New returns a Generator drawing from src. A nil src is seeded from the clock.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{
		Rand:  rand.New(src),
		Verbs: DefaultVerbs,
	}
}

// Analyze tallies statuses and extensions. Files without an extension are
// not counted toward the dominant extension.
func Analyze(files []changes.FileChange) Analysis {
	var a Analysis

	var order []string
	freq := make(map[string]int)

	for _, f := range files {
		switch f.Status {
		case changes.StatusAdded:
			a.Added++
		case changes.StatusModified:
			a.Modified++
		case changes.StatusDeleted:
			a.Deleted++
		}

		ext := changes.Extension(f.Path)
		if ext == "" {
			continue
		}
		if _, seen := freq[ext]; !seen {
			order = append(order, ext)
		}
		freq[ext]++
	}

	switch {
	case a.Added > a.Modified && a.Added > a.Deleted:
		a.ChangeType = ChangeAdd
	case a.Deleted > a.Added && a.Deleted > a.Modified:
		a.ChangeType = ChangeRemove
	default:
		a.ChangeType = ChangeUpdate
	}

	// strict > keeps the first-seen extension on ties
	best := 0
	for _, ext := range order {
		if freq[ext] > best {
			best = freq[ext]
			a.Extension = ext
		}
	}

	a.Noun = changes.NounForExtension(a.Extension)
	if a.Noun == "" {
		a.Noun = DefaultNoun
	}
	return a
}

// Message returns a one-line commit message for files.
func (g *Generator) Message(files []changes.FileChange) string {
	a := Analyze(files)

	msg := g.verb(a.ChangeType) + ": " + a.Noun

	switch n := len(files); {
	case n == 1:
		msg += " " + changes.BaseName(files[0].Path)
	case n >= 2 && n <= 3:
		names := make([]string, 0, n)
		for _, f := range files {
			names = append(names, changes.BaseName(f.Path))
		}
		msg += " (" + strings.Join(names, ", ") + ")"
	case n > 3:
		msg += fmt.Sprintf(" (%d files)", n)
	}
	return msg
}

func (g *Generator) verb(t ChangeType) string {
	verbs := g.Verbs
	if verbs == nil {
		verbs = DefaultVerbs
	}
	options := verbs[t]
	if len(options) == 0 {
		options = DefaultVerbs[t]
	}
	if g.Rand == nil {
		return options[0]
	}
	return options[g.Rand.Intn(len(options))]
}
