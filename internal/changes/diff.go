package changes

import (
	"fmt"
	"strings"
)

// DefaultExcerptLines is the number of changed lines kept per file.
const DefaultExcerptLines = 10

// LineCounts holds the number of added and deleted lines in a diff.
type LineCounts struct {
	Added   int
	Deleted int
}

// Changed reports whether any line was added or deleted.
func (c LineCounts) Changed() bool {
	return c.Added > 0 || c.Deleted > 0
}

func isAddedLine(line string) bool {
	return strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++")
}

func isDeletedLine(line string) bool {
	return strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---")
}

// CountChangedLines counts added and deleted content lines. The "+++" and
// "---" file header lines are never counted.
func CountChangedLines(diff string) LineCounts {
	var counts LineCounts
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case isAddedLine(line):
			counts.Added++
		case isDeletedLine(line):
			counts.Deleted++
		}
	}
	return counts
}

// ExtractExcerpt returns the changed lines of diff in their original order,
// keeping at most maxLines of them. When lines are dropped a final notice
// says how many. maxLines <= 0 selects DefaultExcerptLines.
func ExtractExcerpt(diff string, maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultExcerptLines
	}

	var changed []string
	for _, line := range strings.Split(diff, "\n") {
		if isAddedLine(line) || isDeletedLine(line) {
			changed = append(changed, line)
		}
	}

	if len(changed) > maxLines {
		omitted := len(changed) - maxLines
		return strings.Join(changed[:maxLines], "\n") + "\n" + truncationNotice(omitted)
	}
	return strings.Join(changed, "\n")
}

func truncationNotice(omitted int) string {
	return fmt.Sprintf("... (%d more changed lines)", omitted)
}
