package changes

import (
	"fmt"
	"path"
	"strings"
)

// ExtensionGroup is the set of kept files sharing one extension.
type ExtensionGroup struct {
	Extension string
	Label     string
	Count     int
}

// Report is the structured form of the change summary.
type Report struct {
	Total         int
	Excluded      int
	ExcludedPaths []string
	Kept          []FileChange
	Groups        []ExtensionGroup

	Added    int
	Modified int
	Deleted  int
}

// Analyze filters excluded files out of changes and tallies the rest by
// extension (first-seen order) and by status.
func Analyze(changes []FileChange) Report {
	r := Report{Total: len(changes)}
	groupIndex := make(map[string]int)

	for _, c := range changes {
		if IsExcluded(c.Path) {
			r.Excluded++
			r.ExcludedPaths = append(r.ExcludedPaths, c.Path)
			continue
		}
		r.Kept = append(r.Kept, c)

		ext := Extension(c.Path)
		idx, ok := groupIndex[ext]
		if !ok {
			label := "other"
			if ext != "" {
				label = labelForExtension(ext)
			}
			idx = len(r.Groups)
			groupIndex[ext] = idx
			r.Groups = append(r.Groups, ExtensionGroup{Extension: ext, Label: label})
		}
		r.Groups[idx].Count++

		switch c.Status {
		case StatusAdded:
			r.Added++
		case StatusModified:
			r.Modified++
		case StatusDeleted:
			r.Deleted++
		}
	}
	return r
}

// String renders the report in the fixed section layout sent to the model.
func (r Report) String() string {
	var sb strings.Builder

	sb.WriteString("# Change overview\n")
	fmt.Fprintf(&sb, "%s changed.", pluralFiles(len(r.Kept)))
	if r.Excluded > 0 {
		fmt.Fprintf(&sb, " (%d excluded)", r.Excluded)
	}
	sb.WriteString("\n\n")

	sb.WriteString("## By file type\n")
	for _, g := range r.Groups {
		fmt.Fprintf(&sb, "- %s: %s\n", g.Label, pluralFiles(g.Count))
	}

	sb.WriteString("\n## By change type\n")
	if r.Added > 0 {
		fmt.Fprintf(&sb, "- %s: %s\n", StatusAdded, pluralFiles(r.Added))
	}
	if r.Modified > 0 {
		fmt.Fprintf(&sb, "- %s: %s\n", StatusModified, pluralFiles(r.Modified))
	}
	if r.Deleted > 0 {
		fmt.Fprintf(&sb, "- %s: %s\n", StatusDeleted, pluralFiles(r.Deleted))
	}

	sb.WriteString("\n# File details\n")
	for _, c := range r.Kept {
		sb.WriteString("\n")
		sb.WriteString(DescribeFile(c))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Summarize is Analyze followed by String.
func Summarize(changes []FileChange) string {
	return Analyze(changes).String()
}

// DescribeFile renders the detail block for a single change.
func DescribeFile(c FileChange) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s (%s)", c.Status, path.Base(c.Path), DescribeType(c.Path))

	if dir := path.Dir(c.Path); dir != "." && dir != "/" {
		fmt.Fprintf(&sb, "\n  location: %s", dir)
	}

	if c.HasDiff() {
		counts := CountChangedLines(c.Diff)
		fmt.Fprintf(&sb, "\n  changes: +%d lines, -%d lines", counts.Added, counts.Deleted)

		if counts.Changed() {
			if excerpt := ExtractExcerpt(c.Diff, DefaultExcerptLines); excerpt != "" {
				sb.WriteString("\n  key changes:\n")
				sb.WriteString(excerpt)
			}
		}
	}
	return sb.String()
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
