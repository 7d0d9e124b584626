// Package changes turns a list of staged file changes into the plain-text
// report that is handed to the commit message generator.
//
// Everything in this package is pure: no I/O, no global state beyond the
// static classification tables.
package changes

// Status is the kind of change recorded for a staged path.
type Status string

const (
	StatusAdded    Status = "added"
	StatusModified Status = "modified"
	StatusDeleted  Status = "deleted"
)

// FileChange is one staged path as reported by the version-control layer.
// Diff is the raw unified diff for the path; it is empty for deleted files.
type FileChange struct {
	Path   string `json:"path"`
	Status Status `json:"status"`
	Diff   string `json:"diff,omitempty"`
}

// HasDiff reports whether the change carries diff text worth reducing.
func (c FileChange) HasDiff() bool {
	return c.Diff != "" && c.Status != StatusDeleted
}
