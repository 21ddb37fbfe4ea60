package model

import (
	"slices"

	"github.com/secmon-lab/snooze/pkg/domain/types"
)

// Issue is a snapshot of a tracker issue that is a candidate for postponement.
// ProjectID and IID address the issue for updates; ID is informational.
type Issue struct {
	ID        int
	IID       int
	ProjectID int
	Title     string
	DueDate   string
	Labels    []string
	WebURL    string
}

// HasLabel reports whether the issue carries the given label (exact, case-sensitive)
func (i *Issue) HasLabel(label types.Label) bool {
	return slices.Contains(i.Labels, label.String())
}
