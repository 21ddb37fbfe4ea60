package interfaces

import (
	"context"

	"github.com/secmon-lab/snooze/pkg/domain/model"
	"github.com/secmon-lab/snooze/pkg/domain/types"
)

// Tracker is the gateway to the issue tracker. Implementations own every wire
// level concern (authentication, encoding, transport retries) and report
// failures wrapping model.ErrAuth or model.ErrTransport.
type Tracker interface {
	// ResolveIdentity returns the account that owns the access token
	ResolveIdentity(ctx context.Context) (*model.Identity, error)

	// ListDueToday returns open issues assigned to identity whose due date is today,
	// in the order the tracker returned them
	ListDueToday(ctx context.Context, identity *model.Identity) ([]*model.Issue, error)

	// UpdateDueDate sets the due date of the issue addressed by (projectID, iid)
	UpdateDueDate(ctx context.Context, projectID, iid int, dueDate types.DueDate) error
}
