package gitlab

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/snooze/pkg/domain/interfaces"
	"github.com/secmon-lab/snooze/pkg/domain/model"
	"github.com/secmon-lab/snooze/pkg/domain/types"
	gl "gitlab.com/gitlab-org/api/client-go"
)

type client struct {
	api *gl.Client
}

var _ interfaces.Tracker = (*client)(nil)

// New creates a GitLab tracker authenticated with a personal access token
func New(token string, opts ...Option) (interfaces.Tracker, error) {
	if token == "" {
		return nil, goerr.New("GitLab access token is required")
	}

	o := &options{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(o)
	}

	clientOpts := []gl.ClientOptionFunc{
		gl.WithBaseURL(o.baseURL),
	}
	if o.retryMax > 0 {
		clientOpts = append(clientOpts, gl.WithCustomRetryMax(o.retryMax))
	} else {
		clientOpts = append(clientOpts, gl.WithoutRetries())
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, gl.WithHTTPClient(o.httpClient))
	}

	api, err := gl.NewClient(token, clientOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitLab client", goerr.V("base_url", o.baseURL))
	}

	return &client{api: api}, nil
}

// ResolveIdentity returns the user that owns the token
func (c *client) ResolveIdentity(ctx context.Context) (*model.Identity, error) {
	user, resp, err := c.api.Users.CurrentUser(gl.WithContext(ctx))
	if err != nil {
		status := statusCode(resp)
		sentinel := model.ErrTransport
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			sentinel = model.ErrAuth
		}
		return nil, wrapError(sentinel, err, "failed to get current user", goerr.V(model.StatusKey, status))
	}

	return &model.Identity{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// ListDueToday returns open issues assigned to identity and due today.
// Only the first page (up to MaxPageSize issues) is fetched.
func (c *client) ListDueToday(ctx context.Context, identity *model.Identity) ([]*model.Issue, error) {
	opt := &gl.ListIssuesOptions{
		ListOptions: gl.ListOptions{PerPage: MaxPageSize},
		AssigneeID:  gl.AssigneeID(identity.ID),
		State:       gl.Ptr(issueStateOpened),
		DueDate:     gl.Ptr(dueDateToday),
		Scope:       gl.Ptr(scopeAll),
	}

	issues, resp, err := c.api.Issues.ListIssues(opt, gl.WithContext(ctx))
	if err != nil {
		return nil, wrapError(model.ErrTransport, err, "failed to list issues due today",
			goerr.V(model.UserIDKey, identity.ID),
			goerr.V(model.StatusKey, statusCode(resp)),
		)
	}

	result := make([]*model.Issue, 0, len(issues))
	for _, issue := range issues {
		result = append(result, convertIssue(issue))
	}

	return result, nil
}

// UpdateDueDate sets the due date of the issue addressed by project ID and IID
func (c *client) UpdateDueDate(ctx context.Context, projectID, iid int, dueDate types.DueDate) error {
	due := gl.ISOTime(dueDate.Time())
	opt := &gl.UpdateIssueOptions{
		DueDate: &due,
	}

	if _, resp, err := c.api.Issues.UpdateIssue(projectID, iid, opt, gl.WithContext(ctx)); err != nil {
		return wrapError(model.ErrTransport, err, "failed to update issue due date",
			goerr.V(model.ProjectIDKey, projectID),
			goerr.V(model.IssueIIDKey, iid),
			goerr.V(model.DueDateKey, dueDate.String()),
			goerr.V(model.StatusKey, statusCode(resp)),
		)
	}

	return nil
}

func convertIssue(issue *gl.Issue) *model.Issue {
	var dueDate string
	if issue.DueDate != nil {
		dueDate = time.Time(*issue.DueDate).Format(types.DueDateLayout)
	}

	return &model.Issue{
		ID:        issue.ID,
		IID:       issue.IID,
		ProjectID: issue.ProjectID,
		Title:     issue.Title,
		DueDate:   dueDate,
		Labels:    []string(issue.Labels),
		WebURL:    issue.WebURL,
	}
}

func statusCode(resp *gl.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}

func wrapError(sentinel, err error, msg string, values ...goerr.Option) error {
	return goerr.Wrap(fmt.Errorf("%w: %w", sentinel, err), msg, values...)
}
