package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/snooze/pkg/domain/interfaces"
	"github.com/secmon-lab/snooze/pkg/domain/model"
	"github.com/secmon-lab/snooze/pkg/domain/types"
	"github.com/secmon-lab/snooze/pkg/service/slack"
	"github.com/secmon-lab/snooze/pkg/utils/logging"
)

// PostponeUseCase moves the due date of today's issues one week forward.
//
// Issues are processed strictly in the order the tracker returned them. The
// first failure aborts the rest of the batch; issues updated before it stay
// updated.
type PostponeUseCase struct {
	tracker      interfaces.Tracker
	exemptLabel  types.Label
	slack        slack.Service
	slackChannel string
	newRunID     func() string
}

type postponeOption func(*PostponeUseCase)

func withNotifier(svc slack.Service, channelID string) postponeOption {
	return func(uc *PostponeUseCase) {
		uc.slack = svc
		uc.slackChannel = channelID
	}
}

func withRunID(fn func() string) postponeOption {
	return func(uc *PostponeUseCase) {
		if fn != nil {
			uc.newRunID = fn
		}
	}
}

// NewPostponeUseCase creates a new PostponeUseCase
func NewPostponeUseCase(tracker interfaces.Tracker, exemptLabel types.Label, opts ...postponeOption) *PostponeUseCase {
	uc := &PostponeUseCase{
		tracker:     tracker,
		exemptLabel: exemptLabel,
		newRunID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run resolves the current user, lists the issues due today and postpones them.
// The returned report is never nil and reflects everything done before a failure.
// When dryRun is true no update is sent and eligible issues are reported as planned.
func (uc *PostponeUseCase) Run(ctx context.Context, dryRun bool) (*model.PostponeReport, error) {
	report := model.NewPostponeReport(uc.newRunID(), uc.exemptLabel, dryRun)
	ctx = logging.With(ctx, logging.From(ctx).With(RunIDKey, report.RunID))

	err := uc.run(ctx, report)
	if err != nil {
		err = goerr.Wrap(err, "postponement run aborted", goerr.V(RunIDKey, report.RunID))
	}

	uc.notify(ctx, report, err)
	return report, err
}

// Postpone processes issues that are already known to be due today for identity.
func (uc *PostponeUseCase) Postpone(ctx context.Context, identity *model.Identity, issues []*model.Issue, dryRun bool) (*model.PostponeReport, error) {
	report := model.NewPostponeReport(uc.newRunID(), uc.exemptLabel, dryRun)
	report.Identity = identity
	ctx = logging.With(ctx, logging.From(ctx).With(RunIDKey, report.RunID))

	if err := uc.postpone(ctx, report, issues); err != nil {
		return report, err
	}
	return report, nil
}

// WhoAmI resolves the identity that owns the configured token
func (uc *PostponeUseCase) WhoAmI(ctx context.Context) (*model.Identity, error) {
	identity, err := uc.tracker.ResolveIdentity(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve current user")
	}
	return identity, nil
}

func (uc *PostponeUseCase) run(ctx context.Context, report *model.PostponeReport) error {
	logger := logging.From(ctx)

	identity, err := uc.tracker.ResolveIdentity(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve current user")
	}
	report.Identity = identity
	logger.Info("Resolved current user", "username", identity.Username, "id", identity.ID)

	issues, err := uc.tracker.ListDueToday(ctx, identity)
	if err != nil {
		return goerr.Wrap(err, "failed to list issues", goerr.V(model.UserIDKey, identity.ID))
	}
	logger.Info("Listed issues due today", "count", len(issues))

	return uc.postpone(ctx, report, issues)
}

func (uc *PostponeUseCase) postpone(ctx context.Context, report *model.PostponeReport, issues []*model.Issue) error {
	logger := logging.From(ctx)

	for i, issue := range issues {
		logger.Info("Issue due today",
			"title", issue.Title,
			"project_id", issue.ProjectID,
			"iid", issue.IID,
			"due_date", issue.DueDate,
		)

		if issue.HasLabel(uc.exemptLabel) {
			logger.Info("Skipping issue with exemption label", "label", uc.exemptLabel, "iid", issue.IID)
			report.Add(model.IssueResult{Issue: issue, Outcome: types.OutcomeSkipped})
			continue
		}

		next, err := nextDueDate(issue)
		if err != nil {
			report.Add(model.IssueResult{Issue: issue, Outcome: types.OutcomeFailed, Err: err})
			logAbort(ctx, len(issues)-i-1)
			return err
		}
		logger.Debug("Calculated due date", "iid", issue.IID, "from", issue.DueDate, "to", next.String())

		if report.DryRun {
			report.Add(model.IssueResult{Issue: issue, Outcome: types.OutcomePlanned, NewDueDate: next})
			continue
		}

		if err := uc.tracker.UpdateDueDate(ctx, issue.ProjectID, issue.IID, next); err != nil {
			err = goerr.Wrap(err, "failed to postpone issue",
				goerr.V(model.IssueTitleKey, issue.Title),
				goerr.V(model.ProjectIDKey, issue.ProjectID),
				goerr.V(model.IssueIIDKey, issue.IID),
			)
			report.Add(model.IssueResult{Issue: issue, Outcome: types.OutcomeFailed, NewDueDate: next, Err: err})
			logAbort(ctx, len(issues)-i-1)
			return err
		}

		logger.Info("Postponed issue", "iid", issue.IID, "due_date", next.String())
		report.Add(model.IssueResult{Issue: issue, Outcome: types.OutcomePostponed, NewDueDate: next})
	}

	return nil
}

func nextDueDate(issue *model.Issue) (types.DueDate, error) {
	due, err := types.ParseDueDate(issue.DueDate)
	if err != nil {
		return types.DueDate{}, goerr.Wrap(err, "issue due date is not a calendar date",
			goerr.V(model.IssueTitleKey, issue.Title),
			goerr.V(model.ProjectIDKey, issue.ProjectID),
			goerr.V(model.IssueIIDKey, issue.IID),
			goerr.V(model.DueDateKey, issue.DueDate),
		)
	}
	return due.AdvanceByWeek(), nil
}

func logAbort(ctx context.Context, remaining int) {
	if remaining > 0 {
		logging.From(ctx).Warn("Aborting remaining issues", RemainingKey, remaining)
	}
}
