package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/secmon-lab/snooze/pkg/domain/model"
	"github.com/secmon-lab/snooze/pkg/domain/types"
	"github.com/secmon-lab/snooze/pkg/utils/errutil"
	"github.com/secmon-lab/snooze/pkg/utils/logging"
	goslack "github.com/slack-go/slack"
)

// notify posts the run report to Slack. Failures are logged and never change
// the outcome of the run. Runs that found nothing to do are not reported.
func (uc *PostponeUseCase) notify(ctx context.Context, report *model.PostponeReport, runErr error) {
	if uc.slack == nil || uc.slackChannel == "" {
		return
	}
	if report.IsEmpty() && runErr == nil {
		return
	}

	blocks := buildReportBlocks(report, runErr)
	if _, err := uc.slack.PostMessage(ctx, uc.slackChannel, blocks, reportSummary(report, runErr)); err != nil {
		_ = errutil.Handle(ctx, err, "failed to post postponement report")
		return
	}
	logging.From(ctx).Debug("Posted postponement report", "channel_id", uc.slackChannel)
}

func reportSummary(report *model.PostponeReport, runErr error) string {
	skipped := report.Count(types.OutcomeSkipped)

	var summary string
	if report.DryRun {
		summary = fmt.Sprintf("%d planned, %d skipped (dry run)", report.Count(types.OutcomePlanned), skipped)
	} else {
		summary = fmt.Sprintf("%d postponed, %d skipped", report.Count(types.OutcomePostponed), skipped)
	}
	if runErr != nil {
		summary += ", aborted"
	}
	return summary
}

func buildReportBlocks(report *model.PostponeReport, runErr error) []goslack.Block {
	title := "Due dates postponed"
	if report.DryRun {
		title = "Due date postponement (dry run)"
	}
	if runErr != nil {
		title = "Due date postponement aborted"
	}

	blocks := []goslack.Block{
		goslack.NewHeaderBlock(
			goslack.NewTextBlockObject(goslack.PlainTextType, title, true, false),
		),
	}

	if len(report.Results) > 0 {
		lines := make([]string, 0, len(report.Results))
		for _, res := range report.Results {
			lines = append(lines, formatResultLine(res))
		}
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, strings.Join(lines, "\n"), false, false),
			nil, nil,
		))
	}

	if runErr != nil {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, "*Error:* `"+runErr.Error()+"`", false, false),
			nil, nil,
		))
	}

	contextText := fmt.Sprintf("%s | run %s", reportSummary(report, runErr), report.RunID)
	if report.Identity != nil {
		contextText = fmt.Sprintf("@%s | %s", report.Identity.Username, contextText)
	}
	blocks = append(blocks, goslack.NewContextBlock("",
		goslack.NewTextBlockObject(goslack.MarkdownType, contextText, false, false),
	))

	return blocks
}

func formatResultLine(res model.IssueResult) string {
	name := fmt.Sprintf("#%d %s", res.Issue.IID, res.Issue.Title)
	if res.Issue.WebURL != "" {
		name = fmt.Sprintf("<%s|#%d %s>", res.Issue.WebURL, res.Issue.IID, res.Issue.Title)
	}

	switch res.Outcome {
	case types.OutcomePostponed:
		return fmt.Sprintf(":white_check_mark: %s → %s", name, res.NewDueDate)
	case types.OutcomePlanned:
		return fmt.Sprintf(":calendar: %s → %s", name, res.NewDueDate)
	case types.OutcomeSkipped:
		return fmt.Sprintf(":no_entry_sign: %s (skipped)", name)
	default:
		return fmt.Sprintf(":x: %s (failed)", name)
	}
}
