package usecase_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/snooze/pkg/domain/model"
	"github.com/secmon-lab/snooze/pkg/domain/types"
	"github.com/secmon-lab/snooze/pkg/usecase"
	goslack "github.com/slack-go/slack"
)

func TestBuildReportBlocks(t *testing.T) {
	report := model.NewPostponeReport("run-0001", types.DefaultExemptLabel, false)
	report.Identity = &model.Identity{ID: 42, Username: "alice"}
	report.Add(model.IssueResult{
		Issue:      &model.Issue{IID: 5, Title: "A", WebURL: "https://gitlab.example.com/g/p/-/issues/5"},
		Outcome:    types.OutcomePostponed,
		NewDueDate: types.NewDueDate(2024, 3, 6),
	})
	report.Add(model.IssueResult{
		Issue:   &model.Issue{IID: 6, Title: "B"},
		Outcome: types.OutcomeSkipped,
	})

	t.Run("successful run", func(t *testing.T) {
		blocks := usecase.BuildReportBlocks(report, nil)
		gt.Array(t, blocks).Length(3).Required()

		header, ok := blocks[0].(*goslack.HeaderBlock)
		gt.Bool(t, ok).True()
		gt.Value(t, header.Text.Text).Equal("Due dates postponed")

		section, ok := blocks[1].(*goslack.SectionBlock)
		gt.Bool(t, ok).True()
		gt.String(t, section.Text.Text).Contains("<https://gitlab.example.com/g/p/-/issues/5|#5 A> → 2024-03-06")
		gt.String(t, section.Text.Text).Contains("#6 B (skipped)")

		ctxBlock, ok := blocks[2].(*goslack.ContextBlock)
		gt.Bool(t, ok).True()
		gt.Array(t, ctxBlock.ContextElements.Elements).Length(1).Required()
		text, ok := ctxBlock.ContextElements.Elements[0].(*goslack.TextBlockObject)
		gt.Bool(t, ok).True()
		gt.String(t, text.Text).Contains("@alice")
		gt.String(t, text.Text).Contains("run-0001")
	})

	t.Run("aborted run includes error", func(t *testing.T) {
		blocks := usecase.BuildReportBlocks(report, errors.New("404 Not Found"))
		gt.Array(t, blocks).Length(4).Required()

		header, ok := blocks[0].(*goslack.HeaderBlock)
		gt.Bool(t, ok).True()
		gt.Value(t, header.Text.Text).Equal("Due date postponement aborted")

		errSection, ok := blocks[2].(*goslack.SectionBlock)
		gt.Bool(t, ok).True()
		gt.String(t, errSection.Text.Text).Contains("404 Not Found")
	})
}

func TestReportSummary(t *testing.T) {
	report := model.NewPostponeReport("run-0001", types.DefaultExemptLabel, true)
	report.Add(model.IssueResult{Issue: &model.Issue{IID: 1}, Outcome: types.OutcomePlanned})
	report.Add(model.IssueResult{Issue: &model.Issue{IID: 2}, Outcome: types.OutcomePlanned})
	report.Add(model.IssueResult{Issue: &model.Issue{IID: 3}, Outcome: types.OutcomeSkipped})

	gt.Value(t, usecase.ReportSummary(report, nil)).Equal("2 planned, 1 skipped (dry run)")
	gt.Value(t, usecase.ReportSummary(report, errors.New("x"))).Equal("2 planned, 1 skipped (dry run), aborted")
}
