package cli_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/snooze/pkg/cli"
	"github.com/secmon-lab/snooze/pkg/domain/model"
	"github.com/secmon-lab/snooze/pkg/domain/types"
)

func TestPrintReport(t *testing.T) {
	identity := &model.Identity{ID: 7, Username: "bob"}
	issue := &model.Issue{IID: 3, ProjectID: 12, Title: "Write docs", DueDate: "2024-12-31"}

	t.Run("empty report", func(t *testing.T) {
		report := model.NewPostponeReport("run-1", types.DefaultExemptLabel, false)
		report.Identity = identity

		var buf bytes.Buffer
		cli.PrintReport(&buf, report, nil)
		gt.String(t, buf.String()).Contains("user: bob (id: 7)  run: run-1")
		gt.String(t, buf.String()).Contains("No issues due today")
	})

	t.Run("postponed issue crosses year boundary", func(t *testing.T) {
		report := model.NewPostponeReport("run-2", types.DefaultExemptLabel, false)
		report.Add(model.IssueResult{Issue: issue, Outcome: types.OutcomePostponed, NewDueDate: types.NewDueDate(2025, 1, 7)})

		var buf bytes.Buffer
		cli.PrintReport(&buf, report, nil)
		gt.String(t, buf.String()).Contains("postponed 12#3 Write docs  2024-12-31 -> 2025-01-07")
		gt.String(t, buf.String()).Contains(`1 postponed, 0 skipped (exemption label "lane::staging")`)
	})

	t.Run("failed update shows target date", func(t *testing.T) {
		report := model.NewPostponeReport("run-4", types.DefaultExemptLabel, false)
		cause := goerr.New("502 Bad Gateway")
		report.Add(model.IssueResult{Issue: issue, Outcome: types.OutcomeFailed, NewDueDate: types.NewDueDate(2025, 1, 7), Err: cause})

		var buf bytes.Buffer
		cli.PrintReport(&buf, report, cause)
		gt.String(t, buf.String()).Contains("failed    12#3 Write docs  2024-12-31 -> 2025-01-07")
	})

	t.Run("unparsable due date shows no target date", func(t *testing.T) {
		bad := &model.Issue{IID: 8, ProjectID: 12, Title: "Broken", DueDate: ""}
		report := model.NewPostponeReport("run-5", types.DefaultExemptLabel, false)
		cause := goerr.New("invalid due date")
		report.Add(model.IssueResult{Issue: bad, Outcome: types.OutcomeFailed, Err: cause})

		var buf bytes.Buffer
		cli.PrintReport(&buf, report, cause)
		gt.String(t, buf.String()).Contains("failed    12#8 Broken  \n")
		gt.String(t, buf.String()).NotContains("->")
	})

	t.Run("aborted run shows failed issue", func(t *testing.T) {
		report := model.NewPostponeReport("run-3", types.DefaultExemptLabel, false)
		cause := goerr.New("500 Internal Server Error")
		report.Add(model.IssueResult{Issue: issue, Outcome: types.OutcomeFailed, Err: cause})

		var buf bytes.Buffer
		cli.PrintReport(&buf, report, cause)
		gt.String(t, buf.String()).Contains("failed    12#3 Write docs")
		gt.String(t, buf.String()).Contains("aborted: 500 Internal Server Error")
		gt.String(t, buf.String()).Contains("issue: Write docs (project 12, #3)")
	})
}
