package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/secmon-lab/snooze/pkg/domain/model"
	"github.com/secmon-lab/snooze/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type reportPrinter struct {
	w io.Writer

	postponed *color.Color
	planned   *color.Color
	skipped   *color.Color
	failed    *color.Color
	faint     *color.Color
}

func newReportPrinter(w io.Writer, noColor bool) *reportPrinter {
	p := &reportPrinter{
		w:         w,
		postponed: color.New(color.FgGreen, color.Bold),
		planned:   color.New(color.FgCyan, color.Bold),
		skipped:   color.New(color.FgYellow),
		failed:    color.New(color.FgRed, color.Bold),
		faint:     color.New(color.Faint),
	}

	if noColor {
		for _, c := range []*color.Color{p.postponed, p.planned, p.skipped, p.failed, p.faint} {
			c.DisableColor()
		}
	}
	return p
}

// Print writes one line per processed issue, a summary line and, when the run
// was aborted, the terminating error.
func (p *reportPrinter) Print(report *model.PostponeReport, runErr error) {
	if report.Identity != nil {
		_, _ = p.faint.Fprintf(p.w, "user: %s (id: %d)  run: %s\n", report.Identity.Username, report.Identity.ID, report.RunID)
	}

	if report.IsEmpty() && runErr == nil {
		_, _ = fmt.Fprintln(p.w, "No issues due today")
		return
	}

	for _, res := range report.Results {
		p.printResult(res)
	}

	_, _ = fmt.Fprintf(p.w, "\n%s\n", p.summary(report))

	if runErr != nil {
		_, _ = p.failed.Fprint(p.w, "aborted: ")
		_, _ = fmt.Fprintln(p.w, runErr.Error())
		if failed := report.Failed(); failed != nil && failed.Err != nil {
			_, _ = fmt.Fprintf(p.w, "  issue: %s (project %d, #%d)\n", failed.Issue.Title, failed.Issue.ProjectID, failed.Issue.IID)
		}
	}
}

func (p *reportPrinter) printResult(res model.IssueResult) {
	issue := res.Issue
	name := fmt.Sprintf("%d#%d %s", issue.ProjectID, issue.IID, issue.Title)

	switch res.Outcome {
	case types.OutcomePostponed:
		_, _ = p.postponed.Fprintf(p.w, "%-10s", "postponed")
		_, _ = fmt.Fprintf(p.w, "%s  %s -> %s\n", name, issue.DueDate, res.NewDueDate)
	case types.OutcomePlanned:
		_, _ = p.planned.Fprintf(p.w, "%-10s", "planned")
		_, _ = fmt.Fprintf(p.w, "%s  %s -> %s\n", name, issue.DueDate, res.NewDueDate)
	case types.OutcomeSkipped:
		_, _ = p.skipped.Fprintf(p.w, "%-10s", "skipped")
		_, _ = fmt.Fprintf(p.w, "%s\n", name)
	default:
		_, _ = p.failed.Fprintf(p.w, "%-10s", "failed")
		if res.NewDueDate.IsZero() {
			_, _ = fmt.Fprintf(p.w, "%s  %s\n", name, issue.DueDate)
			return
		}
		_, _ = fmt.Fprintf(p.w, "%s  %s -> %s\n", name, issue.DueDate, res.NewDueDate)
	}
}

func (p *reportPrinter) summary(report *model.PostponeReport) string {
	skipped := report.Count(types.OutcomeSkipped)
	if report.DryRun {
		return fmt.Sprintf("%d planned, %d skipped (dry run, exemption label %q)", report.Count(types.OutcomePlanned), skipped, report.ExemptLabel)
	}
	return fmt.Sprintf("%d postponed, %d skipped (exemption label %q)", report.Count(types.OutcomePostponed), skipped, report.ExemptLabel)
}

func writerOf(c *cli.Command) io.Writer {
	if root := c.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}
