package cli

import (
	"io"

	"github.com/secmon-lab/snooze/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func NewAppForTest(version string, w io.Writer) *cli.Command {
	app := newApp(version)
	app.Writer = w
	app.ErrWriter = io.Discard
	return app
}

func PrintReport(w io.Writer, report *model.PostponeReport, runErr error) {
	newReportPrinter(w, true).Print(report, runErr)
}
