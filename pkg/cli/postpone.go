package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/snooze/pkg/cli/config"
	"github.com/secmon-lab/snooze/pkg/usecase"
	"github.com/secmon-lab/snooze/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdPostpone() *cli.Command {
	var dryRun bool
	var noColor bool
	var gitlabCfg config.GitLab
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "dry-run",
			Aliases:     []string{"n"},
			Usage:       "Show what would be postponed without updating any issue",
			Sources:     cli.EnvVars("SNOOZE_DRY_RUN"),
			Destination: &dryRun,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored report output",
			Destination: &noColor,
		},
	}
	flags = append(flags, gitlabCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:      "postpone",
		Aliases:   []string{"p"},
		Usage:     "Move the due date of issues due today one week forward",
		ArgsUsage: "[CONFIG_FILE]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Present() {
				gitlabCfg.SetConfigPath(c.Args().First())
			}

			tracker, err := gitlabCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure GitLab")
			}
			logging.Default().LogAttrs(ctx, slog.LevelDebug, "GitLab configured", gitlabCfg.LogAttrs()...)

			ucOpts := []usecase.Option{
				usecase.WithExemptLabel(gitlabCfg.ExemptLabel()),
			}

			slackSvc, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Slack")
			}
			if slackSvc != nil {
				ucOpts = append(ucOpts, usecase.WithSlackService(slackSvc, slackCfg.ChannelID()))
				logging.Default().LogAttrs(ctx, slog.LevelInfo, "Slack report enabled", slackCfg.LogAttrs()...)
			}

			uc := usecase.New(tracker, ucOpts...)

			report, runErr := uc.Postpone.Run(ctx, dryRun)
			newReportPrinter(writerOf(c), noColor).Print(report, runErr)

			return runErr
		},
	}
}
