package cli

import (
	"context"

	"github.com/secmon-lab/snooze/pkg/cli/config"
	"github.com/secmon-lab/snooze/pkg/utils/errutil"
	"github.com/secmon-lab/snooze/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Run builds the snooze command tree and executes it with args
func Run(ctx context.Context, args []string, version string) error {
	if err := newApp(version).Run(ctx, args); err != nil {
		return errutil.Handle(ctx, err, "failed to run app")
	}

	return nil
}

func newApp(version string) *cli.Command {
	var loggerCfg config.Logger
	var closer func()

	return &cli.Command{
		Name:    "snooze",
		Usage:   "Postpone GitLab issues due today by one week",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Debug("Starting snooze", "logger", loggerCfg, "version", version)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdPostpone(),
			cmdWhoAmI(),
		},
	}
}
