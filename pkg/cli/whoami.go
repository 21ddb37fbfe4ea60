package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/snooze/pkg/cli/config"
	"github.com/secmon-lab/snooze/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdWhoAmI() *cli.Command {
	var gitlabCfg config.GitLab

	return &cli.Command{
		Name:      "whoami",
		Usage:     "Show the GitLab user that owns the configured token",
		ArgsUsage: "[CONFIG_FILE]",
		Flags:     gitlabCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Present() {
				gitlabCfg.SetConfigPath(c.Args().First())
			}

			tracker, err := gitlabCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure GitLab")
			}

			identity, err := usecase.New(tracker).Postpone.WhoAmI(ctx)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(writerOf(c), "%s (id: %d)\n", identity.Username, identity.ID); err != nil {
				return goerr.Wrap(err, "failed to write output")
			}
			return nil
		},
	}
}
