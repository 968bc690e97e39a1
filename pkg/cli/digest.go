package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/cli/config"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/usecase"
)

func cmdDigest() *cli.Command {
	var (
		storageCfg config.Storage
		clockCfg   config.Clock
		slackCfg   config.Slack
	)

	flags := joinFlags(
		slackCfg.Flags(),
		storageCfg.Flags(),
		clockCfg.Flags(),
	)

	return &cli.Command{
		Name:  "digest",
		Usage: "Post the last completed week's carousel to Slack",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctxlog.From(ctx).Debug("Digest configuration", slog.Any("slack", slackCfg))

			if !slackCfg.IsConfigured() {
				return goerr.New("Slack is not configured. Please provide PETSHOP_SLACK_OAUTH_TOKEN and PETSHOP_SLACK_CHANNEL")
			}

			bathRecordUC, repo, err := openBathRecord(ctx, &storageCfg, &clockCfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			digestUC := usecase.NewDigest(bathRecordUC, slackCfg.Configure())
			carousel, err := digestUC.PublishWeeklyDigest(ctx, slackCfg.Channel())
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "posted %d photos for %s\n", len(carousel.BathRecords), carousel.Label)
			return nil
		},
	}
}
