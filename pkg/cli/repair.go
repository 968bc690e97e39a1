package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/cli/config"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
)

func cmdRepair() *cli.Command {
	var (
		storageCfg config.Storage
		clockCfg   config.Clock
		dryRun     bool
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Report the rows that would change without writing",
				Destination: &dryRun,
			},
		},
		storageCfg.Flags(),
		clockCfg.Flags(),
	)

	return &cli.Command{
		Name:  "repair",
		Usage: "Recompute every stored week start from its bath date",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			bathRecordUC, repo, err := openBathRecord(ctx, &storageCfg, &clockCfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			report, err := bathRecordUC.RepairWeekStarts(ctx, dryRun)
			if err != nil {
				return err
			}

			printRepairReport(c.Root().Writer, report)
			return nil
		},
	}
}

func printRepairReport(w io.Writer, report *model.RepairReport) {
	verb := "changed"
	if report.DryRun {
		verb = "would change"
	}

	for _, change := range report.Changes {
		fmt.Fprintf(w, "%s  %-20s bath %s  week %s -> %s\n",
			change.BathRecordID,
			change.PetName,
			model.FormatDate(change.BathDate),
			model.FormatDate(change.From),
			model.FormatDate(change.To))
	}
	fmt.Fprintf(w, "scanned %d, %s %d\n", report.Scanned, verb, report.Changed())
}
