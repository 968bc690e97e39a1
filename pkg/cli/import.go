package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/cli/config"
)

func cmdImport() *cli.Command {
	var (
		storageCfg config.Storage
		clockCfg   config.Clock
		file       string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "YAML file with a bath_records list",
				Required:    true,
				Destination: &file,
			},
		},
		storageCfg.Flags(),
		clockCfg.Flags(),
	)

	return &cli.Command{
		Name:  "import",
		Usage: "Create bath records from a YAML file; every record is validated before any is saved",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			inputs, err := config.LoadBathRecordFixtures(file)
			if err != nil {
				return err
			}

			bathRecordUC, repo, err := openBathRecord(ctx, &storageCfg, &clockCfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			imported, err := bathRecordUC.ImportBathRecords(ctx, inputs)
			if err != nil {
				return goerr.Wrap(err, "failed to import bath records",
					goerr.V("file", file),
					goerr.V("imported", imported))
			}

			ctxlog.From(ctx).Info("Import finished", "file", file, "imported", imported)
			fmt.Fprintf(c.Root().Writer, "imported %d bath records\n", imported)
			return nil
		},
	}
}
